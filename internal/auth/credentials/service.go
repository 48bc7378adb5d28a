package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/danipardo/petclinic/internal/auth"
	"github.com/danipardo/petclinic/internal/logger"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	bootstrapUsername = "admin"
	bootstrapPassword = "admin"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate verifies a username/password pair against the identity
// repository. Every failure mode surfaces as ErrInvalidCredentials;
// the distinguishing detail is logged for operators only, never shown
// to the caller.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (*auth.Identity, error) {

	users, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("credentials: lookup failed: %w", err)
	}

	if len(users) != 1 {
		logger.Warn("login rejected: ambiguous or absent principal", map[string]any{
			"username": username,
			"matches":  len(users),
		})
		return nil, ErrInvalidCredentials
	}

	user := users[0]

	// An unset digest must never act as a wildcard match.
	if user.PasswordDigest == "" {
		logger.Warn("login rejected: user has no password digest", map[string]any{
			"username": username,
		})
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(user.PasswordDigest, password); err != nil {
		logger.Warn("login rejected: wrong password", map[string]any{
			"username": username,
		})
		return nil, ErrInvalidCredentials
	}

	return &auth.Identity{
		ID:       user.ID.String(),
		Username: user.Username,
	}, nil
}

// Bootstrap seeds the admin user when no record for it exists yet, so
// a fresh database is immediately usable with admin/admin.
func (s *Service) Bootstrap(ctx context.Context) error {
	users, err := s.repo.FindByUsername(ctx, bootstrapUsername)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	digest, err := HashPassword(bootstrapPassword)
	if err != nil {
		return fmt.Errorf("credentials: bootstrap hash: %w", err)
	}

	id, err := s.repo.Create(ctx, bootstrapUsername, digest)
	if err != nil {
		return err
	}

	logger.Info("bootstrap user created", map[string]any{
		"username": bootstrapUsername,
		"user_id":  id.String(),
	})
	return nil
}
