package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	users   map[string][]User
	err     error
	created []User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[string][]User)}
}

func (f *fakeRepository) FindByUsername(_ context.Context, username string) ([]User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[username], nil
}

func (f *fakeRepository) Create(_ context.Context, username, digest string) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	u := User{ID: uuid.New(), Username: username, PasswordDigest: digest}
	f.users[username] = append(f.users[username], u)
	f.created = append(f.created, u)
	return u.ID, nil
}

func (f *fakeRepository) add(t *testing.T, username, password string) User {
	t.Helper()
	digest, err := HashPassword(password)
	require.NoError(t, err)
	u := User{ID: uuid.New(), Username: username, PasswordDigest: digest}
	f.users[username] = append(f.users[username], u)
	return u
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := newFakeRepository()
	stored := repo.add(t, "admin", "admin")

	svc := NewService(repo)

	identity, err := svc.Authenticate(context.Background(), "admin", "admin")
	require.NoError(t, err)
	require.Equal(t, stored.ID.String(), identity.ID)
	require.Equal(t, "admin", identity.Username)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newFakeRepository()
	repo.add(t, "admin", "admin")

	svc := NewService(repo)

	_, err := svc.Authenticate(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Authenticate(context.Background(), "nobody", "admin")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateAmbiguousPrincipal(t *testing.T) {
	repo := newFakeRepository()
	repo.add(t, "admin", "admin")
	repo.add(t, "admin", "admin")

	svc := NewService(repo)

	// two matching records must fail exactly like a wrong password
	_, err := svc.Authenticate(context.Background(), "admin", "admin")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateEmptyDigestRejected(t *testing.T) {
	repo := newFakeRepository()
	repo.users["admin"] = []User{{ID: uuid.New(), Username: "admin", PasswordDigest: ""}}

	svc := NewService(repo)

	for _, password := range []string{"", "admin", "anything"} {
		_, err := svc.Authenticate(context.Background(), "admin", password)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestAuthenticateRepositoryError(t *testing.T) {
	repo := newFakeRepository()
	repo.err = errors.New("connection refused")

	svc := NewService(repo)

	_, err := svc.Authenticate(context.Background(), "admin", "admin")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrInvalidCredentials))
}

func TestBootstrapCreatesAdmin(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	require.NoError(t, svc.Bootstrap(context.Background()))
	require.Len(t, repo.created, 1)
	require.Equal(t, "admin", repo.created[0].Username)

	// the seeded digest must verify the bootstrap password
	require.NoError(t, VerifyPassword(repo.created[0].PasswordDigest, "admin"))

	// after bootstrap, admin/admin logs in
	_, err := svc.Authenticate(context.Background(), "admin", "admin")
	require.NoError(t, err)
}

func TestBootstrapIdempotent(t *testing.T) {
	repo := newFakeRepository()
	repo.add(t, "admin", "something-else")

	svc := NewService(repo)

	require.NoError(t, svc.Bootstrap(context.Background()))
	require.Empty(t, repo.created)
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("admin")
	require.NoError(t, err)
	b, err := HashPassword("admin")
	require.NoError(t, err)

	// adaptive salted hashing never produces equal digests
	require.NotEqual(t, a, b)
	require.NoError(t, VerifyPassword(a, "admin"))
	require.NoError(t, VerifyPassword(b, "admin"))
	require.Error(t, VerifyPassword(a, "wrong"))
}
