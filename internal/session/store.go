package session

import (
	"context"
	"errors"
	"time"

	"github.com/danipardo/petclinic/internal/auth"
)

// ErrNotFound is returned when no record exists for a token, either
// because it was never issued, expired, or was deleted.
var ErrNotFound = errors.New("session: not found")

// ErrMalformed is returned when a stored record cannot be decoded.
// Callers must treat it exactly like ErrNotFound.
var ErrMalformed = errors.New("session: malformed record")

// Store persists session records in an external key/value store with
// a time-to-live. Any error other than the sentinels above means the
// store itself is unavailable; on the authorization path that is
// still treated as unauthenticated.
type Store interface {
	// Put writes a record under token, overwriting unconditionally.
	Put(ctx context.Context, token string, identity auth.Identity, ttl time.Duration) error

	// Get resolves a token to the identity it was issued for.
	Get(ctx context.Context, token string) (*auth.Identity, error)

	// Touch resets the remaining expiry without altering the value.
	Touch(ctx context.Context, token string, ttl time.Duration) error

	// Delete removes a record. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
