package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danipardo/petclinic/internal/auth"
	"github.com/danipardo/petclinic/internal/logger"
	"github.com/danipardo/petclinic/internal/session"
)

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext extracts the authenticated identity attached by
// the session gate.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*auth.Identity)
	return identity, ok
}

// ContextWithIdentity attaches an identity to a request context. The
// session gate is the only production caller; tests use it to stand in
// for an authenticated request.
func ContextWithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// SessionGate authorizes requests against the session store. Any
// ambiguity between "expired", "malformed" and "store unreachable" is
// resolved as unauthenticated.
type SessionGate struct {
	store   session.Store
	timeout time.Duration
}

func NewSessionGate(store session.Store, timeout time.Duration) *SessionGate {
	return &SessionGate{
		store:   store,
		timeout: timeout,
	}
}

// RequireAuth validates the session cookie on every request, slides
// the TTL window, and attaches the resolved identity to the request
// context. Anything else redirects to the login page.
func (g *SessionGate) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			redirectToLogin(c)
			return
		}

		token := cookie.Value

		identity, err := g.store.Get(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) && !errors.Is(err, session.ErrMalformed) {
				logger.Error("session lookup failed", map[string]any{
					"error": err.Error(),
				})
			}
			redirectToLogin(c)
			return
		}

		// The session is already validated; a failed refresh only means
		// it will expire on its original schedule.
		if err := g.store.Touch(c.Request.Context(), token, g.timeout); err != nil {
			logger.Warn("session refresh failed", map[string]any{
				"error": err.Error(),
			})
		}

		ctx := ContextWithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
