package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danipardo/petclinic/internal/auth/credentials"
	"github.com/danipardo/petclinic/internal/logger"
	"github.com/danipardo/petclinic/internal/session"
)

type Handler struct {
	credentials    *credentials.Service
	sessions       session.Store
	sessionTimeout time.Duration
}

func NewHandler(
	credentialService *credentials.Service,
	sessionStore session.Store,
	sessionTimeout time.Duration,
) *Handler {
	return &Handler{
		credentials:    credentialService,
		sessions:       sessionStore,
		sessionTimeout: sessionTimeout,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

// Logout terminates the session: the store record is deleted
// (best-effort) and the cookie is cleared, so the token is dead even
// if a copy of the cookie survives client-side.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request.Context(), cookie.Value); err != nil {
			logger.Warn("logout: session delete failed", map[string]any{
				"error": err.Error(),
			})
		}
	}

	session.ClearCookie(c.Writer, session.CookieOptions{})

	c.Redirect(http.StatusFound, "/")
}
