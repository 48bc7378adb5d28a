package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danipardo/petclinic/internal/auth/credentials"
	"github.com/danipardo/petclinic/internal/logger"
	"github.com/danipardo/petclinic/internal/session"
)

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginPage renders the login form. The error query flag renders the
// same generic message for every failure mode.
func (h *Handler) LoginPage(c *gin.Context) {
	data := gin.H{}
	if _, hasError := c.GetQuery("error"); hasError {
		data["Error"] = "Invalid credentials (try with admin/admin)"
	}
	c.HTML(http.StatusOK, "login.html", data)
}

// Login runs the full login transition: verify credentials, generate a
// token, persist the session record, issue the cookie. A store write
// failure fails the login outright; a cookie with no backing record
// would just be rejected on the next request anyway.
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/login?error")
		return
	}

	identity, err := h.credentials.Authenticate(
		c.Request.Context(),
		form.Username,
		form.Password,
	)
	if err != nil {
		if !errors.Is(err, credentials.ErrInvalidCredentials) {
			logger.Error("login: credential check failed", map[string]any{
				"error": err.Error(),
			})
		}
		c.Redirect(http.StatusFound, "/login?error")
		return
	}

	token, err := session.NewToken()
	if err != nil {
		logger.Error("login: token generation failed", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, "/login?error")
		return
	}

	if err := h.sessions.Put(c.Request.Context(), token, *identity, h.sessionTimeout); err != nil {
		logger.Error("login: session write failed", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, "/login?error")
		return
	}

	session.SetCookie(c.Writer, token, session.CookieOptions{})

	logger.Info("login succeeded", map[string]any{
		"username": identity.Username,
		"user_id":  identity.ID,
	})

	c.Redirect(http.StatusFound, "/pets")
}
