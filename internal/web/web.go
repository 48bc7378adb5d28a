package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danipardo/petclinic/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded view templates. Meant to be installed
// once on the router via SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Principal resolves the display name of the authenticated user, if
// the session gate attached one to this request.
func Principal(c *gin.Context) string {
	if identity, ok := middleware.IdentityFromContext(c.Request.Context()); ok {
		return identity.Username
	}
	return "Not logged in"
}

// Home renders the public landing page.
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Principal": Principal(c),
	})
}

// RenderError renders the generic failure page. Internal error detail
// stays in the logs.
func RenderError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", nil)
	c.Abort()
}
