package vets

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danipardo/petclinic/internal/logger"
	"github.com/danipardo/petclinic/internal/web"
)

type Handler struct {
	vets Repository
}

func NewHandler(vets Repository) *Handler {
	return &Handler{vets: vets}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/vets", h.list)
	r.GET("/vets/edit/:id", h.edit)
	r.POST("/vets/save", h.save)
	r.GET("/vets/delete/:id", h.delete)
}

type vetForm struct {
	ID   int64  `form:"id"`
	Name string `form:"name"`
}

func (h *Handler) list(c *gin.Context) {
	name := c.Query("name")

	list, err := h.vets.Search(c.Request.Context(), name)
	if err != nil {
		logger.Error("vets: list failed", map[string]any{"error": err.Error()})
		web.RenderError(c)
		return
	}

	c.HTML(http.StatusOK, "vet_list.html", gin.H{
		"Vets":      list,
		"Name":      name,
		"Principal": web.Principal(c),
	})
}

// edit renders the vet form; id 0 is a blank form for a new vet.
func (h *Handler) edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/vets")
		return
	}

	vet := &Vet{}
	if id != 0 {
		vet, err = h.vets.Get(c.Request.Context(), id)
		if err != nil {
			logger.Error("vets: get failed", map[string]any{"error": err.Error()})
			web.RenderError(c)
			return
		}
		if vet == nil {
			c.Redirect(http.StatusFound, "/vets")
			return
		}
	}

	c.HTML(http.StatusOK, "vet_edit.html", gin.H{
		"Vet":       vet,
		"Principal": web.Principal(c),
	})
}

func (h *Handler) save(c *gin.Context) {
	var form vetForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/vets")
		return
	}

	vet := &Vet{Name: form.Name}
	if form.ID != 0 {
		existing, err := h.vets.Get(c.Request.Context(), form.ID)
		if err != nil {
			logger.Error("vets: save lookup failed", map[string]any{"error": err.Error()})
			web.RenderError(c)
			return
		}
		if existing == nil {
			c.Redirect(http.StatusFound, "/vets")
			return
		}
		existing.Name = form.Name
		vet = existing
	}

	if err := h.vets.Save(c.Request.Context(), vet); err != nil {
		logger.Error("vets: save failed", map[string]any{"error": err.Error()})
		web.RenderError(c)
		return
	}

	c.Redirect(http.StatusFound, "/vets")
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/vets")
		return
	}

	// deleting an absent vet is a no-op
	if err := h.vets.Delete(c.Request.Context(), id); err != nil {
		logger.Error("vets: delete failed", map[string]any{"error": err.Error()})
		web.RenderError(c)
		return
	}

	c.Redirect(http.StatusFound, "/vets")
}
