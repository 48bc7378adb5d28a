package pets

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danipardo/petclinic/internal/logger"
	"github.com/danipardo/petclinic/internal/middleware"
	"github.com/danipardo/petclinic/internal/vets"
	"github.com/danipardo/petclinic/internal/web"
)

type Handler struct {
	pets Repository
	vets vets.Repository
}

// NewHandler builds the pet handlers. The vet repository feeds the
// assigned-vet dropdown on the edit form.
func NewHandler(pets Repository, vets vets.Repository) *Handler {
	return &Handler{pets: pets, vets: vets}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/pets", h.list)
	r.GET("/pets/edit/:id", h.edit)
	r.POST("/pets/save", h.save)
	r.GET("/pets/delete/:id", h.delete)
}

type petForm struct {
	ID         int64  `form:"id"`
	Name       string `form:"name"`
	OwnerName  string `form:"owner_name"`
	OwnerPhone string `form:"owner_phone"`
	Age        int    `form:"age"`
	CurrentVet int64  `form:"current_vet"`
	PetType    int    `form:"pet_type"`
}

func (f petForm) vetID() *int64 {
	if f.CurrentVet == 0 {
		return nil
	}
	v := f.CurrentVet
	return &v
}

func (h *Handler) list(c *gin.Context) {
	name := c.Query("name")

	list, err := h.pets.Search(c.Request.Context(), name)
	if err != nil {
		logger.Error("pets: list failed", map[string]any{"error": err.Error()})
		web.RenderError(c)
		return
	}

	c.HTML(http.StatusOK, "pet_list.html", gin.H{
		"Pets":      list,
		"PetTypes":  Types(),
		"Name":      name,
		"Principal": web.Principal(c),
	})
}

// edit renders the pet form; id 0 is a blank form for a new pet.
func (h *Handler) edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/pets")
		return
	}

	pet := &Pet{Type: 1}
	if id != 0 {
		pet, err = h.pets.Get(c.Request.Context(), id)
		if err != nil {
			logger.Error("pets: get failed", map[string]any{"error": err.Error()})
			web.RenderError(c)
			return
		}
		if pet == nil {
			c.Redirect(http.StatusFound, "/pets")
			return
		}
	}

	vetList, err := h.vets.Search(c.Request.Context(), "")
	if err != nil {
		logger.Error("pets: vet list failed", map[string]any{"error": err.Error()})
		web.RenderError(c)
		return
	}

	var currentVet int64
	if pet.VetID != nil {
		currentVet = *pet.VetID
	}

	c.HTML(http.StatusOK, "pet_edit.html", gin.H{
		"Pet":        pet,
		"Vets":       vetList,
		"PetTypes":   Types(),
		"CurrentVet": currentVet,
		"Principal":  web.Principal(c),
	})
}

func (h *Handler) save(c *gin.Context) {
	var form petForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/pets")
		return
	}

	if form.ID == 0 {
		pet := &Pet{
			Name:       form.Name,
			OwnerName:  form.OwnerName,
			OwnerPhone: form.OwnerPhone,
			Age:        form.Age,
			Type:       form.PetType,
			VetID:      form.vetID(),
		}
		if identity, ok := middleware.IdentityFromContext(c.Request.Context()); ok {
			if userID, err := uuid.Parse(identity.ID); err == nil {
				pet.CreatedBy = userID
			}
		}
		if err := h.pets.Save(c.Request.Context(), pet); err != nil {
			logger.Error("pets: insert failed", map[string]any{"error": err.Error()})
			web.RenderError(c)
			return
		}
		c.Redirect(http.StatusFound, "/pets")
		return
	}

	existing, err := h.pets.Get(c.Request.Context(), form.ID)
	if err != nil {
		logger.Error("pets: save lookup failed", map[string]any{"error": err.Error()})
		web.RenderError(c)
		return
	}
	if existing == nil {
		c.Redirect(http.StatusFound, "/pets")
		return
	}

	existing.Name = form.Name
	existing.OwnerName = form.OwnerName
	existing.OwnerPhone = form.OwnerPhone
	existing.Age = form.Age
	existing.Type = form.PetType
	existing.VetID = form.vetID()

	if err := h.pets.Save(c.Request.Context(), existing); err != nil {
		logger.Error("pets: update failed", map[string]any{"error": err.Error()})
		web.RenderError(c)
		return
	}

	c.Redirect(http.StatusFound, "/pets")
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/pets")
		return
	}

	// deleting an absent pet is a no-op
	if err := h.pets.Delete(c.Request.Context(), id); err != nil {
		logger.Error("pets: delete failed", map[string]any{"error": err.Error()})
		web.RenderError(c)
		return
	}

	c.Redirect(http.StatusFound, "/pets")
}
