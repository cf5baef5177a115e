package handlers

import (
	"net/http"

	"vagaspg_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegistryHandler checks a company registration number for the sign-up form.
type RegistryHandler struct {
	*BaseHandler
	registryService services.RegistryService
}

func NewRegistryHandler(base *BaseHandler, registryService services.RegistryService) *RegistryHandler {
	return &RegistryHandler{
		BaseHandler:     base,
		registryService: registryService,
	}
}

func (h *RegistryHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/registry/:number", h.Lookup)
}

func (h *RegistryHandler) Lookup(c *gin.Context) {
	company, err := h.registryService.Lookup(c.Request.Context(), h.GetDB(c), c.Param("number"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}
