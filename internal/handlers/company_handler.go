package handlers

import (
	"net/http"

	"vagaspg_backend/internal/middleware"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/services"
	"vagaspg_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CompanyHandler serves a company account's own profile.
type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	company := r.Group("/company")
	company.Use(middleware.RequireRoles(models.ProfileRoleCompany))
	{
		company.GET("/profile", h.GetProfile)
		company.PUT("/profile", h.UpdateProfile)
	}
}

func (h *CompanyHandler) GetProfile(c *gin.Context) {
	company, err := h.companyService.GetOwnCompany(c.Request.Context(), h.GetDB(c), h.GetSession(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.UpdateOwnCompany(c.Request.Context(), h.GetDB(c), h.GetSession(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}
