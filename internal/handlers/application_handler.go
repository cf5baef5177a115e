package handlers

import (
	"net/http"

	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/middleware"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/services"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Candidates have no account
	public := r.Group("/jobs/:jobId")
	{
		public.POST("/applications", h.Submit)
		public.GET("/contact-link", h.ContactLink)
	}

	company := r.Group("/company")
	company.Use(middleware.RequireRoles(models.ProfileRoleCompany))
	{
		company.GET("/applications", h.ListOwn)
		company.GET("/jobs/:jobId/applications", h.ListForJob)
		company.PATCH("/applications/:applicationId/status", h.UpdateStatus)
		company.DELETE("/applications/:applicationId", h.Delete)
	}
}

// --- Candidate ---

// Submit takes the multipart application form with an optional "resume" file.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	file, ok := h.OptionalFile(c, "resume")
	if !ok {
		return
	}

	var resume *dto.ResumeUpload
	if file != nil {
		f, err := file.Open()
		if err != nil {
			logger.CtxWithError(c.Request.Context(), "Failed to open resume", err, "filename", file.Filename)
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart upload"))
			return
		}
		defer f.Close()

		resume = &dto.ResumeUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Size:        file.Size,
			Content:     f,
		}
	}

	application, err := h.applicationService.Submit(c.Request.Context(), h.GetDB(c), c.Param("jobId"), &req, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ContactLink(c *gin.Context) {
	var query dto.ContactLinkQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	link, err := h.applicationService.ContactLink(c.Request.Context(), h.GetDB(c), c.Param("jobId"), query.Name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// --- Company ---

func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	var query dto.ApplicationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	applications, err := h.applicationService.ListOwn(c.Request.Context(), h.GetDB(c), h.GetSession(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	applications, err := h.applicationService.ListForJob(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("applicationId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.applicationService.DeleteApplication(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("applicationId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application deleted successfully",
	})
}
