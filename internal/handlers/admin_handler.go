package handlers

import (
	"net/http"

	"vagaspg_backend/internal/middleware"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/services"
	"vagaspg_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the admin console: every company, job and application.
type AdminHandler struct {
	*BaseHandler
	companyService     services.CompanyService
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewAdminHandler(
	base *BaseHandler,
	companyService services.CompanyService,
	jobService services.JobService,
	applicationService services.ApplicationService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:        base,
		companyService:     companyService,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRoles(models.ProfileRoleAdmin))
	{
		admin.GET("/companies", h.ListCompanies)
		admin.POST("/companies", h.CreateCompany)
		admin.PATCH("/companies/:companyId/status", h.UpdateCompanyStatus)
		admin.DELETE("/companies/:companyId", h.DeleteCompany)

		admin.GET("/jobs", h.ListJobs)
		admin.POST("/jobs", h.CreateJob)
		admin.PUT("/jobs/:jobId", h.UpdateJob)
		admin.PATCH("/jobs/:jobId/status", h.UpdateJobStatus)
		admin.DELETE("/jobs/:jobId", h.DeleteJob)

		admin.GET("/applications", h.ListApplications)
		admin.PATCH("/applications/:applicationId/status", h.UpdateApplicationStatus)
		admin.DELETE("/applications/:applicationId", h.DeleteApplication)
	}
}

// --- Companies ---

func (h *AdminHandler) ListCompanies(c *gin.Context) {
	var query dto.CompanyListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), h.GetDB(c), h.GetSession(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"total":     len(companies),
	})
}

func (h *AdminHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), h.GetDB(c), h.GetSession(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

func (h *AdminHandler) UpdateCompanyStatus(c *gin.Context) {
	var req dto.UpdateCompanyStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.UpdateStatus(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("companyId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany removes the company with its jobs and applications.
func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	result, err := h.companyService.DeleteCompany(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("companyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// --- Jobs ---

func (h *AdminHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.ListAll(c.Request.Context(), h.GetDB(c), h.GetSession(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req dto.AdminJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), h.GetDB(c), h.GetSession(c), req.CompanyID, &req.JobRequest)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *AdminHandler) UpdateJob(c *gin.Context) {
	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *AdminHandler) UpdateJobStatus(c *gin.Context) {
	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateStatus(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("jobId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	if err := h.jobService.DeleteJob(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted successfully",
	})
}

// --- Applications ---

func (h *AdminHandler) ListApplications(c *gin.Context) {
	var query dto.ApplicationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	applications, err := h.applicationService.ListAll(c.Request.Context(), h.GetDB(c), h.GetSession(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}

func (h *AdminHandler) UpdateApplicationStatus(c *gin.Context) {
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

func (h *AdminHandler) DeleteApplication(c *gin.Context) {
	if err := h.applicationService.DeleteApplication(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("applicationId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application deleted successfully",
	})
}
