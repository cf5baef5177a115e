package handlers

import (
	"net/http"

	"vagaspg_backend/internal/middleware"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/services"
	"vagaspg_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public board
	public := r.Group("/jobs")
	{
		public.GET("", h.ListPublic)
		public.GET("/:jobId", h.GetPublic)
	}

	// Company dashboard
	company := r.Group("/company/jobs")
	company.Use(middleware.RequireRoles(models.ProfileRoleCompany))
	{
		company.GET("", h.ListOwn)
		company.POST("", h.Create)
		company.PUT("/:jobId", h.Update)
		company.DELETE("/:jobId", h.Delete)
		company.POST("/:jobId/pause", h.statusAction(models.JobStatusPaused))
		company.POST("/:jobId/reactivate", h.statusAction(models.JobStatusActive))
		company.POST("/:jobId/close", h.statusAction(models.JobStatusClosed))
	}
}

// --- Public ---

func (h *JobHandler) ListPublic(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.ListPublic(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) GetPublic(c *gin.Context) {
	job, err := h.jobService.GetPublic(c.Request.Context(), h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// --- Company ---

func (h *JobHandler) ListOwn(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.ListOwn(c.Request.Context(), h.GetDB(c), h.GetSession(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	session := h.GetSession(c)
	job, err := h.jobService.CreateJob(c.Request.Context(), h.GetDB(c), session, session.CompanyID(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
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

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.DeleteJob(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted successfully",
	})
}

// statusAction backs the pause, reactivate and close buttons.
func (h *JobHandler) statusAction(status models.JobStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, err := h.jobService.UpdateStatus(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("jobId"), string(status))
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, job)
	}
}
