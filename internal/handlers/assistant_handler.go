package handlers

import (
	"net/http"
	"strings"

	"vagaspg_backend/internal/middleware"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/services"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	*BaseHandler
	assistantService services.AssistantService
	limiter          *middleware.RateLimiter
	maxResumeSize    int64
}

func NewAssistantHandler(
	base *BaseHandler,
	assistantService services.AssistantService,
	limiter *middleware.RateLimiter,
	maxResumeSize int64,
) *AssistantHandler {
	return &AssistantHandler{
		BaseHandler:      base,
		assistantService: assistantService,
		limiter:          limiter,
		maxResumeSize:    maxResumeSize,
	}
}

func (h *AssistantHandler) RegisterRoutes(r *gin.RouterGroup) {
	assistant := r.Group("/assistant")
	assistant.Use(middleware.RateLimitMiddleware(h.limiter))
	{
		assistant.POST("/resume", h.ImproveResume)
		assistant.GET("/interview/:jobId", h.InterviewTips)
	}

	extract := assistant.Group("/extract")
	extract.Use(middleware.RequireRoles(models.ProfileRoleCompany, models.ProfileRoleAdmin))
	{
		extract.POST("/text", h.ExtractText)
		extract.POST("/image", h.ExtractImage)
	}
}

// ExtractText turns a pasted job ad into a draft for the posting form.
func (h *AssistantHandler) ExtractText(c *gin.Context) {
	var req dto.ExtractTextRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	draft, err := h.assistantService.ExtractFromText(c.Request.Context(), h.GetSession(c), req.Text)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// ExtractImage reads a flyer photo sent as multipart field "image".
func (h *AssistantHandler) ExtractImage(c *gin.Context) {
	file, ok := h.OptionalFile(c, "image")
	if !ok {
		return
	}
	if file == nil {
		apperrors.HandleError(c, apperrors.FieldError("image", "image file is required"))
		return
	}

	data, ok := h.ReadFile(c, file, services.MaxImageSize)
	if !ok {
		return
	}

	draft, err := h.assistantService.ExtractFromImage(c.Request.Context(), h.GetSession(c), data)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// ImproveResume accepts JSON {"resume_text"} or a multipart PDF under "resume".
func (h *AssistantHandler) ImproveResume(c *gin.Context) {
	var (
		text string
		pdf  []byte
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, ok := h.OptionalFile(c, "resume")
		if !ok {
			return
		}
		if file == nil {
			apperrors.HandleError(c, apperrors.FieldError("resume", "resume file is required"))
			return
		}
		if pdf, ok = h.ReadFile(c, file, h.maxResumeSize); !ok {
			return
		}
	} else {
		var req dto.ImproveResumeRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
		text = req.ResumeText
	}

	improved, err := h.assistantService.ImproveResume(c.Request.Context(), text, pdf)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AssistantTextResponse{Text: improved})
}

func (h *AssistantHandler) InterviewTips(c *gin.Context) {
	tips, err := h.assistantService.InterviewTips(c.Request.Context(), h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AssistantTextResponse{Text: tips})
}
