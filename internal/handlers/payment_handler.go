package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/middleware"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/payments"
	"vagaspg_backend/internal/services"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody bounds the processor notification payload.
const maxWebhookBody = 64 << 10

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/payments/webhook", h.Webhook)

	company := r.Group("/company")
	company.Use(middleware.RequireRoles(models.ProfileRoleCompany))
	{
		company.POST("/jobs/:jobId/checkout", h.Checkout)
		company.GET("/payments", h.ListOwn)
	}
}

func (h *PaymentHandler) Checkout(c *gin.Context) {
	checkout, err := h.paymentService.CreateCheckout(c.Request.Context(), h.GetDB(c), h.GetSession(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, checkout)
}

func (h *PaymentHandler) ListOwn(c *gin.Context) {
	list, err := h.paymentService.ListOwn(c.Request.Context(), h.GetDB(c), h.GetSession(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": list,
		"total":    len(list),
	})
}

// Webhook keeps the raw body for the signature check and the payment snapshot.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		logger.CtxWithError(ctx, "Failed to read webhook body", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	var req dto.PaymentWebhookRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		logger.CtxWithError(ctx, "Failed to decode webhook body", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}
	if !h.validate(c, &req, "body") {
		return
	}

	payment, err := h.paymentService.HandleWebhook(ctx, h.GetDB(c), &req, raw, c.GetHeader(payments.SignatureHeader))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_id": payment.ID,
		"status":     payment.Status,
	})
}
