// File: internal/handler/http/payment_handler.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/service"
)

// PaymentHandler обрабатывает callback платежного шлюза и запросы статуса
type PaymentHandler struct {
	logger          *zap.Logger
	purchaseService *service.PurchaseService
}

// NewPaymentHandler создает новый PaymentHandler.
func NewPaymentHandler(logger *zap.Logger, purchaseService *service.PurchaseService) *PaymentHandler {
	return &PaymentHandler{
		logger:          logger.Named("payment_handler"),
		purchaseService: purchaseService,
	}
}

// Callback receives the gateway notification. The gateway delivers `data` and
// `ss1` either as form fields or query parameters and retries until it reads
// "OK" back, so duplicate deliveries are expected here.
// POST /api/v1/payments/callback
func (h *PaymentHandler) Callback(c *gin.Context) {
	data := c.PostForm("data")
	if data == "" {
		data = c.Query("data")
	}
	sign := c.PostForm("ss1")
	if sign == "" {
		sign = c.Query("ss1")
	}
	if data == "" || sign == "" {
		RespondWithError(c, http.StatusBadRequest, "data and ss1 are required", "bad_request", h.logger)
		return
	}

	if _, err := h.purchaseService.ConfirmPayment(c.Request.Context(), data, sign); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	// Шлюз прекращает повторы только после ответа "OK"
	c.String(http.StatusOK, "OK")
}

// Status returns the payment state for polling after redirect.
// GET /api/v1/payments/:orderId/status
func (h *PaymentHandler) Status(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}

	status, err := h.purchaseService.GetStatus(c.Request.Context(), c.Param("orderId"), userID, currentRole(c))
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, status)
}
