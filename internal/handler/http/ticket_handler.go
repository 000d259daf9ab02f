// File: internal/handler/http/ticket_handler.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/service"
)

// TicketHandler обрабатывает покупку билетов и список билетов пользователя
type TicketHandler struct {
	logger          *zap.Logger
	purchaseService *service.PurchaseService
}

// NewTicketHandler создает новый TicketHandler.
func NewTicketHandler(logger *zap.Logger, purchaseService *service.PurchaseService) *TicketHandler {
	return &TicketHandler{
		logger:          logger.Named("ticket_handler"),
		purchaseService: purchaseService,
	}
}

type purchaseRequest struct {
	MatchID  string `json:"match_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=10"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// Purchase reserves a pending ticket order and returns the gateway redirect
// URL. Inventory is only consumed once the gateway confirms the payment.
// POST /api/v1/tickets/purchase
func (h *TicketHandler) Purchase(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}

	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}
	matchID, err := uuid.Parse(req.MatchID)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid match id", "bad_request", h.logger)
		return
	}

	purchase, err := h.purchaseService.InitializePayment(c.Request.Context(), userID, matchID, req.Quantity, req.Email)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusCreated, purchase)
}

// My returns the tickets of the current user.
// GET /api/v1/tickets/my
func (h *TicketHandler) My(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}

	tickets, err := h.purchaseService.ListUserTickets(c.Request.Context(), userID)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, gin.H{"tickets": tickets})
}
