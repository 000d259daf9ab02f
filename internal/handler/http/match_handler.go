// File: internal/handler/http/match_handler.go
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/domain/repository"
	"github.com/Daniell17/football-app/internal/service"
)

// MatchHandler обрабатывает публичный каталог матчей и административный CRUD
type MatchHandler struct {
	logger       *zap.Logger
	matchService *service.MatchService
}

// NewMatchHandler создает новый MatchHandler.
func NewMatchHandler(logger *zap.Logger, matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{
		logger:       logger.Named("match_handler"),
		matchService: matchService,
	}
}

// List returns matches, optionally filtered by status or upcoming kickoff.
// GET /api/v1/matches
func (h *MatchHandler) List(c *gin.Context) {
	filter := repository.MatchFilter{
		Status:   c.Query("status"),
		Upcoming: c.Query("upcoming") == "true",
	}

	matches, err := h.matchService.List(c.Request.Context(), filter)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, gin.H{"matches": matches})
}

// Get returns a single match.
// GET /api/v1/matches/:id
func (h *MatchHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid match id", "bad_request", h.logger)
		return
	}

	match, err := h.matchService.Get(c.Request.Context(), id)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, match)
}

type matchRequest struct {
	HomeTeam     string    `json:"home_team" binding:"required,max=200"`
	AwayTeam     string    `json:"away_team" binding:"required,max=200"`
	Venue        string    `json:"venue" binding:"max=200"`
	KickoffAt    time.Time `json:"kickoff_at" binding:"required,notpast"`
	Status       string    `json:"status" binding:"omitempty,oneof=SCHEDULED LIVE FINISHED"`
	TicketPrice  int64     `json:"ticket_price" binding:"required,min=0"` // минорные единицы
	TotalTickets int       `json:"total_tickets" binding:"required,min=0"`
}

type matchUpdateRequest struct {
	HomeTeam     string    `json:"home_team" binding:"omitempty,max=200"`
	AwayTeam     string    `json:"away_team" binding:"omitempty,max=200"`
	Venue        string    `json:"venue" binding:"omitempty,max=200"`
	KickoffAt    time.Time `json:"kickoff_at"`
	Status       string    `json:"status" binding:"omitempty,oneof=SCHEDULED LIVE FINISHED"`
	TicketPrice  int64     `json:"ticket_price" binding:"omitempty,min=0"`
	TotalTickets int       `json:"total_tickets" binding:"omitempty,min=0"`
}

// Create creates a match.
// POST /api/v1/admin/matches
func (h *MatchHandler) Create(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}

	match, err := h.matchService.Create(c.Request.Context(), service.MatchInput{
		HomeTeam:     req.HomeTeam,
		AwayTeam:     req.AwayTeam,
		Venue:        req.Venue,
		KickoffAt:    req.KickoffAt,
		Status:       req.Status,
		TicketPrice:  req.TicketPrice,
		TotalTickets: req.TotalTickets,
	})
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusCreated, match)
}

// Update partially updates a match.
// PATCH /api/v1/admin/matches/:id
func (h *MatchHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid match id", "bad_request", h.logger)
		return
	}

	var req matchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}

	match, err := h.matchService.Update(c.Request.Context(), id, service.MatchInput{
		HomeTeam:     req.HomeTeam,
		AwayTeam:     req.AwayTeam,
		Venue:        req.Venue,
		KickoffAt:    req.KickoffAt,
		Status:       req.Status,
		TicketPrice:  req.TicketPrice,
		TotalTickets: req.TotalTickets,
	})
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, match)
}

// Delete deletes a match.
// DELETE /api/v1/admin/matches/:id
func (h *MatchHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid match id", "bad_request", h.logger)
		return
	}

	if err := h.matchService.Delete(c.Request.Context(), id); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithNoContent(c)
}
