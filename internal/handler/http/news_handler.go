// File: internal/handler/http/news_handler.go
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/service"
)

// NewsHandler обрабатывает публичную ленту новостей и административный CRUD
type NewsHandler struct {
	logger      *zap.Logger
	newsService *service.NewsService
}

// NewNewsHandler создает новый NewsHandler.
func NewNewsHandler(logger *zap.Logger, newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{
		logger:      logger.Named("news_handler"),
		newsService: newsService,
	}
}

// List returns published articles, newest first.
// GET /api/v1/news
func (h *NewsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	articles, err := h.newsService.ListPublished(c.Request.Context(), limit, offset)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, gin.H{"news": articles})
}

// Get returns a single article.
// GET /api/v1/news/:id
func (h *NewsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid article id", "bad_request", h.logger)
		return
	}

	article, err := h.newsService.Get(c.Request.Context(), id)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, article)
}

type newsRequest struct {
	Title     string `json:"title" binding:"required,max=300"`
	Content   string `json:"content" binding:"required"`
	Published bool   `json:"published"`
}

type newsUpdateRequest struct {
	Title     string `json:"title" binding:"omitempty,max=300"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// Create creates an article authored by the current administrator.
// POST /api/v1/admin/news
func (h *NewsHandler) Create(c *gin.Context) {
	authorID, err := currentUserID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}

	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}

	article, err := h.newsService.Create(c.Request.Context(), authorID, service.NewsInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusCreated, article)
}

// Update updates an article.
// PATCH /api/v1/admin/news/:id
func (h *NewsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid article id", "bad_request", h.logger)
		return
	}

	var req newsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}

	article, err := h.newsService.Update(c.Request.Context(), id, service.NewsInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, article)
}

// Delete deletes an article.
// DELETE /api/v1/admin/news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid article id", "bad_request", h.logger)
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), id); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithNoContent(c)
}
