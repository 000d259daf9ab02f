// File: internal/service/news_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/domain/models"
	"github.com/Daniell17/football-app/internal/domain/repository"
)

// NewsInput carries the editable fields of a news article.
type NewsInput struct {
	Title     string
	Content   string
	Published bool
}

// NewsService реализует публичную ленту новостей и административный CRUD.
type NewsService struct {
	newsRepo repository.NewsRepository
	logger   *zap.Logger
}

// NewNewsService создает новый NewsService.
func NewNewsService(newsRepo repository.NewsRepository, logger *zap.Logger) *NewsService {
	return &NewsService{
		newsRepo: newsRepo,
		logger:   logger.Named("news_service"),
	}
}

// ListPublished возвращает опубликованные новости, новые первыми.
func (s *NewsService) ListPublished(ctx context.Context, limit, offset int) ([]*models.NewsArticle, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.newsRepo.ListPublished(ctx, limit, offset)
}

// Get возвращает одну новость.
func (s *NewsService) Get(ctx context.Context, id uuid.UUID) (*models.NewsArticle, error) {
	return s.newsRepo.FindByID(ctx, id)
}

// Create создает новость от имени автора.
func (s *NewsService) Create(ctx context.Context, authorID uuid.UUID, input NewsInput) (*models.NewsArticle, error) {
	now := time.Now()
	article := &models.NewsArticle{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Published {
		article.PublishedAt = &now
	}
	if err := s.newsRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Update обновляет новость.
func (s *NewsService) Update(ctx context.Context, id uuid.UUID, input NewsInput) (*models.NewsArticle, error) {
	article, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		article.Title = input.Title
	}
	if input.Content != "" {
		article.Content = input.Content
	}
	if input.Published && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}
	if !input.Published {
		article.PublishedAt = nil
	}

	if err := s.newsRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Delete удаляет новость.
func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.newsRepo.Delete(ctx, id)
}
