// File: internal/domain/repository/news_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Daniell17/football-app/internal/domain/models"
)

// NewsRepository defines persistence operations for club news.
type NewsRepository interface {
	Create(ctx context.Context, article *models.NewsArticle) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.NewsArticle, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*models.NewsArticle, error)
	Update(ctx context.Context, article *models.NewsArticle) error
	Delete(ctx context.Context, id uuid.UUID) error
}
