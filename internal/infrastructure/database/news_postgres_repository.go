// File: internal/infrastructure/database/news_postgres_repository.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
	"github.com/Daniell17/football-app/internal/domain/repository"
)

const newsColumns = `id, title, content, author_id, published_at, created_at, updated_at`

type pgxNewsRepository struct {
	pool *pgxpool.Pool
}

// NewPgxNewsRepository creates a new instance of pgxNewsRepository.
func NewPgxNewsRepository(pool *pgxpool.Pool) repository.NewsRepository {
	return &pgxNewsRepository{pool: pool}
}

var _ repository.NewsRepository = (*pgxNewsRepository)(nil)

func (r *pgxNewsRepository) Create(ctx context.Context, article *models.NewsArticle) error {
	query := `
		INSERT INTO news (id, title, content, author_id, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := querierFrom(ctx, r.pool).Exec(ctx, query,
		article.ID, article.Title, article.Content, article.AuthorID,
		article.PublishedAt, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create news article: %w", err)
	}
	return nil
}

func (r *pgxNewsRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.NewsArticle, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id = $1`
	article := &models.NewsArticle{}
	err := querierFrom(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&article.ID, &article.Title, &article.Content, &article.AuthorID,
		&article.PublishedAt, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find news article by ID: %w", err)
	}
	return article, nil
}

func (r *pgxNewsRepository) ListPublished(ctx context.Context, limit, offset int) ([]*models.NewsArticle, error) {
	query := `
		SELECT ` + newsColumns + `
		FROM news
		WHERE published_at IS NOT NULL AND published_at <= NOW()
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := querierFrom(ctx, r.pool).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()

	var articles []*models.NewsArticle
	for rows.Next() {
		article := &models.NewsArticle{}
		if err := rows.Scan(
			&article.ID, &article.Title, &article.Content, &article.AuthorID,
			&article.PublishedAt, &article.CreatedAt, &article.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan news article: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating news: %w", err)
	}
	return articles, nil
}

func (r *pgxNewsRepository) Update(ctx context.Context, article *models.NewsArticle) error {
	query := `
		UPDATE news
		SET title = $2, content = $3, published_at = $4, updated_at = NOW()
		WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query,
		article.ID, article.Title, article.Content, article.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update news article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *pgxNewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM news WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete news article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
