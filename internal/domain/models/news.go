// File: internal/domain/models/news.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsArticle представляет новость клуба
type NewsArticle struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	AuthorID    uuid.UUID  `json:"author_id" db:"author_id"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
