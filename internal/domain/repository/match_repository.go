// File: internal/domain/repository/match_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Daniell17/football-app/internal/domain/models"
)

// MatchFilter ограничивает выборку матчей
type MatchFilter struct {
	Status   string
	Upcoming bool
}

// MatchRepository defines persistence operations for matches.
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	List(ctx context.Context, filter MatchFilter) ([]*models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SellTickets performs the guarded inventory increment. It reports false
	// without an error when the guard rejects the update, i.e. the match is
	// finished or fewer than quantity tickets remain.
	SellTickets(ctx context.Context, id uuid.UUID, quantity int) (bool, error)
}
