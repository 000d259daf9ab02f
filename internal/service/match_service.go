// File: internal/service/match_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
	"github.com/Daniell17/football-app/internal/domain/repository"
)

// MatchInput carries the fields an administrator can set on a match.
type MatchInput struct {
	HomeTeam     string
	AwayTeam     string
	Venue        string
	KickoffAt    time.Time
	Status       string
	TicketPrice  int64
	TotalTickets int
}

// MatchService реализует публичный каталог матчей и административный CRUD.
type MatchService struct {
	matchRepo repository.MatchRepository
	logger    *zap.Logger
}

// NewMatchService создает новый MatchService.
func NewMatchService(matchRepo repository.MatchRepository, logger *zap.Logger) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		logger:    logger.Named("match_service"),
	}
}

// List возвращает матчи по фильтру.
func (s *MatchService) List(ctx context.Context, filter repository.MatchFilter) ([]*models.Match, error) {
	return s.matchRepo.List(ctx, filter)
}

// Get возвращает один матч.
func (s *MatchService) Get(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return s.matchRepo.FindByID(ctx, id)
}

// Create создает матч в статусе SCHEDULED, если статус не задан явно.
func (s *MatchService) Create(ctx context.Context, input MatchInput) (*models.Match, error) {
	status := input.Status
	if status == "" {
		status = models.MatchStatusScheduled
	}
	if !validMatchStatus(status) {
		return nil, domainErrors.ErrInvalidRequest
	}

	now := time.Now()
	match := &models.Match{
		ID:           uuid.New(),
		HomeTeam:     input.HomeTeam,
		AwayTeam:     input.AwayTeam,
		Venue:        input.Venue,
		KickoffAt:    input.KickoffAt,
		Status:       status,
		TicketPrice:  input.TicketPrice,
		TotalTickets: input.TotalTickets,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}
	s.logger.Info("Match created", zap.String("match_id", match.ID.String()))
	return match, nil
}

// Update обновляет матч. Вместимость нельзя опустить ниже уже проданного.
func (s *MatchService) Update(ctx context.Context, id uuid.UUID, input MatchInput) (*models.Match, error) {
	match, err := s.matchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Status != "" {
		if !validMatchStatus(input.Status) {
			return nil, domainErrors.ErrInvalidRequest
		}
		match.Status = input.Status
	}
	if input.TotalTickets != 0 {
		if input.TotalTickets < match.TicketsSold {
			return nil, domainErrors.ErrInvalidRequest
		}
		match.TotalTickets = input.TotalTickets
	}
	if input.HomeTeam != "" {
		match.HomeTeam = input.HomeTeam
	}
	if input.AwayTeam != "" {
		match.AwayTeam = input.AwayTeam
	}
	if input.Venue != "" {
		match.Venue = input.Venue
	}
	if !input.KickoffAt.IsZero() {
		match.KickoffAt = input.KickoffAt
	}
	if input.TicketPrice != 0 {
		match.TicketPrice = input.TicketPrice
	}

	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// Delete удаляет матч.
func (s *MatchService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.matchRepo.Delete(ctx, id)
}

func validMatchStatus(status string) bool {
	switch status {
	case models.MatchStatusScheduled, models.MatchStatusLive, models.MatchStatusFinished:
		return true
	}
	return false
}
