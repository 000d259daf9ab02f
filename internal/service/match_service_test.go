// File: internal/service/match_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
)

func newMatchServiceFixture() (*MockMatchRepository, *MatchService) {
	repo := new(MockMatchRepository)
	return repo, NewMatchService(repo, zap.NewNop())
}

func TestCreateMatchDefaultsToScheduled(t *testing.T) {
	repo, svc := newMatchServiceFixture()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Match) bool {
		return m.Status == models.MatchStatusScheduled
	})).Return(nil)

	match, err := svc.Create(context.Background(), MatchInput{
		HomeTeam:     "Žalgiris",
		AwayTeam:     "Sūduva",
		KickoffAt:    time.Now().Add(72 * time.Hour),
		TicketPrice:  1500,
		TotalTickets: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusScheduled, match.Status)
}

func TestCreateMatchRejectsUnknownStatus(t *testing.T) {
	repo, svc := newMatchServiceFixture()

	_, err := svc.Create(context.Background(), MatchInput{Status: "POSTPONED"})
	assert.ErrorIs(t, err, domainErrors.ErrInvalidRequest)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateMatchCannotShrinkBelowSold(t *testing.T) {
	repo, svc := newMatchServiceFixture()
	match := scheduledMatch(100, 40)

	repo.On("FindByID", mock.Anything, match.ID).Return(match, nil)

	_, err := svc.Update(context.Background(), match.ID, MatchInput{TotalTickets: 30})
	assert.ErrorIs(t, err, domainErrors.ErrInvalidRequest)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateMatchPartial(t *testing.T) {
	repo, svc := newMatchServiceFixture()
	match := scheduledMatch(100, 40)
	originalAway := match.AwayTeam

	repo.On("FindByID", mock.Anything, match.ID).Return(match, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Match")).Return(nil)

	updated, err := svc.Update(context.Background(), match.ID, MatchInput{Status: models.MatchStatusLive})
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusLive, updated.Status)
	assert.Equal(t, originalAway, updated.AwayTeam)
}
