// File: internal/domain/models/match.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы матчей
const (
	MatchStatusScheduled = "SCHEDULED"
	MatchStatusLive      = "LIVE"
	MatchStatusFinished  = "FINISHED"
)

// Match represents a fixture tickets are sold for. TicketsSold only moves
// through the guarded inventory update, never through plain field writes.
type Match struct {
	ID           uuid.UUID `json:"id" db:"id"`
	HomeTeam     string    `json:"home_team" db:"home_team"`
	AwayTeam     string    `json:"away_team" db:"away_team"`
	Venue        string    `json:"venue" db:"venue"`
	KickoffAt    time.Time `json:"kickoff_at" db:"kickoff_at"`
	Status       string    `json:"status" db:"status"`
	TicketPrice  int64     `json:"ticket_price" db:"ticket_price"` // минорные единицы (центы)
	TotalTickets int       `json:"total_tickets" db:"total_tickets"`
	TicketsSold  int       `json:"tickets_sold" db:"tickets_sold"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// TicketsAvailable возвращает количество свободных билетов
func (m *Match) TicketsAvailable() int {
	return m.TotalTickets - m.TicketsSold
}
