// File: internal/domain/service/access_policy_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Daniell17/football-app/internal/domain/models"
)

func TestCan(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		action    string
		resource  string
		allowed   bool
		ownerOnly bool
	}{
		{"admin creates match", models.RoleAdmin, ActionCreate, ResourceMatch, true, false},
		{"admin deletes news", models.RoleAdmin, ActionDelete, ResourceNews, true, false},
		{"admin reads any payment", models.RoleAdmin, ActionRead, ResourcePayment, true, false},
		{"admin deletes any session", models.RoleAdmin, ActionDelete, ResourceSession, true, false},
		{"admin cannot create tickets", models.RoleAdmin, ActionCreate, ResourceTicket, false, false},

		{"user buys ticket", models.RoleUser, ActionCreate, ResourceTicket, true, false},
		{"user reads own tickets", models.RoleUser, ActionRead, ResourceTicket, true, true},
		{"user reads own payments", models.RoleUser, ActionRead, ResourcePayment, true, true},
		{"user deletes own session", models.RoleUser, ActionDelete, ResourceSession, true, true},
		{"user cannot create match", models.RoleUser, ActionCreate, ResourceMatch, false, false},
		{"user cannot update news", models.RoleUser, ActionUpdate, ResourceNews, false, false},

		{"unknown role denied", "MODERATOR", ActionRead, ResourceTicket, false, false},
		{"unknown resource denied", models.RoleAdmin, ActionRead, "stadium", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, ownerOnly := Can(tt.role, tt.action, tt.resource)
			assert.Equal(t, tt.allowed, allowed)
			assert.Equal(t, tt.ownerOnly, ownerOnly)
		})
	}
}
