// File: internal/domain/service/access_policy.go
package service

import "github.com/Daniell17/football-app/internal/domain/models"

// Действия и ресурсы статической таблицы доступа
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"

	ResourceMatch   = "match"
	ResourceNews    = "news"
	ResourceTicket  = "ticket"
	ResourceSession = "session"
	ResourcePayment = "payment"
)

type policyRule struct {
	role      string
	action    string
	resource  string
	ownerOnly bool
}

// policies is the whole authorization model. Rules are additive; anything not
// listed is denied. ownerOnly rules additionally require the subject to own
// the resource, which handlers check against the authenticated user id.
var policies = []policyRule{
	{models.RoleAdmin, ActionCreate, ResourceMatch, false},
	{models.RoleAdmin, ActionUpdate, ResourceMatch, false},
	{models.RoleAdmin, ActionDelete, ResourceMatch, false},
	{models.RoleAdmin, ActionCreate, ResourceNews, false},
	{models.RoleAdmin, ActionUpdate, ResourceNews, false},
	{models.RoleAdmin, ActionDelete, ResourceNews, false},
	{models.RoleAdmin, ActionRead, ResourceTicket, false},
	{models.RoleAdmin, ActionRead, ResourcePayment, false},
	{models.RoleAdmin, ActionRead, ResourceSession, false},
	{models.RoleAdmin, ActionDelete, ResourceSession, false},

	{models.RoleUser, ActionCreate, ResourceTicket, false},
	{models.RoleUser, ActionRead, ResourceTicket, true},
	{models.RoleUser, ActionRead, ResourcePayment, true},
	{models.RoleUser, ActionRead, ResourceSession, true},
	{models.RoleUser, ActionDelete, ResourceSession, true},
}

// Can reports whether role may perform action on resource, and whether the
// permission is limited to resources the subject owns.
func Can(role, action, resource string) (allowed bool, ownerOnly bool) {
	for _, p := range policies {
		if p.role == role && p.action == action && p.resource == resource {
			return true, p.ownerOnly
		}
	}
	return false, false
}
