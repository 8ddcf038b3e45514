package ledger

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"salesledger/internal/models"
)

// Action selects which interval boundary a composed entry carries.
type Action string

const (
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

// ComposeMember assembles a full ledger entry for a new participation
// interval: identity, the one interval boundary matching the action, the
// type-specific correlation reference, context links from the resolved
// target, and whichever profile attributes the principal has set. Only the
// grant path composes today; revoke closes in place.
func ComposeMember(db *gorm.DB, principal PrincipalRef, action Action, target RecordRef, ctx TargetContext, now time.Time) (*models.SalesTeamMember, error) {
	m := &models.SalesTeamMember{UserID: principal.ID}

	switch action {
	case ActionGrant:
		m.StartDate = now
	case ActionRevoke:
		m.EndDate = &now
	}

	recordTypes[target.Type].setRef(m, target.ID)

	// The resolver already normalizes project- and hierarchy-sourced context
	// into the same slots, so a single copy covers both target shapes.
	if ctx.HierarchyID != nil {
		m.HierarchyID = ctx.HierarchyID
	}
	if ctx.PackageID != nil {
		m.PackageID = ctx.PackageID
	}

	if principal.Kind == PrincipalUser {
		var u models.User
		err := db.Select("role", "line_of_business").
			Where("id = ?", principal.ID).
			Take(&u).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Printf("ledger: no profile for user %d, composing without attributes", principal.ID)
		case err != nil:
			return nil, err
		default:
			m.Role = u.Role
			m.LineOfBusiness = u.LineOfBusiness
		}
	}

	return m, nil
}
