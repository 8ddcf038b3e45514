package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"salesledger/internal/ledger"
	"salesledger/internal/models"
)

// The grant-side lookup requires an open interval; the revoke-side lookup
// locates the latest interval regardless of state. Both visible here
// directly against a ledger holding only a closed interval.
func TestLookupAsymmetry(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, nil, nil)
	lead := models.Lead{Name: "L1"}
	require.NoError(t, db.Create(&lead).Error)

	end := time.Now().UTC()
	closed := models.SalesTeamMember{
		UserID:    u.ID,
		StartDate: end.Add(-time.Hour),
		EndDate:   &end,
		LeadID:    &lead.ID,
	}
	require.NoError(t, db.Create(&closed).Error)

	target := ledger.RecordRef{Type: ledger.RecordLead, ID: lead.ID}

	var m models.SalesTeamMember
	err := db.Scopes(ledger.OpenForGrant(u.ID, target)).Take(&m).Error
	require.Error(t, err)

	require.NoError(t, db.Scopes(ledger.OpenForRevoke(u.ID, target)).Take(&m).Error)
	require.Equal(t, closed.ID, m.ID)
}

// The revoke lookup picks the most recently started interval when several
// exist for the pair.
func TestRevokeLookupPrefersLatestStart(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, nil, nil)
	opp := models.Opportunity{Name: "O1"}
	require.NoError(t, db.Create(&opp).Error)

	now := time.Now().UTC()
	old := now.Add(-48 * time.Hour)
	oldEnd := now.Add(-24 * time.Hour)
	require.NoError(t, db.Create(&models.SalesTeamMember{
		UserID: u.ID, StartDate: old, EndDate: &oldEnd, OpportunityID: &opp.ID,
	}).Error)
	latest := models.SalesTeamMember{
		UserID: u.ID, StartDate: now, OpportunityID: &opp.ID,
	}
	require.NoError(t, db.Create(&latest).Error)

	target := ledger.RecordRef{Type: ledger.RecordOpportunity, ID: opp.ID}

	var m models.SalesTeamMember
	require.NoError(t, db.Scopes(ledger.OpenForRevoke(u.ID, target)).Take(&m).Error)
	require.Equal(t, latest.ID, m.ID)
}
