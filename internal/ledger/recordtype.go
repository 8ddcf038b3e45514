package ledger

import (
	"gorm.io/gorm"

	"salesledger/internal/models"
)

// RecordType is the closed set of business-record types the ledger tracks.
type RecordType string

const (
	RecordPrelead     RecordType = "zox_prelead"
	RecordLead        RecordType = "lead"
	RecordOpportunity RecordType = "opportunity"
)

// typeSpec binds a record type to the ledger column correlating intervals to
// it and to the context fetch for that type. Supporting a new record type is
// one entry here.
type typeSpec struct {
	correlationColumn string
	setRef            func(m *models.SalesTeamMember, id int64)
	fetchContext      func(db *gorm.DB, id int64) (TargetContext, error)
}

var recordTypes = map[RecordType]typeSpec{
	RecordPrelead: {
		correlationColumn: "prelead_id",
		setRef:            func(m *models.SalesTeamMember, id int64) { m.PreleadID = &id },
		fetchContext: func(db *gorm.DB, id int64) (TargetContext, error) {
			return fetchProjectContext(db, &models.Prelead{}, id)
		},
	},
	RecordLead: {
		correlationColumn: "lead_id",
		setRef:            func(m *models.SalesTeamMember, id int64) { m.LeadID = &id },
		fetchContext: func(db *gorm.DB, id int64) (TargetContext, error) {
			return fetchProjectContext(db, &models.Lead{}, id)
		},
	},
	RecordOpportunity: {
		correlationColumn: "opportunity_id",
		setRef:            func(m *models.SalesTeamMember, id int64) { m.OpportunityID = &id },
		fetchContext: func(db *gorm.DB, id int64) (TargetContext, error) {
			var ctx TargetContext
			err := db.Model(&models.Opportunity{}).
				Select("hierarchy_id", "package_id").
				Where("id = ?", id).
				Take(&ctx).Error
			return ctx, err
		},
	},
}

// Supported reports whether t has a ledger correlation. Callers must guard
// with this before building lookups: an unknown type has no correlation
// filter and would match intervals across records.
func (t RecordType) Supported() bool {
	_, ok := recordTypes[t]
	return ok
}

// fetchProjectContext reads hierarchy context for record types that store it
// under a project link rather than a direct hierarchy column. The alias maps
// it into the same downstream slot an opportunity fills directly.
func fetchProjectContext(db *gorm.DB, model any, id int64) (TargetContext, error) {
	var ctx TargetContext
	err := db.Model(model).
		Select("project_id AS hierarchy_id", "package_id").
		Where("id = ?", id).
		Take(&ctx).Error
	return ctx, err
}
