package ledger

import "gorm.io/gorm"

// Lookup scopes for participation intervals. Both correlate on exactly one
// type-specific reference column; callers must have checked
// target.Type.Supported() first.

// ForRecord scopes intervals to one business record. Callers must have
// checked t.Supported().
func ForRecord(t RecordType, id int64) func(*gorm.DB) *gorm.DB {
	col := recordTypes[t].correlationColumn
	return func(q *gorm.DB) *gorm.DB {
		return q.Where(col+" = ?", id)
	}
}

// OpenForGrant matches the currently open interval for a (principal, target)
// pair: started, not yet ended, most recently started first.
func OpenForGrant(principalID int64, target RecordRef) func(*gorm.DB) *gorm.DB {
	col := recordTypes[target.Type].correlationColumn
	return func(q *gorm.DB) *gorm.DB {
		return q.
			Where("user_id = ?", principalID).
			Where("start_date IS NOT NULL").
			Where("end_date IS NULL").
			Where(col+" = ?", target.ID).
			Order("start_date DESC").
			Distinct().
			Limit(1)
	}
}

// OpenForRevoke matches the most recently started interval for the pair
// without constraining end_date. The asymmetry with OpenForGrant is
// deliberate: the revoke side locates the latest interval regardless of
// state, and the engine decides whether it still needs closing.
func OpenForRevoke(principalID int64, target RecordRef) func(*gorm.DB) *gorm.DB {
	col := recordTypes[target.Type].correlationColumn
	return func(q *gorm.DB) *gorm.DB {
		return q.
			Where("user_id = ?", principalID).
			Where("start_date IS NOT NULL").
			Where(col+" = ?", target.ID).
			Order("start_date DESC").
			Distinct().
			Limit(1)
	}
}
