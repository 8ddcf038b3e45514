package models

import "time"

// SalesTeamMember is one participation interval: a user's active association
// with a single business record. EndDate == nil means the interval is still
// open. Exactly one of PreleadID/LeadID/OpportunityID is set, matching the
// record the interval concerns. Rows are immutable once end-dated.
type SalesTeamMember struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	UserID int64  `gorm:"index:idx_member_user;not null"`

	StartDate time.Time  `gorm:"not null;index"`
	EndDate   *time.Time `gorm:"index"`

	PreleadID     *int64 `gorm:"index:idx_member_user"`
	LeadID        *int64 `gorm:"index:idx_member_user"`
	OpportunityID *int64 `gorm:"index:idx_member_user"`

	// Context copied from the target (or its project) at creation time.
	HierarchyID *int64
	PackageID   *int64

	// Profile attributes copied from the user at creation time.
	Role           *string `gorm:"size:100"`
	LineOfBusiness *string `gorm:"size:100"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}
