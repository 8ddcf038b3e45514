package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID         int64          `gorm:"primaryKey"`
	TraceID    string         `gorm:"size:36;index"`
	UserID     int64          `gorm:"index"` // principal the event concerned, 0 if missing
	Action     string         `gorm:"size:200;not null"` // e.g. "interval.open", "event.rejected"
	RecordType string         `gorm:"size:100"`
	RecordID   int64          `gorm:"index"`
	Outcome    string         `gorm:"size:100"`
	Metadata   datatypes.JSON `gorm:"type:json"`
	CreatedAt  time.Time
}
