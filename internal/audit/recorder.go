package audit

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"salesledger/internal/models"
)

// Entry is one diagnostic record. UserID/RecordID may be zero when the
// triggering event was missing those references.
type Entry struct {
	Action     string
	RecordType string
	RecordID   int64
	UserID     int64
	Outcome    string
	Metadata   map[string]any
}

// Recorder persists diagnostic entries to the audit_logs table. Writes are
// best-effort: a failed audit write is logged and never fails the caller.
type Recorder struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

func (r *Recorder) Record(ctx context.Context, e Entry) {
	row := models.AuditLog{
		TraceID:    uuid.NewString(),
		UserID:     e.UserID,
		Action:     e.Action,
		RecordType: e.RecordType,
		RecordID:   e.RecordID,
		Outcome:    e.Outcome,
	}

	if len(e.Metadata) > 0 {
		if raw, err := json.Marshal(e.Metadata); err == nil {
			row.Metadata = datatypes.JSON(raw)
		}
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("audit: failed to record %s (%s): %v", e.Action, e.Outcome, err)
	}
}
