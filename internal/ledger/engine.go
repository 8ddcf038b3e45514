package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"salesledger/internal/audit"
	"salesledger/internal/models"
)

// Engine applies grant/revoke events to the participation ledger. Per
// (principal, target) pair an interval is either absent, open, or closed;
// grants open when nothing is open, revokes close the latest open interval.
// The query-then-write sequences are not atomic; concurrent grants for the
// same pair are the host's problem to serialize (see composite index on the
// ledger table for the backstop).
type Engine struct {
	db   *gorm.DB
	sink *audit.Recorder
	now  func() time.Time
}

func NewEngine(db *gorm.DB, sink *audit.Recorder) *Engine {
	return &Engine{db: db, sink: sink, now: time.Now}
}

// HandleGrant opens a participation interval for the pair unless one is
// already open. Duplicate delivery of the same grant is a no-op.
func (e *Engine) HandleGrant(ctx context.Context, ev ShareEvent) error {
	if !e.validate(ctx, ev) {
		return nil
	}
	db := e.db.WithContext(ctx)

	var existing models.SalesTeamMember
	err := db.Scopes(OpenForGrant(ev.Principal.ID, ev.Target)).Take(&existing).Error
	if err == nil {
		// Already tracked; stay open.
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up open interval: %w", err)
	}

	tctx, err := ResolveTarget(db, ev.Target)
	if err != nil {
		return fmt.Errorf("resolve target %s/%d: %w", ev.Target.Type, ev.Target.ID, err)
	}

	member, err := ComposeMember(db, ev.Principal, ActionGrant, ev.Target, tctx, e.now().UTC())
	if err != nil {
		return fmt.Errorf("compose ledger entry: %w", err)
	}
	if err := db.Create(member).Error; err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}

	e.sink.Record(ctx, audit.Entry{
		Action:     "interval.open",
		RecordType: string(ev.Target.Type),
		RecordID:   ev.Target.ID,
		UserID:     ev.Principal.ID,
		Outcome:    "opened",
		Metadata:   map[string]any{"member_id": member.ID, "access_mask": ev.AccessMask},
	})
	return nil
}

// HandleRevoke closes the latest interval for the pair. Nothing to close, or
// a latest interval that is already closed, is a no-op: closed intervals are
// immutable and a second revoke never re-touches one.
func (e *Engine) HandleRevoke(ctx context.Context, ev ShareEvent) error {
	if !e.validate(ctx, ev) {
		return nil
	}
	db := e.db.WithContext(ctx)

	var found models.SalesTeamMember
	err := db.Scopes(OpenForRevoke(ev.Principal.ID, ev.Target)).Take(&found).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("ledger: revoke for user %d on %s/%d found nothing to close",
			ev.Principal.ID, ev.Target.Type, ev.Target.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("look up interval to close: %w", err)
	}
	if found.EndDate != nil {
		log.Printf("ledger: latest interval %d for user %d on %s/%d already closed",
			found.ID, ev.Principal.ID, ev.Target.Type, ev.Target.ID)
		return nil
	}

	end := e.now().UTC()
	if err := db.Model(&found).Update("end_date", end).Error; err != nil {
		return fmt.Errorf("close ledger entry %d: %w", found.ID, err)
	}

	e.sink.Record(ctx, audit.Entry{
		Action:     "interval.close",
		RecordType: string(ev.Target.Type),
		RecordID:   ev.Target.ID,
		UserID:     ev.Principal.ID,
		Outcome:    "closed",
		Metadata:   map[string]any{"member_id": found.ID},
	})
	return nil
}

// validate checks the references an event must carry. Failures are soft: one
// diagnostic entry, no store mutation, event considered handled.
func (e *Engine) validate(ctx context.Context, ev ShareEvent) bool {
	reason := ""
	switch {
	case ev.Principal.ID == 0:
		reason = "missing principal reference"
	case ev.Target.ID == 0 || ev.Target.Type == "":
		reason = "missing target reference"
	case !ev.Target.Type.Supported():
		reason = fmt.Sprintf("unsupported record type %q", ev.Target.Type)
	}
	if reason == "" {
		return true
	}

	e.sink.Record(ctx, audit.Entry{
		Action:     "event.rejected",
		RecordType: string(ev.Target.Type),
		RecordID:   ev.Target.ID,
		UserID:     ev.Principal.ID,
		Outcome:    "skipped",
		Metadata:   map[string]any{"kind": ev.Kind, "reason": reason},
	})
	return false
}
