package ledger

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"salesledger/internal/audit"
)

// Dispatcher is the entry point the host invokes once per access-control
// event. It classifies by event kind and routes to the engine; any hard
// failure underneath comes back as a single wrapped error for the whole
// event. Delivery may be at-least-once: both handlers tolerate duplicates.
type Dispatcher struct {
	engine *Engine
	sink   *audit.Recorder
}

func NewDispatcher(db *gorm.DB) *Dispatcher {
	sink := audit.New(db)
	return &Dispatcher{engine: NewEngine(db, sink), sink: sink}
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev ShareEvent) error {
	switch strings.ToLower(strings.TrimSpace(ev.Kind)) {
	case EventGrant:
		if err := d.engine.HandleGrant(ctx, ev); err != nil {
			return fmt.Errorf("grant event for %s/%d: %w", ev.Target.Type, ev.Target.ID, err)
		}
	case EventRevoke:
		if err := d.engine.HandleRevoke(ctx, ev); err != nil {
			return fmt.Errorf("revoke event for %s/%d: %w", ev.Target.Type, ev.Target.ID, err)
		}
	default:
		d.sink.Record(ctx, audit.Entry{
			Action:     "event.rejected",
			RecordType: string(ev.Target.Type),
			RecordID:   ev.Target.ID,
			UserID:     ev.Principal.ID,
			Outcome:    "skipped",
			Metadata:   map[string]any{"kind": ev.Kind, "reason": "unknown event kind"},
		})
	}
	return nil
}
