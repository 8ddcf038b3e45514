package ledger

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

// TargetContext is the read-only snapshot of contextual links fetched from
// the target record once per event. Either field may be absent.
type TargetContext struct {
	HierarchyID *int64
	PackageID   *int64
}

// ResolveTarget fetches the hierarchy/package context for the target record.
// It fails softly: a missing reference, unsupported type, or absent record
// yields an empty context and a log line, never an error. Store failures
// beyond not-found are surfaced.
func ResolveTarget(db *gorm.DB, target RecordRef) (TargetContext, error) {
	if target.ID == 0 || target.Type == "" {
		log.Printf("ledger: resolve skipped, incomplete target ref %q/%d", target.Type, target.ID)
		return TargetContext{}, nil
	}

	spec, ok := recordTypes[target.Type]
	if !ok {
		log.Printf("ledger: resolve skipped, unsupported record type %q", target.Type)
		return TargetContext{}, nil
	}

	ctx, err := spec.fetchContext(db, target.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("ledger: resolve found no %s with id %d", target.Type, target.ID)
		return TargetContext{}, nil
	}
	if err != nil {
		return TargetContext{}, err
	}
	return ctx, nil
}
