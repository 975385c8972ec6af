package storage

import (
	"context"

	"github.com/klarity-app/klarity/pkg/models"
)

// TargetStore defines the interface for managing savings targets.
//
// A deposit is a composite operation owned by the caller: increment the
// target's CollectedAmount, Save it, then create the mirroring synthetic
// expense through the LedgerStore. The two writes are sequential and not
// atomic.
type TargetStore interface {
	// ListTargets retrieves all savings targets.
	ListTargets(ctx context.Context) ([]models.Target, error)

	// SaveTarget upserts a target by id and returns the updated list.
	SaveTarget(ctx context.Context, target *models.Target) ([]models.Target, error)

	// DeleteTarget removes a target by id and returns the updated list.
	DeleteTarget(ctx context.Context, id string) ([]models.Target, error)
}
