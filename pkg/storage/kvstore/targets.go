package kvstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/klarity-app/klarity/pkg/models"
)

// ListTargets retrieves all savings targets.
func (s *Store) ListTargets(ctx context.Context) ([]models.Target, error) {
	return readList[models.Target](s, KeyTargets), nil
}

// SaveTarget upserts a target by id and returns the updated list.
func (s *Store) SaveTarget(ctx context.Context, target *models.Target) ([]models.Target, error) {
	if target.Id == "" {
		target.Id = uuid.New().String()
	}
	current := readList[models.Target](s, KeyTargets)
	found := false
	for i := range current {
		if current[i].Id == target.Id {
			current[i] = *target
			found = true
			break
		}
	}
	if !found {
		current = append(current, *target)
	}
	if err := writeList(s, KeyTargets, current); err != nil {
		return readList[models.Target](s, KeyTargets), err
	}
	return current, nil
}

// DeleteTarget removes a target by id and returns the updated list.
func (s *Store) DeleteTarget(ctx context.Context, id string) ([]models.Target, error) {
	current := readList[models.Target](s, KeyTargets)
	updated := current[:0:0]
	for _, t := range current {
		if t.Id != id {
			updated = append(updated, t)
		}
	}
	if err := writeList(s, KeyTargets, updated); err != nil {
		return readList[models.Target](s, KeyTargets), err
	}
	return updated, nil
}
