// Package mocks provides testify mocks for the storage interfaces.
package mocks

import (
	"context"

	"github.com/klarity-app/klarity/pkg/models"
	"github.com/stretchr/testify/mock"
)

// Storage is a mock implementation of storage.Storage.
type Storage struct {
	mock.Mock
}

func (_m *Storage) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	args := _m.Called(ctx)
	var txs []models.Transaction
	if args.Get(0) != nil {
		txs = args.Get(0).([]models.Transaction)
	}
	return txs, args.Error(1)
}

func (_m *Storage) CreateTransaction(ctx context.Context, tx *models.Transaction) ([]models.Transaction, error) {
	args := _m.Called(ctx, tx)
	var txs []models.Transaction
	if args.Get(0) != nil {
		txs = args.Get(0).([]models.Transaction)
	}
	return txs, args.Error(1)
}

func (_m *Storage) UpdateTransaction(ctx context.Context, tx *models.Transaction) ([]models.Transaction, error) {
	args := _m.Called(ctx, tx)
	var txs []models.Transaction
	if args.Get(0) != nil {
		txs = args.Get(0).([]models.Transaction)
	}
	return txs, args.Error(1)
}

func (_m *Storage) DeleteTransaction(ctx context.Context, id string) ([]models.Transaction, bool, error) {
	args := _m.Called(ctx, id)
	var txs []models.Transaction
	if args.Get(0) != nil {
		txs = args.Get(0).([]models.Transaction)
	}
	return txs, args.Bool(1), args.Error(2)
}

func (_m *Storage) ListTargets(ctx context.Context) ([]models.Target, error) {
	args := _m.Called(ctx)
	var targets []models.Target
	if args.Get(0) != nil {
		targets = args.Get(0).([]models.Target)
	}
	return targets, args.Error(1)
}

func (_m *Storage) SaveTarget(ctx context.Context, target *models.Target) ([]models.Target, error) {
	args := _m.Called(ctx, target)
	var targets []models.Target
	if args.Get(0) != nil {
		targets = args.Get(0).([]models.Target)
	}
	return targets, args.Error(1)
}

func (_m *Storage) DeleteTarget(ctx context.Context, id string) ([]models.Target, error) {
	args := _m.Called(ctx, id)
	var targets []models.Target
	if args.Get(0) != nil {
		targets = args.Get(0).([]models.Target)
	}
	return targets, args.Error(1)
}

func (_m *Storage) GetSettings(ctx context.Context) (models.UserSettings, error) {
	args := _m.Called(ctx)
	var settings models.UserSettings
	if args.Get(0) != nil {
		settings = args.Get(0).(models.UserSettings)
	}
	return settings, args.Error(1)
}

func (_m *Storage) SaveSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error) {
	args := _m.Called(ctx, settings)
	var out models.UserSettings
	if args.Get(0) != nil {
		out = args.Get(0).(models.UserSettings)
	}
	return out, args.Error(1)
}
