package backup

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/klarity-app/klarity/pkg/kv"
	"github.com/klarity-app/klarity/pkg/models"
	"github.com/klarity-app/klarity/pkg/storage/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newTestController() (*Controller, *kvstore.Store, *kv.MemStore) {
	mem := kv.NewMemStore()
	store := kvstore.New(mem)
	store.Now = func() time.Time { return testNow }
	controller := New(store, mem)
	controller.Now = func() time.Time { return testNow }
	return controller, store, mem
}

func seed(t *testing.T, store *kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	tx := models.Transaction{
		Id: "tx1", Amount: 50000, Type: models.EXPENSE, Category: "Belanja",
		EmotionalTag: models.IMPULSE, Reason: "diskon", Date: "2026-08-20", Timestamp: 100,
	}
	_, err := store.CreateTransaction(ctx, &tx)
	require.NoError(t, err)

	target := models.Target{Id: "g1", Name: "Dana Darurat", TargetAmount: 10000000, CollectedAmount: 250000}
	_, err = store.SaveTarget(ctx, &target)
	require.NoError(t, err)

	settings := models.DefaultSettings()
	settings.MonthlyBudget = 1000000
	settings.LifeAnchor = "rumah"
	_, err = store.SaveSettings(ctx, settings)
	require.NoError(t, err)
}

func TestExport(t *testing.T) {
	controller, store, _ := newTestController()
	seed(t, store)

	snapshot, err := controller.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Version, snapshot.Version)
	assert.Equal(t, testNow.UTC().Format(time.RFC3339), snapshot.Timestamp)
	assert.Len(t, snapshot.Transactions, 1)
	assert.Len(t, snapshot.Targets, 1)
	assert.Equal(t, int64(1000000), snapshot.Settings.MonthlyBudget)
}

func TestExport_EmptyState(t *testing.T) {
	controller, _, _ := newTestController()

	snapshot, err := controller.Export(context.Background())
	require.NoError(t, err)

	// Collections encode as [] rather than null.
	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"transactions":[]`)
	assert.Contains(t, string(raw), `"targets":[]`)
}

func TestRestore_RoundTrip(t *testing.T) {
	controller, store, _ := newTestController()
	seed(t, store)
	ctx := context.Background()

	snapshot, err := controller.Export(ctx)
	require.NoError(t, err)
	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)

	// Restore into a fresh install.
	restored, restoredStore, _ := newTestController()
	require.NoError(t, restored.Restore(ctx, raw))

	txs, err := restoredStore.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Transactions, txs)

	targets, err := restoredStore.ListTargets(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Targets, targets)

	settings, err := restoredStore.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Settings, settings)
}

func TestRestore_SettingsOnlyWipesCollections(t *testing.T) {
	controller, store, _ := newTestController()
	seed(t, store)
	ctx := context.Background()

	raw := []byte(`{"settings":{"monthlyBudget":750000,"paydayDayOfMonth":5}}`)
	require.NoError(t, controller.Restore(ctx, raw))

	txs, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs, "existing transactions are reset, not kept")

	targets, err := store.ListTargets(ctx)
	require.NoError(t, err)
	assert.Empty(t, targets)

	settings, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(750000), settings.MonthlyBudget)
	assert.Equal(t, 5, settings.PaydayDayOfMonth)
	// Fields absent from the snapshot backfill from defaults.
	assert.Equal(t, 0, settings.ShameCount)
}

func TestRestore_TransactionsOnlyResetsSettings(t *testing.T) {
	controller, store, _ := newTestController()
	seed(t, store)
	ctx := context.Background()

	raw := []byte(`{"transactions":[{"id":"n1","amount":1000,"type":"EXPENSE","category":"Lainnya","reason":"","date":"2026-08-01","timestamp":5}]}`)
	require.NoError(t, controller.Restore(ctx, raw))

	txs, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "n1", txs[0].Id)

	settings, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), settings.MonthlyBudget, "settings reset to defaults")
}

func TestRestore_RejectsInvalidInput(t *testing.T) {
	cases := map[string]string{
		"Not JSON":              `{broken`,
		"JSON Null":             `null`,
		"JSON Array":            `[1,2,3]`,
		"No Recognizable Keys":  `{"foo":"bar"}`,
		"Transactions Not List": `{"transactions":{"id":"x"}}`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			controller, store, _ := newTestController()
			seed(t, store)
			ctx := context.Background()

			err := controller.Restore(ctx, []byte(input))
			assert.ErrorIs(t, err, ErrInvalidBackup)

			// Rejected before any destructive action.
			txs, err := store.ListTransactions(ctx)
			require.NoError(t, err)
			assert.Len(t, txs, 1)
			settings, err := store.GetSettings(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(1000000), settings.MonthlyBudget)
		})
	}
}

// flakyKV fails every write to one key, simulating a quota error part-way
// through the restore sequence.
type flakyKV struct {
	*kv.MemStore
	failKey string
}

func (f *flakyKV) Set(key, value string) error {
	if key == f.failKey {
		return errors.New("quota exceeded")
	}
	return f.MemStore.Set(key, value)
}

func TestRestore_PartialFailureSalvagesSettings(t *testing.T) {
	mem := kv.NewMemStore()
	flaky := &flakyKV{MemStore: mem, failKey: kvstore.KeyTargets}
	store := kvstore.New(flaky)
	controller := New(store, flaky)
	ctx := context.Background()

	settings := models.DefaultSettings()
	settings.MonthlyBudget = 1000000
	_, err := store.SaveSettings(ctx, settings)
	require.NoError(t, err)

	raw := []byte(`{"transactions":[],"targets":[{"id":"g1","name":"A","targetAmount":1,"collectedAmount":0}],"settings":{"monthlyBudget":500000}}`)
	err = controller.Restore(ctx, raw)
	require.Error(t, err)

	// Settings were best-effort reset to defaults, not left on the snapshot's
	// or the previous install's values.
	loaded, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), loaded.MonthlyBudget)
}
