package ingest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordCategorizer is a minimal stand-in for the real pipeline.
type keywordCategorizer struct{}

func (keywordCategorizer) Categorize(description string, amount float64) model.Decision {
	if amount > 0 {
		return model.Decision{Category: model.CategoryIncome, Source: model.SourceIncomeOverride}
	}
	return model.Decision{Category: model.CategoryUncategorised, Source: model.SourceDefault}
}

func newTestImporter(t *testing.T) (*Importer, *storage.Store) {
	t.Helper()
	store, err := storage.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewImporter(store, keywordCategorizer{}), store
}

func txn(date string, description string, amount float64) model.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return model.Transaction{Date: d, Description: description, Amount: amount}
}

func TestImportCategorizesAndTracksBalance(t *testing.T) {
	im, store := newTestImporter(t)
	ctx := context.Background()

	// Deliberately out of order; the importer sorts before balancing.
	result, err := im.Import(ctx, []model.Transaction{
		txn("2025-03-02", "TESCO STORES", -23.50),
		txn("2025-03-01", "ACME PAYROLL", 2500.00),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Duplicates)
	assert.InDelta(t, 2476.50, result.ClosingBalance, 0.001)

	recent, err := store.RecentTransactions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, model.CategoryUncategorised, recent[0].Category)
	assert.Equal(t, model.CategoryIncome, recent[1].Category)
	assert.InDelta(t, 2500.00, recent[1].BalanceAfter, 0.001)
}

func TestImportSkipsDuplicatesWithinBatch(t *testing.T) {
	im, _ := newTestImporter(t)

	result, err := im.Import(context.Background(), []model.Transaction{
		txn("2025-03-01", "GREGGS", -3.20),
		txn("2025-03-01", "GREGGS", -3.20),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Duplicates)
	assert.InDelta(t, -3.20, result.ClosingBalance, 0.001)
}

func TestImportRejectsBackdatedBatch(t *testing.T) {
	im, _ := newTestImporter(t)
	ctx := context.Background()

	_, err := im.Import(ctx, []model.Transaction{txn("2025-03-05", "A", -1)}, nil)
	require.NoError(t, err)

	_, err = im.Import(ctx, []model.Transaction{txn("2025-03-05", "B", -2)}, nil)
	assert.ErrorContains(t, err, "on or before")

	_, err = im.Import(ctx, []model.Transaction{txn("2025-03-01", "C", -3)}, nil)
	assert.ErrorContains(t, err, "on or before")

	result, err := im.Import(ctx, []model.Transaction{txn("2025-03-06", "D", -4)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestImportEmptyBatch(t *testing.T) {
	im, _ := newTestImporter(t)

	_, err := im.Import(context.Background(), nil, nil)
	assert.ErrorContains(t, err, "no transactions")
}

func TestImportReportsProgress(t *testing.T) {
	im, _ := newTestImporter(t)

	var calls []int
	_, err := im.Import(context.Background(), []model.Transaction{
		txn("2025-03-01", "A", -1),
		txn("2025-03-02", "B", -2),
	}, func(done, total int) {
		assert.Equal(t, 2, total)
		calls = append(calls, done)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, calls)
}
