// Package ingest imports parsed bank transactions: categorizes each one,
// maintains the running balance, and persists the result.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/storage"
)

// Categorizer assigns a category to a description and signed amount.
type Categorizer interface {
	Categorize(description string, amount float64) model.Decision
}

// Store is the persistence surface the importer needs.
type Store interface {
	SaveTransaction(ctx context.Context, tx *model.Transaction) error
	LastTransactionDate(ctx context.Context) (time.Time, bool, error)
	CurrentBalance(ctx context.Context) (float64, error)
}

// Result reports what an import run did.
type Result struct {
	Imported       int
	Duplicates     int
	ClosingBalance float64
}

// Importer runs import batches.
type Importer struct {
	store       Store
	categorizer Categorizer
}

// NewImporter creates an importer over the given store and categorizer.
func NewImporter(store Store, categorizer Categorizer) *Importer {
	return &Importer{store: store, categorizer: categorizer}
}

// Import categorizes and saves a batch of transactions in chronological
// order. Batches must be strictly newer than everything already stored,
// since back-dated rows would corrupt the running balance. Duplicates (same
// date, description, and amount) are skipped, not errors. The optional
// progress callback fires once per processed transaction.
func (im *Importer) Import(ctx context.Context, txns []model.Transaction, progress func(done, total int)) (Result, error) {
	if len(txns) == 0 {
		return Result{}, fmt.Errorf("no transactions to import")
	}

	earliest := txns[0].Date
	for _, tx := range txns[1:] {
		if tx.Date.Before(earliest) {
			earliest = tx.Date
		}
	}
	if last, ok, err := im.store.LastTransactionDate(ctx); err != nil {
		return Result{}, err
	} else if ok && !earliest.After(last) {
		return Result{}, fmt.Errorf("batch contains transactions on or before the last imported date %s",
			last.Format("2006-01-02"))
	}

	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	balance, err := im.store.CurrentBalance(ctx)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for i := range sorted {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		tx := sorted[i]
		balance = round2(balance + tx.Amount)

		decision := im.categorizer.Categorize(tx.Description, tx.Amount)
		tx.Category = decision.Category
		tx.BalanceAfter = balance
		if tx.Hash == "" {
			tx.Hash = tx.GenerateHash()
		}

		switch err := im.store.SaveTransaction(ctx, &tx); {
		case err == nil:
			result.Imported++
		case errors.Is(err, storage.ErrDuplicateTransaction):
			result.Duplicates++
			balance = round2(balance - tx.Amount)
		default:
			return result, err
		}

		if progress != nil {
			progress(i+1, len(sorted))
		}
	}

	result.ClosingBalance = balance
	slog.Info("Import complete",
		"imported", result.Imported,
		"duplicates", result.Duplicates,
		"closing_balance", result.ClosingBalance)

	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
