package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// ErrDuplicateTransaction indicates a transaction with the same content
// hash already exists.
var ErrDuplicateTransaction = errors.New("duplicate transaction")

const dateLayout = "2006-01-02"

// SaveTransaction inserts one transaction, returning
// ErrDuplicateTransaction when its hash is already stored.
func (s *Store) SaveTransaction(ctx context.Context, tx *model.Transaction) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (date, description, amount, type, category, balance_after, hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tx.Date.Format(dateLayout), tx.Description, tx.Amount,
		string(tx.Type), string(tx.Category), tx.BalanceAfter, tx.Hash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	if id, idErr := res.LastInsertId(); idErr == nil {
		tx.ID = id
	}
	return nil
}

// LastTransactionDate returns the most recent stored transaction date, or
// false when the table is empty.
func (s *Store) LastTransactionDate(ctx context.Context) (time.Time, bool, error) {
	var raw sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT MAX(date) FROM transactions`).Scan(&raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to query last transaction date: %w", err)
	}
	if !raw.Valid {
		return time.Time{}, false, nil
	}

	t, err := time.Parse(dateLayout, raw.String)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse stored date %q: %w", raw.String, err)
	}
	return t, true, nil
}

// CurrentBalance returns the balance after the most recently dated
// transaction, or 0 when none are stored.
func (s *Store) CurrentBalance(ctx context.Context) (float64, error) {
	var balance sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT balance_after FROM transactions ORDER BY date DESC, id DESC LIMIT 1`,
	).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query current balance: %w", err)
	}
	return balance.Float64, nil
}

// RecentTransactions returns up to limit transactions, newest first.
func (s *Store) RecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, description, amount, type, category, balance_after, hash
		 FROM transactions ORDER BY date DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var date, txType, category string
		if err := rows.Scan(&tx.ID, &date, &tx.Description, &tx.Amount,
			&txType, &category, &tx.BalanceAfter, &tx.Hash); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if tx.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %w", date, err)
		}
		tx.Type = model.TransactionType(txType)
		tx.Category = model.Category(category)
		out = append(out, tx)
	}
	return out, rows.Err()
}

// Summary aggregates stored transactions for the dashboard-style report.
type Summary struct {
	TotalIncome    float64
	TotalExpenses  float64
	CurrentBalance float64
	Count          int
}

// Summarize computes income, expense, and balance totals across all stored
// transactions. Expenses are reported as a positive magnitude.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0),
			COUNT(*)
		FROM transactions`,
	).Scan(&sum.TotalIncome, &sum.TotalExpenses, &sum.Count)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	sum.CurrentBalance = sum.TotalIncome - sum.TotalExpenses
	return sum, nil
}

// CategoryTotals returns total spend per category over debits.
func (s *Store) CategoryTotals(ctx context.Context) (map[model.Category]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, SUM(-amount) FROM transactions WHERE amount < 0 GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[model.Category]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals[model.Category(category)] = total
	}
	return totals, rows.Err()
}
