package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// SaveReceipt persists an extracted receipt document with its items and
// returns the new receipt ID.
func (s *Store) SaveReceipt(ctx context.Context, doc *model.ReceiptDocument) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var total, difference any
	if doc.Total != nil {
		total = doc.Total.String()
	}
	if doc.Difference != nil {
		difference = doc.Difference.String()
	}
	var verified any
	if doc.Verified != nil {
		verified = *doc.Verified
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO receipts (merchant, receipt_date, total, calculated_total, difference, verified, raw_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		doc.Merchant, doc.ReceiptDate, total,
		doc.CalculatedTotal.String(), difference, verified, doc.RawText)
	if err != nil {
		return 0, fmt.Errorf("failed to save receipt: %w", err)
	}

	receiptID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read receipt id: %w", err)
	}

	for _, item := range doc.Items {
		var unitPrice any
		if item.UnitPrice != nil {
			unitPrice = item.UnitPrice.String()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO receipt_items (receipt_id, name, qty, unit_price, line_total)
			 VALUES (?, ?, ?, ?, ?)`,
			receiptID, item.Name, item.Qty.String(), unitPrice, item.LineTotal.String()); err != nil {
			return 0, fmt.Errorf("failed to save receipt item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit receipt: %w", err)
	}
	return receiptID, nil
}

// ReceiptSummary is one row of the stored-receipt listing.
type ReceiptSummary struct {
	ID          int64
	Merchant    string
	ReceiptDate string
	Total       sql.NullString
	Verified    sql.NullBool
	ItemCount   int
}

// ListReceipts returns stored receipts, newest first.
func (s *Store) ListReceipts(ctx context.Context, limit int) ([]ReceiptSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.merchant, r.receipt_date, r.total, r.verified,
		       (SELECT COUNT(*) FROM receipt_items i WHERE i.receipt_id = r.id)
		FROM receipts r ORDER BY r.id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []ReceiptSummary
	for rows.Next() {
		var r ReceiptSummary
		if err := rows.Scan(&r.ID, &r.Merchant, &r.ReceiptDate, &r.Total, &r.Verified, &r.ItemCount); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
