// Package csvfile parses bank-statement CSV exports into transactions.
// The expected layout is a header row followed by date,description,amount
// records, the format the companion web frontend produces.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// dateLayouts are tried in order against the date column.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

// Parser implements statement CSV parsing.
type Parser struct{}

// NewParser creates a new CSV statement parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads date,description,amount records and returns transactions
// with signed amounts. A malformed row aborts the parse with its line
// number; partial imports would silently skew running balances.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true

	var transactions []model.Transaction
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line++

		if line == 1 && isHeader(record) {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: expected date,description,amount", line)
		}

		date, err := parseDate(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q", line, record[2])
		}

		txType := model.TransactionDebit
		if amount > 0 {
			txType = model.TransactionCredit
		}

		tx := model.Transaction{
			Date:        date,
			Description: strings.TrimSpace(record[1]),
			Amount:      amount,
			Type:        txType,
		}
		tx.Hash = tx.GenerateHash()
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(record[0]))
	return first == "date"
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
