package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// TransactionType distinguishes credits from debits.
type TransactionType string

// Transaction type constants.
const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

// Transaction represents a single bank-statement line from any source.
type Transaction struct {
	Date         time.Time
	ID           int64
	Description  string
	Hash         string
	Amount       float64
	Type         TransactionType
	Category     Category
	BalanceAfter float64
}

// GenerateHash creates a content hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
