package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "ledgerlens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func makeTransaction(date string, description string, amount float64) *model.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	txType := model.TransactionDebit
	if amount > 0 {
		txType = model.TransactionCredit
	}
	tx := &model.Transaction{
		Date:        d,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Category:    model.CategoryUncategorised,
	}
	tx.Hash = tx.GenerateHash()
	return tx
}

func TestSaveTransactionAndDuplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tx := makeTransaction("2025-03-01", "TESCO STORES", -23.50)
	require.NoError(t, s.SaveTransaction(ctx, tx))
	assert.NotZero(t, tx.ID)

	dup := makeTransaction("2025-03-01", "TESCO STORES", -23.50)
	assert.ErrorIs(t, s.SaveTransaction(ctx, dup), ErrDuplicateTransaction)
}

func TestLastTransactionDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.LastTransactionDate(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveTransaction(ctx, makeTransaction("2025-03-01", "A", -1)))
	require.NoError(t, s.SaveTransaction(ctx, makeTransaction("2025-03-05", "B", -1)))

	last, ok, err := s.LastTransactionDate(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2025-03-05", last.Format("2006-01-02"))
}

func TestSummarizeAndBalance(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	credit := makeTransaction("2025-03-01", "PAYROLL", 2500.00)
	credit.BalanceAfter = 2500.00
	require.NoError(t, s.SaveTransaction(ctx, credit))

	debit := makeTransaction("2025-03-02", "TESCO", -23.50)
	debit.BalanceAfter = 2476.50
	require.NoError(t, s.SaveTransaction(ctx, debit))

	sum, err := s.Summarize(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2500.00, sum.TotalIncome, 0.001)
	assert.InDelta(t, 23.50, sum.TotalExpenses, 0.001)
	assert.InDelta(t, 2476.50, sum.CurrentBalance, 0.001)
	assert.Equal(t, 2, sum.Count)

	balance, err := s.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2476.50, balance, 0.001)
}

func TestRecentTransactionsOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTransaction(ctx, makeTransaction("2025-03-01", "OLD", -1)))
	require.NoError(t, s.SaveTransaction(ctx, makeTransaction("2025-03-09", "NEW", -2)))

	recent, err := s.RecentTransactions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "NEW", recent[0].Description)
	assert.Equal(t, "OLD", recent[1].Description)
}

func TestCategoryTotals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	groceries := makeTransaction("2025-03-01", "TESCO", -20.00)
	groceries.Category = model.CategoryGroceries
	require.NoError(t, s.SaveTransaction(ctx, groceries))

	more := makeTransaction("2025-03-02", "ALDI", -10.00)
	more.Category = model.CategoryGroceries
	require.NoError(t, s.SaveTransaction(ctx, more))

	income := makeTransaction("2025-03-03", "PAYROLL", 100.00)
	income.Category = model.CategoryIncome
	require.NoError(t, s.SaveTransaction(ctx, income))

	totals, err := s.CategoryTotals(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 30.00, totals[model.CategoryGroceries], 0.001)
	_, hasIncome := totals[model.CategoryIncome]
	assert.False(t, hasIncome, "credits must not appear in spend totals")
}

func TestSaveAndListReceipts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	total := decimal.RequireFromString("4.25")
	diff := decimal.Zero
	verified := true
	unitPrice := decimal.RequireFromString("1.50")

	doc := &model.ReceiptDocument{
		Merchant:        "Tesco Express",
		ReceiptDate:     "03/12/2025",
		Total:           &total,
		CalculatedTotal: total,
		Difference:      &diff,
		Verified:        &verified,
		Items: []model.ReceiptItem{
			{Name: "Milk", Qty: decimal.NewFromInt(1), LineTotal: decimal.RequireFromString("1.20")},
			{Name: "Eggs", Qty: decimal.NewFromInt(2), UnitPrice: &unitPrice, LineTotal: decimal.RequireFromString("3.05")},
		},
		RawText: "TESCO EXPRESS\n...",
	}

	id, err := s.SaveReceipt(ctx, doc)
	require.NoError(t, err)
	assert.NotZero(t, id)

	list, err := s.ListReceipts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tesco Express", list[0].Merchant)
	assert.Equal(t, 2, list[0].ItemCount)
	require.True(t, list[0].Total.Valid)
	assert.Equal(t, "4.25", list[0].Total.String)
	require.True(t, list[0].Verified.Valid)
	assert.True(t, list[0].Verified.Bool)
}

func TestSaveReceiptWithoutTotal(t *testing.T) {
	s := newTestStore(t)

	doc := &model.ReceiptDocument{
		Merchant:        "Corner Shop",
		CalculatedTotal: decimal.Zero,
		RawText:         "CORNER SHOP",
	}

	id, err := s.SaveReceipt(context.Background(), doc)
	require.NoError(t, err)

	list, err := s.ListReceipts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.False(t, list[0].Total.Valid)
	assert.False(t, list[0].Verified.Valid)
}
