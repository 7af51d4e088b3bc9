package receipt

import (
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsWithTotals(totals ...string) []model.ReceiptItem {
	items := make([]model.ReceiptItem, len(totals))
	for i, s := range totals {
		items[i] = model.ReceiptItem{
			Name:      "Item",
			Qty:       decimal.NewFromInt(1),
			LineTotal: decimal.RequireFromString(s),
		}
	}
	return items
}

func TestReconcileMatchingTotal(t *testing.T) {
	total := decimal.RequireFromString("5.70")

	calculated, difference, verified := Reconcile(&total, itemsWithTotals("2.50", "3.20"))

	assert.Equal(t, "5.7", calculated.String())
	require.NotNil(t, difference)
	assert.True(t, difference.IsZero())
	require.NotNil(t, verified)
	assert.True(t, *verified)
}

func TestReconcileMismatchedTotal(t *testing.T) {
	total := decimal.RequireFromString("6.00")

	calculated, difference, verified := Reconcile(&total, itemsWithTotals("2.50", "3.20"))

	assert.Equal(t, "5.7", calculated.String())
	require.NotNil(t, difference)
	assert.Equal(t, "0.3", difference.String())
	require.NotNil(t, verified)
	assert.False(t, *verified)
}

func TestReconcileNoItemsNoTotal(t *testing.T) {
	calculated, difference, verified := Reconcile(nil, nil)

	assert.True(t, calculated.Equal(decimal.Zero))
	assert.Nil(t, difference)
	assert.Nil(t, verified)
}

func TestReconcileTotalWithoutItems(t *testing.T) {
	total := decimal.RequireFromString("4.99")

	calculated, difference, verified := Reconcile(&total, nil)

	assert.True(t, calculated.Equal(decimal.Zero))
	require.NotNil(t, difference)
	assert.Equal(t, "4.99", difference.String())
	require.NotNil(t, verified)
	assert.False(t, *verified)
}

func TestReconcileRoundsToTwoDecimals(t *testing.T) {
	total := decimal.RequireFromString("0.30")

	// 0.10 + 0.10 + 0.10 carries no floating error with decimals, but a
	// third at 3 dp must round before comparison.
	calculated, _, verified := Reconcile(&total, itemsWithTotals("0.101", "0.101", "0.101"))

	assert.Equal(t, "0.3", calculated.String())
	require.NotNil(t, verified)
	assert.True(t, *verified)
}
