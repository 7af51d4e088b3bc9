package receipt

import (
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/shopspring/decimal"
)

// verifyTolerance is the absolute difference under which an extracted total
// and the item sum are considered to agree.
var verifyTolerance = decimal.NewFromFloat(0.01)

// Reconcile cross-checks the extracted total against the sum of parsed item
// line totals. CalculatedTotal is always set (0.00 with no items);
// Difference and Verified are populated only when a total was extracted.
// Reconciliation is a trust signal, not a validation gate; it never fails.
func Reconcile(total *decimal.Decimal, items []model.ReceiptItem) (calculated decimal.Decimal, difference *decimal.Decimal, verified *bool) {
	calculated = decimal.Zero
	for _, item := range items {
		calculated = calculated.Add(item.LineTotal)
	}
	calculated = calculated.Round(2)

	if total == nil {
		return calculated, nil, nil
	}

	diff := total.Sub(calculated).Round(2)
	ok := diff.Abs().LessThan(verifyTolerance)
	return calculated, &diff, &ok
}
