package receipt

import (
	"regexp"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/shopspring/decimal"
)

// skipKeywords marks footer, payment, and boilerplate lines that must never
// become items even when they end in a price.
var skipKeywords = []string{
	"SUBTOTAL",
	"AMOUNT DUE",
	"BALANCE DUE",
	"CHANGE",
	"CASH",
	"CARD",
	"VISA",
	"MASTERCARD",
	"CLUBCARD",
	"POINTS",
	"VAT",
	"STORE",
	"VISIT",
	"DOWNLOAD",
}

var (
	// priceLineRe captures leading item text and a trailing two-decimal
	// price, with an optional currency symbol.
	priceLineRe = regexp.MustCompile(`^(.*?)(£?\s*\d+\.\d{2})\s*$`)

	// qtyRe matches the "2 x 1.50" quantity convention.
	qtyRe = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*[xX]\s*(\d+\.\d{2})\b`)
)

// ParseItems segments transcript lines into purchased-item records. Lines
// carrying any skip keyword or the TOTAL token are ignored; a line becomes
// an item when it ends in a price and keeps at least two characters of
// name. Malformed lines are dropped silently; item parsing never fails the
// document.
func ParseItems(lines []string) []model.ReceiptItem {
	var items []model.ReceiptItem

	for _, ln := range lines {
		s := strings.TrimSpace(ln)
		if s == "" {
			continue
		}

		up := strings.ToUpper(s)
		if containsAny(up, skipKeywords) || strings.Contains(up, "TOTAL") {
			continue
		}

		m := priceLineRe.FindStringSubmatch(s)
		if m == nil {
			continue
		}

		name := strings.Trim(m[1], " -:\t")
		if len(name) < 2 {
			continue
		}

		priceMatch := moneyRe.FindStringSubmatch(m[2])
		if priceMatch == nil {
			continue
		}
		lineTotal, ok := parseAmount(priceMatch[1])
		if !ok {
			continue
		}

		qty := decimal.NewFromInt(1)
		var unitPrice *decimal.Decimal
		if qm := qtyRe.FindStringSubmatch(s); qm != nil {
			if q, qok := parseAmount(qm[1]); qok {
				if u, uok := parseAmount(qm[2]); uok {
					qty = q
					unitPrice = &u
				}
			}
		}

		items = append(items, model.ReceiptItem{
			Name:      titleCaser.String(strings.ToLower(name)),
			Qty:       qty,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
	}

	return items
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
