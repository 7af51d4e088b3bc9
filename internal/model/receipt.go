package model

import "github.com/shopspring/decimal"

// ReceiptItem is a single purchased-item line parsed from a receipt
// transcript. Items are created once during parsing and never mutated.
type ReceiptItem struct {
	Name      string
	Qty       decimal.Decimal
	UnitPrice *decimal.Decimal
	LineTotal decimal.Decimal
}

// ReceiptDocument is the structured result of extracting a receipt image.
//
// CalculatedTotal is always the 2-decimal rounded sum of item line totals
// (0.00 when there are no items). Difference and Verified are present if
// and only if Total is present.
type ReceiptDocument struct {
	Merchant        string
	ReceiptDate     string // raw captured string, unparsed
	Total           *decimal.Decimal
	CalculatedTotal decimal.Decimal
	Difference      *decimal.Decimal
	Verified        *bool
	Items           []ReceiptItem
	RawText         string
}
