// Package receipt converts OCR transcripts of retail receipts into
// structured documents: merchant, date, total, line items, and an internal
// consistency check of the total against the items.
//
// Every extractor degrades independently: an unmatched pattern yields "no
// value", never an error. The only hard failure surface is the OCR call
// itself.
package receipt

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// moneyRe matches a decimal-money token with exactly two fractional
	// digits, optionally preceded by a pound sign.
	moneyRe = regexp.MustCompile(`£?\s*(\d+\.\d{2})`)

	titleCaser = cases.Title(language.English)
)

// dateStrategies are tried in order against the whole transcript; the first
// match wins. Day-first UK formats rank above ISO.
var dateStrategies = []struct {
	name string
	re   *regexp.Regexp
}{
	{"day-first", regexp.MustCompile(`\b(\d{2}[/\-]\d{2}[/\-]\d{2,4})\b`)},
	{"iso", regexp.MustCompile(`\b(\d{4}[/\-]\d{2}[/\-]\d{2})\b`)},
}

// totalStrategies parse the numeric amount out of a TOTAL line, in order of
// preference: a standard two-decimal amount, then the space-separated form
// OCR produces when it loses the decimal point ("28 34" for 28.34).
var totalStrategies = []struct {
	name  string
	parse func(line string) (decimal.Decimal, bool)
}{
	{"decimal", parseDecimalTotal},
	{"space-separated", parseSpaceSeparatedTotal},
}

var (
	decimalTotalRe = regexp.MustCompile(`(\d+\.\d{2})`)
	spacedTotalRe  = regexp.MustCompile(`(\d+)\s+(\d{2})\b`)
)

// ExtractMerchant returns the first transcript line of length >= 3 that
// does not itself look like a money line, title-cased. The merchant name
// heads nearly every retail receipt.
func ExtractMerchant(lines []string) (string, bool) {
	for _, ln := range lines {
		clean := strings.TrimSpace(ln)
		if len(clean) >= 3 && !moneyRe.MatchString(clean) {
			return titleCaser.String(strings.ToLower(clean)), true
		}
	}
	return "", false
}

// ExtractDate returns the first date-looking substring of the transcript,
// raw and unvalidated. Calendar validation belongs to the caller.
func ExtractDate(text string) (string, bool) {
	for _, strategy := range dateStrategies {
		if m := strategy.re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ExtractTotal finds the first line containing the token TOTAL
// (case-insensitive) and parses an amount out of it. Returns false when no
// TOTAL line exists or the line carries no parseable number.
func ExtractTotal(text string) (decimal.Decimal, bool) {
	for _, line := range strings.Split(strings.ToUpper(text), "\n") {
		if !strings.Contains(line, "TOTAL") {
			continue
		}
		for _, strategy := range totalStrategies {
			if amount, ok := strategy.parse(line); ok {
				return amount, true
			}
		}
		return decimal.Decimal{}, false
	}
	return decimal.Decimal{}, false
}

func parseDecimalTotal(line string) (decimal.Decimal, bool) {
	m := decimalTotalRe.FindStringSubmatch(line)
	if m == nil {
		return decimal.Decimal{}, false
	}
	return parseAmount(m[1])
}

func parseSpaceSeparatedTotal(line string) (decimal.Decimal, bool) {
	m := spacedTotalRe.FindStringSubmatch(line)
	if m == nil {
		return decimal.Decimal{}, false
	}
	return parseAmount(m[1] + "." + m[2])
}

func parseAmount(s string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}
