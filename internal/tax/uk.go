// Package tax implements the flat-band UK income tax and National
// Insurance estimate.
package tax

import "math"

// 2024/25 bands and rates.
const (
	PersonalAllowance = 12570.0
	BasicRateLimit    = 50270.0
	HigherRateLimit   = 125140.0

	basicRate      = 0.20
	higherRate     = 0.40
	additionalRate = 0.45

	niBasicRate  = 0.08
	niHigherRate = 0.02
)

// Estimate breaks an annual gross figure into tax, NI, and net amounts.
type Estimate struct {
	GrossAnnual       float64
	PersonalAllowance float64
	TaxableIncome     float64
	IncomeTax         float64
	NationalInsurance float64
	NetAnnual         float64
	NetMonthly        float64
}

// EstimateUK computes a simplified UK PAYE estimate for a gross annual
// income. The personal-allowance taper above 100k is deliberately ignored.
func EstimateUK(grossAnnual float64) Estimate {
	taxable := math.Max(0, grossAnnual-PersonalAllowance)

	var incomeTax float64
	if grossAnnual > PersonalAllowance {
		incomeTax += math.Min(taxable, BasicRateLimit-PersonalAllowance) * basicRate
	}
	if grossAnnual > BasicRateLimit {
		incomeTax += math.Min(grossAnnual-BasicRateLimit, HigherRateLimit-BasicRateLimit) * higherRate
	}
	if grossAnnual > HigherRateLimit {
		incomeTax += (grossAnnual - HigherRateLimit) * additionalRate
	}

	var ni float64
	if grossAnnual > PersonalAllowance {
		ni += math.Min(grossAnnual-PersonalAllowance, BasicRateLimit-PersonalAllowance) * niBasicRate
	}
	if grossAnnual > BasicRateLimit {
		ni += (grossAnnual - BasicRateLimit) * niHigherRate
	}

	netAnnual := grossAnnual - incomeTax - ni

	return Estimate{
		GrossAnnual:       grossAnnual,
		PersonalAllowance: PersonalAllowance,
		TaxableIncome:     taxable,
		IncomeTax:         round2(incomeTax),
		NationalInsurance: round2(ni),
		NetAnnual:         round2(netAnnual),
		NetMonthly:        round2(netAnnual / 12),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
