package model

// DecisionSource indicates which stage of the categorization pipeline
// produced a decision.
type DecisionSource string

// Decision source constants, in pipeline order.
const (
	SourceIncomeOverride DecisionSource = "income-override"
	SourceRuleMatch      DecisionSource = "rule-match"
	SourceStatistical    DecisionSource = "statistical"
	SourceDefault        DecisionSource = "default"
)

// Decision is the result of categorizing a single description.
type Decision struct {
	Category Category
	Source   DecisionSource
}
