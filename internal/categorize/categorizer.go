// Package categorize composes the categorization pipeline: income override,
// keyword rules, then the gated statistical classifier.
package categorize

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/normalize"
)

// RuleClassifier matches normalized text against the keyword table.
type RuleClassifier interface {
	Classify(normalized string) (model.Category, bool)
}

// TextClassifier scores normalized text against the trained model. The
// boolean is false when the prediction falls below the confidence gate.
type TextClassifier interface {
	Classify(normalized string) (model.Category, float64, bool)
}

// ErrNoClassifier indicates a pipeline stage was constructed without its
// classifier dependency.
var ErrNoClassifier = errors.New("classifier not configured")

// Categorizer assigns a category to free-text transaction descriptions. It
// holds no mutable state; one instance serves concurrent callers.
type Categorizer struct {
	rules RuleClassifier
	stats TextClassifier
}

// New creates a categorizer over the given classifiers.
func New(rules RuleClassifier, stats TextClassifier) *Categorizer {
	return &Categorizer{rules: rules, stats: stats}
}

// Categorize decides a category for a description and signed amount.
//
// Decision order, short-circuiting: credits (amount > 0) are Income
// regardless of text; then the keyword rules; then the statistical
// classifier when above its gate; otherwise Uncategorised. Categorize is
// total: internal classifier failures are logged and mapped to the
// default decision, never surfaced to the caller.
func (c *Categorizer) Categorize(description string, amount float64) model.Decision {
	if amount > 0 {
		return model.Decision{Category: model.CategoryIncome, Source: model.SourceIncomeOverride}
	}

	decision, err := c.classify(description)
	if err != nil {
		slog.Warn("Categorization fell back to default",
			"description", description,
			"error", err)
		return model.Decision{Category: model.CategoryUncategorised, Source: model.SourceDefault}
	}
	return decision
}

// classify runs the text stages and reports failures explicitly so the
// caller can distinguish "no match" from "stage broke" in logs and tests.
func (c *Categorizer) classify(description string) (decision model.Decision, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
		}
	}()

	normalized := normalize.Description(description)

	if c.rules == nil {
		return model.Decision{}, fmt.Errorf("rule stage: %w", ErrNoClassifier)
	}
	if category, ok := c.rules.Classify(normalized); ok {
		return model.Decision{Category: category, Source: model.SourceRuleMatch}, nil
	}

	if c.stats == nil {
		return model.Decision{}, fmt.Errorf("statistical stage: %w", ErrNoClassifier)
	}
	if category, _, ok := c.stats.Classify(normalized); ok {
		return model.Decision{Category: category, Source: model.SourceStatistical}, nil
	}

	return model.Decision{Category: model.CategoryUncategorised, Source: model.SourceDefault}, nil
}
