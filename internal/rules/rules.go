// Package rules implements the keyword-table transaction classifier.
package rules

import (
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Rule binds a category to the keyword substrings that vote for it.
type Rule struct {
	Category model.Category
	Keywords []string
}

// DefaultRules returns the built-in keyword table. Order matters: when two
// categories tie on keyword hits, the one earlier in this slice wins. That
// tie-break is part of the classifier contract and is covered by tests.
func DefaultRules() []Rule {
	return []Rule{
		{Category: model.CategoryFood, Keywords: []string{
			"KFC", "MCDONALD", "BURGER", "NANDO",
			"PERI", "GRILL", "CHICKEN", "KEBAB",
			"PIZZA", "TAKEAWAY", "CAFE", "COFFEE",
			"RESTAURANT", "DINER", "SUBWAY",
			"GREGGS", "DELIVEROO", "UBER EATS",
		}},
		{Category: model.CategoryGroceries, Keywords: []string{
			"TESCO", "ALDI", "SAINSBURY", "ASDA",
			"LIDL", "MART", "MINI", "MARKET",
			"SUPERMARKET", "OFF LICENCE",
			"COSTCUTTER", "FOOD CENTER",
		}},
		{Category: model.CategoryTransport, Keywords: []string{
			"TFL", "UBER", "BOLT", "TRAIN",
			"RAIL", "BUS", "TRAVEL",
			"STATION", "TICKET",
		}},
		{Category: model.CategorySubscription, Keywords: []string{
			"SPOTIFY", "NETFLIX", "PRIME",
			"DISNEY", "APPLE", "CHATGPT",
		}},
		{Category: model.CategoryShopping, Keywords: []string{
			"AMAZON", "EBAY", "H M",
			"ZARA", "PRIMARK", "WETHERSPOON",
		}},
		{Category: model.CategoryUtilities, Keywords: []string{
			"GAS", "WATER", "ELECTRIC",
			"VODAFONE", "EE", "O2",
			"BILL", "MOBILE",
		}},
		{Category: model.CategoryFitness, Keywords: []string{
			"GYM", "PUREGYM", "JD GYM",
		}},
	}
}

// Classifier scores normalized descriptions against an ordered rule table.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier over the given ordered rules.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify counts, per rule, how many of its keywords occur as substrings
// of the normalized description and returns the category with the strictly
// highest count. Ties resolve to the earliest rule in table order. Returns
// false when no keyword matches at all.
func (c *Classifier) Classify(normalized string) (model.Category, bool) {
	best := model.CategoryUncategorised
	bestScore := 0

	for _, rule := range c.rules {
		score := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, kw) {
				score++
			}
		}
		if score > bestScore {
			best = rule.Category
			bestScore = score
		}
	}

	if bestScore == 0 {
		return model.CategoryUncategorised, false
	}
	return best, true
}
