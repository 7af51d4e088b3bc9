// Package model defines the core domain models used throughout the application.
package model

// Category is a spending category assigned to a transaction or receipt.
// The set is closed: categorization never produces a value outside it.
type Category string

// The full category set. The first seven entries mirror the keyword-rule
// table; Income and Uncategorised are produced only by the orchestrator.
const (
	CategoryFood          Category = "Food"
	CategoryGroceries     Category = "Groceries"
	CategoryTransport     Category = "Transport"
	CategorySubscription  Category = "Subscription"
	CategoryShopping      Category = "Shopping"
	CategoryUtilities     Category = "Utilities"
	CategoryFitness       Category = "Fitness"
	CategoryIncome        Category = "Income"
	CategoryUncategorised Category = "Uncategorised"
)

// AllCategories returns every valid category.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryGroceries,
		CategoryTransport,
		CategorySubscription,
		CategoryShopping,
		CategoryUtilities,
		CategoryFitness,
		CategoryIncome,
		CategoryUncategorised,
	}
}

// IsValid reports whether c is a member of the closed category set.
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
