package textclass

import "github.com/ledgerlens/ledgerlens/internal/model"

// sample is one labeled merchant description from the embedded training
// corpus. Descriptions are stored pre-normalized.
type sample struct {
	Text     string
	Category model.Category
}

// trainingCorpus is the fixed hand-labeled corpus the model is fitted on.
// It is deliberately small: real descriptions for the handful of merchants
// that dominate UK bank statements, spanning every expense category.
func trainingCorpus() []sample {
	return []sample{
		{"TESCO STORES", model.CategoryGroceries},
		{"TESCO EXPRESS", model.CategoryGroceries},
		{"ALDI STORE", model.CategoryGroceries},
		{"SAINSBURY", model.CategoryGroceries},
		{"SAINSBURYS LOCAL", model.CategoryGroceries},
		{"ASDA SUPERSTORE", model.CategoryGroceries},
		{"LIDL GB", model.CategoryGroceries},
		{"MCDONALDS", model.CategoryFood},
		{"KFC", model.CategoryFood},
		{"NANDOS", model.CategoryFood},
		{"GREGGS", model.CategoryFood},
		{"DELIVEROO", model.CategoryFood},
		{"UBER EATS", model.CategoryFood},
		{"UBER TRIP", model.CategoryTransport},
		{"TFL TRAVEL", model.CategoryTransport},
		{"TRAINLINE", model.CategoryTransport},
		{"STAGECOACH BUS", model.CategoryTransport},
		{"NATIONAL RAIL", model.CategoryTransport},
		{"SPOTIFY", model.CategorySubscription},
		{"NETFLIX", model.CategorySubscription},
		{"AMAZON PRIME", model.CategorySubscription},
		{"DISNEY PLUS", model.CategorySubscription},
		{"AMAZON PURCHASE", model.CategoryShopping},
		{"AMAZON MARKETPLACE", model.CategoryShopping},
		{"ZARA", model.CategoryShopping},
		{"H M RETAIL", model.CategoryShopping},
		{"PRIMARK", model.CategoryShopping},
		{"EBAY", model.CategoryShopping},
		{"GYM GROUP", model.CategoryFitness},
		{"PUREGYM", model.CategoryFitness},
		{"BRITISH GAS", model.CategoryUtilities},
		{"THAMES WATER", model.CategoryUtilities},
		{"EDF ENERGY", model.CategoryUtilities},
		{"VODAFONE MOBILE", model.CategoryUtilities},
	}
}
