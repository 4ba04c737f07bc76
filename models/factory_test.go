package models

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

var factoryNames = []string{
	"Hat", "Pants", "Shirt", "Apple", "Banana",
	"Pots", "Towels", "Ford", "Chevy", "Hammer", "Wrench",
}

var factoryCategories = []Category{
	Unknown, Cloths, Food, Housewares, Automotive, Tools,
}

// newRandomProduct builds an unpersisted product with random business fields.
// Prices are whole cents so they survive the decimal column exactly.
func newRandomProduct() *Product {
	cents := int64(rand.Intn(199_950) + 50)
	return &Product{
		Name:        factoryNames[rand.Intn(len(factoryNames))],
		Description: "A product for testing",
		Price:       decimal.New(cents, -2),
		Available:   rand.Intn(2) == 0,
		Category:    factoryCategories[rand.Intn(len(factoryCategories))],
	}
}
