package models

import "fmt"

// Category is the closed set of product categories. The zero value is Unknown.
type Category int

const (
	Unknown Category = iota
	Cloths
	Food
	Housewares
	Automotive
	Tools
)

var categoryNames = map[Category]string{
	Unknown:    "UNKNOWN",
	Cloths:     "CLOTHS",
	Food:       "FOOD",
	Housewares: "HOUSEWARES",
	Automotive: "AUTOMOTIVE",
	Tools:      "TOOLS",
}

var categoryValues = map[string]Category{
	"UNKNOWN":    Unknown,
	"CLOTHS":     Cloths,
	"FOOD":       Food,
	"HOUSEWARES": Housewares,
	"AUTOMOTIVE": Automotive,
	"TOOLS":      Tools,
}

// String returns the symbolic name of the category, e.g. "CLOTHS".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CATEGORY(%d)", int(c))
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory maps a symbolic name back to its Category. Unknown names are
// rejected, never coerced.
func ParseCategory(name string) (Category, error) {
	if c, ok := categoryValues[name]; ok {
		return c, nil
	}
	return Unknown, &DataValidationError{
		Field:  "category",
		Reason: fmt.Sprintf("%q is not a valid category name", name),
	}
}

// Categories returns every member of the closed set, Unknown included.
func Categories() []Category {
	return []Category{Unknown, Cloths, Food, Housewares, Automotive, Tools}
}
