package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. ID is nil until the store persists it; the
// database assigns it on create and it never changes afterwards.
type Product struct {
	ID          *uint           `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;not null"`
	Description string          `gorm:"size:250"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Available   bool            `gorm:"not null"`
	Category    Category        `gorm:"not null"`
}

func (p *Product) TableName() string {
	return "products"
}

// String renders a short diagnostic form, e.g. "<Product Fedora id=[7]>".
// An unpersisted product renders its id as the absent sentinel "None".
func (p *Product) String() string {
	id := "None"
	if p.ID != nil {
		id = strconv.FormatUint(uint64(*p.ID), 10)
	}
	return fmt.Sprintf("<Product %s id=[%s]>", p.Name, id)
}

// Serialize converts the product into a plain mapping. The price is emitted
// as its exact decimal string and the category as its symbolic name.
func (p *Product) Serialize() map[string]any {
	var id any
	if p.ID != nil {
		id = *p.ID
	}
	return map[string]any{
		"id":          id,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product's business fields from a plain mapping.
// The id is never taken from the mapping. Every failure is reported as a
// DataValidationError naming the offending field.
func (p *Product) Deserialize(data map[string]any) error {
	name, err := stringField(data, "name")
	if err != nil {
		return err
	}

	description, err := stringField(data, "description")
	if err != nil {
		return err
	}

	price, err := priceField(data)
	if err != nil {
		return err
	}

	raw, ok := data["available"]
	if !ok {
		return missingKeyError("available")
	}
	// Strict bool check: truthy integers are not booleans.
	available, ok := raw.(bool)
	if !ok {
		return wrongTypeError("available", "bool", raw)
	}

	categoryName, err := stringField(data, "category")
	if err != nil {
		return err
	}
	category, err := ParseCategory(categoryName)
	if err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Available = available
	p.Category = category
	return nil
}

// validate checks the fields the store requires before an insert.
func (p *Product) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &DataValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !p.Category.Valid() {
		return &DataValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("%d is not a valid category", int(p.Category)),
		}
	}
	if p.Price.IsNegative() {
		return &DataValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

func stringField(data map[string]any, key string) (string, error) {
	raw, ok := data[key]
	if !ok {
		return "", missingKeyError(key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", wrongTypeError(key, "string", raw)
	}
	return s, nil
}

func priceField(data map[string]any) (decimal.Decimal, error) {
	raw, ok := data["price"]
	if !ok {
		return decimal.Zero, missingKeyError("price")
	}
	price, err := toDecimal(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

// toDecimal normalizes the accepted price spellings to a decimal. A string is
// compared by its exact decimal value, so "19.99" and decimal 19.99 are the
// same price.
func toDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		cleaned := strings.Trim(strings.TrimSpace(v), `"'`)
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero, &DataValidationError{
				Field:  "price",
				Reason: fmt.Sprintf("%q is not a valid decimal", v),
			}
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, &DataValidationError{
				Field:  "price",
				Reason: fmt.Sprintf("%q is not a valid decimal", v.String()),
			}
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Zero, wrongTypeError("price", "decimal, string or number", value)
	}
}
