package repository

import (
	"fmt"
	"strings"

	"ai-shopping-assistant/internal/model"
)

// Operator is one comparison in the structured filter language.
type Operator string

const (
	// OpContains is a case-insensitive substring match on a string field.
	OpContains Operator = "contains"
	// OpLTE / OpGTE are numeric range comparisons, valid only on price.
	OpLTE Operator = "lte"
	OpGTE Operator = "gte"
)

// Condition is a single (field, operator, value) clause.
type Condition struct {
	Field  string
	Op     Operator
	Value  string  // for OpContains
	Number float64 // for OpLTE / OpGTE
}

// Filter is a validated conjunction of conditions. The zero value matches
// everything. Model-generated filter text is parsed into this structure and
// validated against the schema before it goes anywhere near a store; it is
// never evaluated as code.
type Filter struct {
	Conditions []Condition
}

// StringFields are the filterable text fields of a product.
var StringFields = map[string]bool{
	"title":       true,
	"category":    true,
	"subcategory": true,
	"brand":       true,
	"description": true,
}

// PriceField is the only numeric filterable field.
const PriceField = "price"

// Empty reports whether the filter matches everything.
func (f Filter) Empty() bool {
	return len(f.Conditions) == 0
}

// Validate rejects conditions outside the known schema.
func (f Filter) Validate() error {
	for _, c := range f.Conditions {
		switch c.Op {
		case OpContains:
			if !StringFields[c.Field] {
				return fmt.Errorf("filter: field %q does not support %q", c.Field, c.Op)
			}
			if strings.TrimSpace(c.Value) == "" {
				return fmt.Errorf("filter: empty value for field %q", c.Field)
			}
		case OpLTE, OpGTE:
			if c.Field != PriceField {
				return fmt.Errorf("filter: field %q does not support %q", c.Field, c.Op)
			}
		default:
			return fmt.Errorf("filter: unknown operator %q", c.Op)
		}
	}
	return nil
}

// Match evaluates the filter against a product. All conditions must hold.
func (f Filter) Match(p model.Product) bool {
	for _, c := range f.Conditions {
		switch c.Op {
		case OpContains:
			if !strings.Contains(strings.ToLower(stringField(p, c.Field)), strings.ToLower(c.Value)) {
				return false
			}
		case OpLTE:
			if !(p.Price <= c.Number) {
				return false
			}
		case OpGTE:
			if !(p.Price >= c.Number) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func stringField(p model.Product, field string) string {
	switch field {
	case "title":
		return p.Title
	case "category":
		return p.Category
	case "subcategory":
		return p.Subcategory
	case "brand":
		return p.Brand
	case "description":
		return p.Description
	}
	return ""
}
