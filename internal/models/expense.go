package models

import (
	"fmt"
	"strings"
)

// Category is the closed set of expense categories.
type Category string

const (
	CategoryGroceries   Category = "Groceries"
	CategoryLeisure     Category = "Leisure"
	CategoryElectronics Category = "Electronics"
	CategoryUtilities   Category = "Utilities"
	CategoryClothing    Category = "Clothing"
	CategoryHealth      Category = "Health"
	CategoryOthers      Category = "Others"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryGroceries,
	CategoryLeisure,
	CategoryElectronics,
	CategoryUtilities,
	CategoryClothing,
	CategoryHealth,
	CategoryOthers,
}

// ParseCategory matches s case-insensitively and returns the canonical spelling.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", s)
}

// Valid reports whether c is one of the known categories (exact spelling).
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Expense struct {
	ID          int64    `json:"id"`
	Description string   `json:"description"`
	Amount      int64    `json:"amount"` // smallest currency unit
	Date        Date     `json:"date"`
	Category    Category `json:"category"`
	UserID      int64    `json:"user_id"`
}

// NewExpense carries the caller-supplied fields of an expense being created.
type NewExpense struct {
	Description string
	Amount      int64
	Category    Category
}

// ExpensePatch is a partial update; a nil field leaves the stored value unchanged.
type ExpensePatch struct {
	Description *string
	Amount      *int64
	Category    *Category
}

// Empty reports whether the patch changes nothing.
func (p ExpensePatch) Empty() bool {
	return p.Description == nil && p.Amount == nil && p.Category == nil
}

type Summary struct {
	Month *int  `json:"month,omitempty"`
	Total int64 `json:"total"`
}
