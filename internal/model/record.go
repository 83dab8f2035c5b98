// Package model defines the value types shared across the ledger.
package model

import "fmt"

// Record is a single income or expense entry in the ledger.
type Record struct {
	Category    string // Empty when the record carries no category
	Description string
	Amount      int // Negative for expenses, positive for income
}

// HasCategory reports whether the record is tagged with a category.
func (r Record) HasCategory() bool {
	return r.Category != ""
}

func (r Record) String() string {
	if !r.HasCategory() {
		return fmt.Sprintf("%s %d", r.Description, r.Amount)
	}
	return fmt.Sprintf("%s %s %d", r.Category, r.Description, r.Amount)
}
