package ledger

import (
	"fmt"

	"github.com/Veraticus/pennywise/internal/common"
	"github.com/Veraticus/pennywise/internal/model"
)

// Resolver expands a category into itself plus all of its descendants.
type Resolver interface {
	Subcategories(name string) []string
}

// Result is the outcome of a category query over a known category.
type Result struct {
	Category      string
	Subcategories []string
	Matches       []model.Record
	Total         int
}

// Find returns the records filed under name or any of its subcategories, in
// their original order, along with the sum of their amounts.
//
// An unknown category returns common.ErrUnknownCategory. A known category with
// no matching records is not an error: Matches is empty and Total is 0.
// Records without a category never match.
func Find(categories Resolver, name string, records []model.Record) (Result, error) {
	subcats := categories.Subcategories(name)
	if len(subcats) == 0 {
		return Result{}, fmt.Errorf("%w: %q", common.ErrUnknownCategory, name)
	}

	wanted := make(map[string]struct{}, len(subcats))
	for _, s := range subcats {
		wanted[s] = struct{}{}
	}

	result := Result{
		Category:      name,
		Subcategories: subcats,
		Matches:       []model.Record{},
	}
	for _, rec := range records {
		if !rec.HasCategory() {
			continue
		}
		if _, ok := wanted[rec.Category]; !ok {
			continue
		}
		result.Matches = append(result.Matches, rec)
		result.Total += rec.Amount
	}

	return result, nil
}

// Find runs Find over the ledger's own records.
func (l *Ledger) Find(categories Resolver, name string) (Result, error) {
	return Find(categories, name, l.records)
}
