package ledger

import (
	"testing"

	"github.com/Veraticus/pennywise/internal/category"
	"github.com/Veraticus/pennywise/internal/common"
	"github.com/Veraticus/pennywise/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{Category: "food", Description: "breakfast", Amount: -20},
		{Category: "salary", Description: "paycheck", Amount: 1000},
		{Category: "snack", Description: "chips", Amount: -5},
	}
}

func TestFind(t *testing.T) {
	tree := category.Default()

	tests := []struct {
		name        string
		category    string
		records     []model.Record
		wantMatches []model.Record
		wantTotal   int
	}{
		{
			name:     "category and its subcategories",
			category: "food",
			records:  sampleRecords(),
			wantMatches: []model.Record{
				{Category: "food", Description: "breakfast", Amount: -20},
				{Category: "snack", Description: "chips", Amount: -5},
			},
			wantTotal: -25,
		},
		{
			name:     "top level category",
			category: "income",
			records:  sampleRecords(),
			wantMatches: []model.Record{
				{Category: "salary", Description: "paycheck", Amount: 1000},
			},
			wantTotal: 1000,
		},
		{
			name:     "leaf only matches itself",
			category: "snack",
			records:  sampleRecords(),
			wantMatches: []model.Record{
				{Category: "snack", Description: "chips", Amount: -5},
			},
			wantTotal: -5,
		},
		{
			name:        "known category on empty ledger",
			category:    "bonus",
			records:     nil,
			wantMatches: []model.Record{},
			wantTotal:   0,
		},
		{
			name:        "known category without matches",
			category:    "transportation",
			records:     sampleRecords(),
			wantMatches: []model.Record{},
			wantTotal:   0,
		},
		{
			name:     "uncategorized records never match",
			category: "expense",
			records: []model.Record{
				{Description: "mystery", Amount: -7},
				{Category: "bus", Description: "ticket", Amount: -2},
			},
			wantMatches: []model.Record{
				{Category: "bus", Description: "ticket", Amount: -2},
			},
			wantTotal: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Find(tree, tt.category, tt.records)
			require.NoError(t, err)
			assert.Equal(t, tt.category, result.Category)
			assert.Equal(t, tt.wantMatches, result.Matches)
			assert.Equal(t, tt.wantTotal, result.Total)
		})
	}
}

func TestFind_UnknownCategory(t *testing.T) {
	result, err := Find(category.Default(), "nonexistent", sampleRecords())

	assert.ErrorIs(t, err, common.ErrUnknownCategory)
	assert.Empty(t, result.Matches)
	assert.Zero(t, result.Total)
}

func TestFind_UnknownDiffersFromEmpty(t *testing.T) {
	tree := category.Default()

	_, unknownErr := Find(tree, "nonexistent", nil)
	empty, emptyErr := Find(tree, "bonus", nil)

	assert.Error(t, unknownErr)
	assert.NoError(t, emptyErr)
	assert.NotNil(t, empty.Matches)
	assert.Equal(t, []string{"bonus"}, empty.Subcategories)
}

type stubResolver map[string][]string

func (s stubResolver) Subcategories(name string) []string {
	return s[name]
}

func TestLedger_Find(t *testing.T) {
	l := New(975, sampleRecords())
	resolver := stubResolver{"treats": {"treats", "snack"}}

	result, err := l.Find(resolver, "treats")
	require.NoError(t, err)
	assert.Equal(t, []model.Record{{Category: "snack", Description: "chips", Amount: -5}}, result.Matches)
	assert.Equal(t, -5, result.Total)
}
