package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_String(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		record Record
	}{
		{
			name:   "categorized expense",
			record: Record{Category: "meal", Description: "lunch", Amount: -80},
			want:   "meal lunch -80",
		},
		{
			name:   "categorized income",
			record: Record{Category: "salary", Description: "march", Amount: 3000},
			want:   "salary march 3000",
		},
		{
			name:   "uncategorized",
			record: Record{Description: "gift", Amount: 50},
			want:   "gift 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.String())
			assert.Equal(t, tt.record.Category != "", tt.record.HasCategory())
		})
	}
}
