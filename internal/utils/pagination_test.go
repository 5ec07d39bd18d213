package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", "", 1, 50},
		{"explicit", "3", "20", 3, 20},
		{"page below minimum", "0", "10", 1, 10},
		{"negative page", "-2", "10", 1, 10},
		{"limit below minimum", "1", "0", 1, 50},
		{"limit above maximum", "1", "500", 1, 100},
		{"garbage input", "abc", "xyz", 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := Pagination{Page: 3, Limit: 20}
	assert.Equal(t, 40, p.Offset())
}
