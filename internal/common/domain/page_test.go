package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCustomPage(t *testing.T) {
	tests := []struct {
		name              string
		contentLen        int
		pageNumber        int
		pageSize          int
		totalElementCount int64
		wantTotalPages    int
	}{
		{"exact fit", 10, 1, 10, 20, 2},
		{"partial last page", 3, 2, 5, 8, 2},
		{"single element", 1, 1, 10, 1, 1},
		{"uneven division rounds up", 10, 1, 10, 21, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := make([]string, tt.contentLen)
			page := NewCustomPage(content, tt.pageNumber, tt.pageSize, tt.totalElementCount)

			assert.Len(t, page.Content, tt.contentLen)
			assert.Equal(t, tt.pageNumber, page.PageNumber)
			assert.Equal(t, tt.pageSize, page.PageSize)
			assert.Equal(t, tt.totalElementCount, page.TotalElementCount)
			assert.Equal(t, tt.wantTotalPages, page.TotalPageCount)
		})
	}
}
