package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   string
	}{
		{"trims and lowercases", "  Egg ", "%egg%"},
		{"folds non-ASCII letters", "ĐẬU Phụ", "%đậu phụ%"},
		{"keeps wildcards inside", "50%", "%50%%"},
		{"empty", "", "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.search))
		})
	}
}
