package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineDiff(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		want     string
	}{
		{"created", "", "a\nb\n", "+a\n+b\n"},
		{"replaced line", "a\nb\nc\n", "a\nx\nc\n", " a\n-b\n+x\n c\n"},
		{"appended", "a\n", "a\nb\n", " a\n+b\n"},
		{"identical", "a\n", "a\n", " a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineDiff(tt.old, tt.new))
		})
	}
}
