package riskreward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"thousands grouping", 1234.5, "$1,234.50"},
		{"millions grouping", 1000000, "$1,000,000.00"},
		{"exactly one", 1, "$1.00"},
		{"four decimal tier", 0.5, "$0.5000"},
		{"four decimal tier lower bound", 0.01, "$0.0100"},
		{"six decimal tier", 0.0056, "$0.005600"},
		{"six decimal tier lower bound", 0.0001, "$0.000100"},
		{"eight decimal tier", 0.00001234, "$0.00001234"},
		{"zero", 0, "$0.00000000"},
		{"negative macro", -1234.5, "$-1,234.50"},
		{"negative micro", -0.005, "$-0.005000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatCurrency(tt.in))
		})
	}
}
