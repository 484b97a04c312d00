package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{name: "zero previous yields zero", current: 100, previous: 0, expected: 0},
		{name: "increase", current: 150, previous: 100, expected: 50},
		{name: "decrease", current: 50, previous: 100, expected: -50},
		{name: "no change", current: 100, previous: 100, expected: 0},
		{name: "drop to zero", current: 0, previous: 80, expected: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PercentChange(tt.current, tt.previous), 1e-9)
		})
	}
}
