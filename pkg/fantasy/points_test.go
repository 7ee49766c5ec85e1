package fantasy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Run tests on the formula over representative stat lines.
func TestComputePoints(t *testing.T) {
	tests := []struct {
		name     string
		kills    int
		deaths   int
		assists  int
		acs      float64
		expected float64
	}{
		{
			name:     "typicalLine",
			kills:    10,
			deaths:   5,
			assists:  8,
			acs:      220,
			expected: 38.0,
		},
		{
			name:     "allZero",
			expected: 0,
		},
		{
			name:     "deathHeavyGoesNegative",
			kills:    1,
			deaths:   15,
			assists:  2,
			acs:      80,
			expected: 1*2.0 + 2*1.5 - 15*1.0 + 80*0.05,
		},
		{
			name:     "acsOnly",
			acs:      250,
			expected: 12.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePoints(tt.kills, tt.deaths, tt.assists, tt.acs)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Calling the formula twice with identical inputs must yield bit-identical output.
func TestComputePointsDeterministic(t *testing.T) {
	first := ComputePoints(17, 9, 4, 231.5)
	second := ComputePoints(17, 9, 4, 231.5)

	assert.Equal(t, first, second)
}

// The formula is linear: doubling every input doubles the output.
func TestComputePointsLinear(t *testing.T) {
	base := ComputePoints(6, 3, 2, 100)
	doubled := ComputePoints(12, 6, 4, 200)

	assert.InDelta(t, base*2, doubled, 1e-9)
}
