package infra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedCompare(t *testing.T) {
	testcases := []struct {
		name     string
		i, j     float64
		expected int64
	}{
		{"less", 1.0, 1.1, -1},
		{"equal", 2.5, 2.5, 0},
		{"greater", -1, -2, 1},
		{"nan less", math.NaN(), -math.MaxFloat64, -1},
		{"nan greater", math.Inf(-1), math.NaN(), 1},
		{"nan equal", math.NaN(), math.NaN(), 0},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.expected, OrderedCompare(tc.i, tc.j))
		})
	}
	require.Equal(t, int64(-1), OrderedCompare("abc", "abd"))
	require.Equal(t, int64(1), OrderedCompare[uint8](9, 3))
}

func TestReverseComparator(t *testing.T) {
	desc := ReverseComparator(OrderedCompare[int])
	require.Equal(t, int64(1), desc(1, 2))
	require.Equal(t, int64(-1), desc(2, 1))
	require.Equal(t, int64(0), desc(7, 7))
}
