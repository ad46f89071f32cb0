package turkshead

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltitudeTable_ThreeLeadsFiveBights(t *testing.T) {
	tab := newAltitudeTable(3, 5)

	var wantKeys []int
	var wantValues []float64
	alt := -1.0
	for i := -1; i <= 31; i++ {
		if i%3 == 0 {
			continue
		}
		wantKeys = append(wantKeys, i*StepsPerUnitAngle)
		wantValues = append(wantValues, alt)
		alt = -alt
	}

	if d := cmp.Diff(wantKeys, tab.keys); d != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(wantValues, tab.values); d != "" {
		t.Errorf("values mismatch (-want +got):\n%s", d)
	}
	assert.Equal(t, []int{-20, 20, 40, 80, 100}, tab.keys[:5])
	assert.Equal(t, []float64{-1, 1, -1, 1, -1}, tab.values[:5])
}

func TestAltitudeTable_Invariants(t *testing.T) {
	for _, lb := range [][2]int{{2, 1}, {2, 7}, {3, 5}, {4, 6}, {8, 3}} {
		tab := newAltitudeTable(lb[0], lb[1])
		require.Len(t, tab.values, len(tab.keys))
		require.NotEmpty(t, tab.keys)

		for i := 1; i < len(tab.keys); i++ {
			require.Greater(t, tab.keys[i], tab.keys[i-1], "keys must increase")
			require.Equal(t, -tab.values[i-1], tab.values[i], "altitudes must alternate")
		}
		// Every theta a path visits lies strictly inside the table.
		maxTheta := 2 * lb[0] * lb[1] * StepsPerUnitAngle / gcd(lb[0], lb[1])
		assert.Less(t, tab.keys[0], 0)
		assert.Greater(t, tab.keys[len(tab.keys)-1], maxTheta)
	}
}

func TestKnot_Altitude(t *testing.T) {
	k, err := New(3, 5, 40, 60, 2)
	require.NoError(t, err)

	tests := []struct {
		theta int
		want  float64
	}{
		{-20, -1},
		{-10, -0.5},
		{0, 0},
		{10, 0.5},
		{20, 1},
		{30, 0},
		{40, -1},
		{50, -0.5},
		{60, 0}, // no crossing at a lead boundary
		{80, 1},
		{600, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, k.Altitude(tt.theta), 1e-12, "Altitude(%d)", tt.theta)
	}
}

func TestKnot_AltitudeContinuous(t *testing.T) {
	k, err := New(3, 5, 40, 60, 2)
	require.NoError(t, err)

	maxStep := 2.0 / StepsPerUnitAngle
	for theta := 0; theta < k.MaxTheta(); theta++ {
		a, b := k.Altitude(theta), k.Altitude(theta+1)
		if math.Abs(b-a) > maxStep+1e-12 {
			t.Fatalf("altitude jumps from %v to %v at theta %d", a, b, theta)
		}
		if a < -1 || a > 1 {
			t.Fatalf("Altitude(%d) = %v, want within [-1, 1]", theta, a)
		}
	}
}

func TestKnot_AltitudeOutOfRangePanics(t *testing.T) {
	k, err := New(3, 5, 40, 60, 2)
	require.NoError(t, err)

	assert.PanicsWithError(t, "turkshead: altitude: theta -21 outside known crossings", func() {
		k.Altitude(-21)
	})
	assert.PanicsWithError(t, "turkshead: altitude: theta 620 outside known crossings", func() {
		k.Altitude(620)
	})
	assert.NotPanics(t, func() { k.Altitude(619) })
}
