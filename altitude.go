package turkshead

import "sort"

// altitudeTable holds the altitude of the weave at each crossing, keyed by
// theta step. keys is strictly increasing.
type altitudeTable struct {
	keys   []int
	values []float64
}

// newAltitudeTable records alternating under/over crossings at every unit
// angle that is not a multiple of leads, from -1 to 2*leads*bights+1.
func newAltitudeTable(leads, bights int) altitudeTable {
	last := 2*leads*bights + 1
	t := altitudeTable{
		keys:   make([]int, 0, last+2),
		values: make([]float64, 0, last+2),
	}
	alt := -1.0
	for i := -1; i <= last; i++ {
		if i%leads == 0 {
			continue
		}
		t.keys = append(t.keys, i*StepsPerUnitAngle)
		t.values = append(t.values, alt)
		alt = -alt
	}
	return t
}

// at interpolates linearly between the crossings around theta.
func (t altitudeTable) at(theta int) float64 {
	next := sort.SearchInts(t.keys, theta+1)
	if next == 0 || next == len(t.keys) {
		panic(&InvariantError{Op: "altitude", Theta: theta})
	}
	prev := next - 1

	k0, k1 := t.keys[prev], t.keys[next]
	a0, a1 := t.values[prev], t.values[next]
	return a0 + (a1-a0)*float64(theta-k0)/float64(k1-k0)
}
