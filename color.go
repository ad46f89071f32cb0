package turkshead

import (
	"math"

	"github.com/gogpu/gg"
)

// HSV returns the opaque color with hue h in degrees and saturation s and
// value v in [0, 1]. Any real hue is accepted and wrapped into [0, 360).
func HSV(h, s, v float64) gg.RGBA {
	sector := math.Floor(h / 60)
	f := h/60 - sector
	hi := ((int(sector) % 6) + 6) % 6

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch hi {
	case 0:
		return gg.RGB(v, t, p)
	case 1:
		return gg.RGB(q, v, p)
	case 2:
		return gg.RGB(p, v, t)
	case 3:
		return gg.RGB(p, q, v)
	case 4:
		return gg.RGB(t, p, v)
	default:
		return gg.RGB(v, p, q)
	}
}

// ribbonColor is the fill of the ribbon at theta: the hue walks once around
// the wheel along a path and the brightness follows the altitude.
func (k *Knot) ribbonColor(theta int, altitude float64) gg.RGBA {
	return HSV(float64(theta)*360/float64(k.maxTheta), 0.5, 0.5+altitude/2)
}
