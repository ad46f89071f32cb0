package turkshead

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// StepsPerUnitAngle is the number of discrete theta steps between two
// consecutive crossings of the weave.
const StepsPerUnitAngle = 20

// Knot is the parametric curve of a Turk's head knot with a given number of
// leads and bights, swept around an annulus.
//
// A Knot is immutable after New returns and is safe for concurrent use.
// Each concurrent Draw needs its own Canvas.
type Knot struct {
	leads, bights int
	lineWidth     float64

	paths    int
	maxTheta int

	centerRadius    float64
	radiusAmplitude float64

	altitudes altitudeTable
}

// New returns the curve model for a knot with the given leads and bights,
// drawn between innerRadius and outerRadius with ribbons lineWidth wide.
//
// New fails with an error wrapping ErrInvalidParameters when leads is less
// than 2, bights is not positive, or outerRadius is not greater than
// innerRadius. A single lead never crosses itself, so it has no over/under
// weave to model.
func New(leads, bights int, innerRadius, outerRadius, lineWidth float64) (*Knot, error) {
	switch {
	case leads <= 0:
		return nil, fmt.Errorf("%w: leads must be positive, got %d", ErrInvalidParameters, leads)
	case leads == 1:
		return nil, fmt.Errorf("%w: a single lead has no crossings", ErrInvalidParameters)
	case bights <= 0:
		return nil, fmt.Errorf("%w: bights must be positive, got %d", ErrInvalidParameters, bights)
	case !(outerRadius > innerRadius):
		return nil, fmt.Errorf("%w: outer radius %g must be greater than inner radius %g",
			ErrInvalidParameters, outerRadius, innerRadius)
	}

	paths := gcd(leads, bights)
	k := &Knot{
		leads:           leads,
		bights:          bights,
		lineWidth:       lineWidth,
		paths:           paths,
		maxTheta:        2 * leads * bights * StepsPerUnitAngle / paths,
		centerRadius:    (innerRadius + outerRadius) / 2,
		radiusAmplitude: (outerRadius - innerRadius - lineWidth) / 2,
		altitudes:       newAltitudeTable(leads, bights),
	}
	return k, nil
}

// Leads returns the number of leads.
func (k *Knot) Leads() int { return k.leads }

// Bights returns the number of bights.
func (k *Knot) Bights() int { return k.bights }

// LineWidth returns the ribbon width.
func (k *Knot) LineWidth() float64 { return k.lineWidth }

// Paths returns the number of rotated copies of one path needed to draw the
// whole knot. It is gcd(leads, bights).
func (k *Knot) Paths() int { return k.paths }

// MaxTheta returns the last theta step of one path.
func (k *Knot) MaxTheta() int { return k.maxTheta }

// CenterRadius returns the radius the curve oscillates around.
func (k *Knot) CenterRadius() float64 { return k.centerRadius }

// RadiusAmplitude returns how far the curve's centre line moves away from
// CenterRadius.
func (k *Knot) RadiusAmplitude() float64 { return k.radiusAmplitude }

// Angle converts a theta step to an angle in radians.
func (k *Knot) Angle(theta int) float64 {
	return math.Pi * float64(theta) / float64(k.bights*StepsPerUnitAngle)
}

// Radius returns the distance from the origin of the curve at theta.
func (k *Knot) Radius(theta int) float64 {
	return k.centerRadius + k.radiusAmplitude*math.Cos(float64(k.bights)*k.Angle(theta)/float64(k.leads))
}

// Coordinates returns the Cartesian position of the curve at theta.
func (k *Knot) Coordinates(theta int) gg.Point {
	r, a := k.Radius(theta), k.Angle(theta)
	return gg.Pt(r*math.Cos(a), r*math.Sin(a))
}

// Altitude returns the weave depth at theta, between -1 (under) and +1
// (over). It panics with an *InvariantError if theta lies outside the
// crossings known to the knot.
func (k *Knot) Altitude(theta int) float64 {
	return k.altitudes.at(theta)
}

// Quad is a closed quadrilateral, in drawing order.
type Quad [4]gg.Point

// Ribbon returns the piece of ribbon centred on theta. It spans the curve
// from theta-1 to theta+1 and is LineWidth wide.
func (k *Knot) Ribbon(theta int) Quad {
	p0 := k.Coordinates(theta - 1)
	p1 := k.Coordinates(theta + 1)

	d := p1.Sub(p0)
	n := gg.Pt(-d.Y, d.X).Mul(k.lineWidth / (2 * d.Length()))

	return Quad{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
