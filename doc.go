// Package turkshead draws Turk's head knots.
//
// A Turk's head is a closed, interleaved curve woven around a ring. It is
// defined by its number of leads and bights, and here by the inner and outer
// radius of the ring it fills and the width of the ribbon drawn along it.
//
// # Quick Start
//
//	k, err := turkshead.New(3, 5, 40, 60, 2)
//	if err != nil {
//	    return err
//	}
//	dc, err := turkshead.Render(k, 128, 128, color.White)
//	if err != nil {
//	    return err
//	}
//	dc.SavePNG("knot.png")
//
// # Curve model
//
// The curve is sampled at integer theta steps, StepsPerUnitAngle of them
// between two crossings. One path runs from theta 0 to MaxTheta; the knot is
// made of Paths rotated copies of it. At each crossing the strand is either
// under (altitude -1) or over (+1), alternating along the path, and the
// altitude is interpolated linearly in between.
//
// # Drawing
//
// Draw works on any Canvas, which *gg.Context satisfies. Segments are filled
// as small quadrilaterals coloured by position along the path and darkened
// when the strand goes under. All segments are drawn first and the over
// segments a second time, which produces the braid.
package turkshead
