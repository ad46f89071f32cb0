package turkshead

import (
	"fmt"
	"math"
)

// Draw draws k on c, centred on the canvas origin.
//
// The knot is drawn twice: first every ribbon segment, then only the segments
// whose altitude is positive, so over-strands end up on top of the strands
// they cross. Between paths the canvas is rotated by 2π/Paths; the rotation
// accumulates across both passes and is undone when Draw returns.
//
// Draw restores the canvas state on every return, including when a fill
// fails.
func Draw(c Canvas, k *Knot) error {
	c.Push()
	defer c.Pop()

	log := Logger()
	log.Debug("turkshead: draw",
		"leads", k.leads, "bights", k.bights,
		"paths", k.paths, "maxTheta", k.maxTheta)

	for _, overOnly := range [...]bool{false, true} {
		n, err := drawPaths(c, k, overOnly)
		if err != nil {
			return err
		}
		log.Debug("turkshead: pass done", "overOnly", overOnly, "segments", n)
	}
	return nil
}

func drawPaths(c Canvas, k *Knot, overOnly bool) (int, error) {
	step := 2 * math.Pi / float64(k.paths)
	total := 0
	for path := 0; path < k.paths; path++ {
		n, err := drawPath(c, k, overOnly)
		total += n
		if err != nil {
			return total, fmt.Errorf("turkshead: path %d: %w", path, err)
		}
		c.Rotate(step)
	}
	return total, nil
}

func drawPath(c Canvas, k *Knot, overOnly bool) (int, error) {
	n := 0
	for theta := 0; theta <= k.maxTheta; theta++ {
		z := k.Altitude(theta)
		if overOnly && z <= 0 {
			continue
		}
		col := k.ribbonColor(theta, z)
		c.SetRGB(col.R, col.G, col.B)

		q := k.Ribbon(theta)
		c.MoveTo(q[0].X, q[0].Y)
		for _, p := range q[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		if err := c.Fill(); err != nil {
			return n, fmt.Errorf("fill theta %d: %w", theta, err)
		}
		n++
	}
	return n, nil
}

// CountSegments returns how many ribbon segments Draw fills in each pass:
// all reports the unfiltered pass and over the pass restricted to positive
// altitudes. Both count every path.
func CountSegments(k *Knot) (all, over int) {
	for theta := 0; theta <= k.maxTheta; theta++ {
		if k.Altitude(theta) > 0 {
			over++
		}
	}
	all = (k.maxTheta + 1) * k.paths
	return all, over * k.paths
}
