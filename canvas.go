package turkshead

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Canvas is the immediate-mode 2D drawing surface a Knot is drawn on.
// Push and Pop save and restore the coordinate frame. Rotate turns the frame
// in place, angle in radians.
type Canvas interface {
	Push()
	Pop()
	Rotate(angle float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	SetRGB(r, g, b float64)
	Fill() error
}

var _ Canvas = (*gg.Context)(nil)

// recorderCanvas lets a recording.Recorder stand in for a Canvas.
type recorderCanvas struct {
	*recording.Recorder
}

func (c recorderCanvas) Fill() error {
	c.Recorder.Fill()
	return nil
}
