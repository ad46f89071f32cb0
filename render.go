package turkshead

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Render rasterizes k centred on a width x height image filled with
// background.
func Render(k *Knot, width, height int, background color.Color) (*gg.Context, error) {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(background))
	dc.Translate(float64(width)/2, float64(height)/2)

	if err := Draw(dc, k); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// Record captures the drawing of k, centred on a width x height surface
// filled with background, as a recording that can be replayed to any
// recording backend.
func Record(k *Knot, width, height int, background color.Color) (*recording.Recording, error) {
	rec := recording.NewRecorder(width, height)
	rec.SetColor(gg.FromColor(background))
	rec.FillRectangle(0, 0, float64(width), float64(height))
	rec.Translate(float64(width)/2, float64(height)/2)

	if err := Draw(recorderCanvas{rec}, k); err != nil {
		return nil, err
	}
	r := rec.FinishRecording()
	Logger().Debug("turkshead: recorded", "commands", len(r.Commands()))
	return r, nil
}
