// Command turkshead renders a Turk's head knot to a PNG image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster"
	"golang.org/x/image/colornames"

	"github.com/gogpu/turkshead"
)

func main() {
	var (
		leads      = flag.Int("leads", 3, "number of leads")
		bights     = flag.Int("bights", 5, "number of bights")
		inner      = flag.Float64("inner", 40, "inner radius")
		outer      = flag.Float64("outer", 110, "outer radius")
		width      = flag.Float64("width", 6, "ribbon width")
		size       = flag.Int("size", 256, "image width and height in pixels")
		background = flag.String("background", "white", "background: SVG color name or #rrggbb")
		output     = flag.String("output", "turkshead.png", "output file")
		mode       = flag.String("mode", "direct", "rendering mode: direct or recorded")
		verbose    = flag.Bool("v", false, "log drawing details")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	turkshead.SetLogger(log)

	bg, err := parseColor(*background)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	k, err := turkshead.New(*leads, *bights, *inner, *outer, *width)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch *mode {
	case "direct":
		err = renderDirect(k, *size, bg, *output)
	case "recorded":
		err = renderRecorded(k, *size, bg, *output)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Error("render failed", "err", err)
		os.Exit(1)
	}

	all, over := turkshead.CountSegments(k)
	log.Info("knot saved", "output", *output, "size", *size,
		"paths", k.Paths(), "segments", all, "overSegments", over)
}

func renderDirect(k *turkshead.Knot, size int, bg color.Color, output string) error {
	dc, err := turkshead.Render(k, size, size, bg)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.SavePNG(output)
}

func renderRecorded(k *turkshead.Knot, size int, bg color.Color, output string) error {
	rec, err := turkshead.Record(k, size, size, bg)
	if err != nil {
		return err
	}
	backend, err := recording.NewBackend("raster")
	if err != nil {
		return err
	}
	if err := rec.Playback(backend); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return errors.New("raster backend cannot write files")
	}
	return fb.SaveToFile(output)
}

// parseColor accepts an SVG 1.1 color name or a hex color.
func parseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		return gg.Hex(s).Color(), nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
