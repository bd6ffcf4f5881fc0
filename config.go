package main

import (
	"flag"
	"fmt"
	"image/color"

	"deedles.dev/simbar/internal/util"
	"deedles.dev/ximage/geom"
	"go-simpler.org/env"
)

// Config is the environment-level configuration of the compositor.
// Every setting can be overridden by a flag of the same name.
type Config struct {
	Debug       bool      `env:"SIMBAR_DEBUG" usage:"enable debug logging"`
	Title       string    `env:"SIMBAR_TITLE" default:"simbar" usage:"text shown in the status bar"`
	Clock       string    `env:"SIMBAR_CLOCK" default:"15:04" usage:"time layout of the clock in the middle of the status bar, empty to hide it"`
	Height      float64   `env:"SIMBAR_HEIGHT" default:"32" usage:"height of the status bar"`
	Margin      float64   `env:"SIMBAR_MARGIN" default:"6" usage:"distance between the status bar and the edges of the output"`
	Anchor      string    `env:"SIMBAR_ANCHOR" default:"top,left,right" usage:"comma-separated edges that the status bar is anchored to"`
	Radius      []float64 `env:"SIMBAR_RADIUS" default:"12" usage:"corner radii: one value for all corners or top-left,top-right,bottom-right,bottom-left"`
	Segments    int       `env:"SIMBAR_SEGMENTS" default:"16" usage:"segments per rounded corner"`
	Adaptive    bool      `env:"SIMBAR_ADAPTIVE" usage:"use fewer segments for small corners"`
	Color       string    `env:"SIMBAR_COLOR" default:"#ebffec" usage:"fill color of the status bar"`
	BorderColor string    `env:"SIMBAR_BORDER_COLOR" default:"#78ad84" usage:"border color of the status bar"`
	BorderWidth float64   `env:"SIMBAR_BORDER_WIDTH" default:"2" usage:"border width of the status bar"`
}

// LoadConfig loads a Config from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	err := env.Load(&cfg, &env.Options{SliceSep: ","})
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	return &cfg, nil
}

// BarConfig is the fully parsed configuration of a status bar.
type BarConfig struct {
	Title       string
	Clock       string
	Height      float64
	Margin      float64
	Anchor      geom.Edges
	Radius      []float64
	Segments    int
	Adaptive    bool
	Color       color.NRGBA
	BorderColor color.NRGBA
	BorderWidth float64
}

// Bar parses the textual settings of cfg.
func (cfg *Config) Bar() (bar BarConfig, err error) {
	bar = BarConfig{
		Title:       cfg.Title,
		Clock:       cfg.Clock,
		Height:      cfg.Height,
		Margin:      cfg.Margin,
		Radius:      cfg.Radius,
		Segments:    cfg.Segments,
		Adaptive:    cfg.Adaptive,
		BorderWidth: cfg.BorderWidth,
	}

	bar.Anchor, err = util.ParseEdges(cfg.Anchor)
	if err != nil {
		return bar, fmt.Errorf("SIMBAR_ANCHOR: %w", err)
	}
	bar.Color, err = util.ParseColor(cfg.Color)
	if err != nil {
		return bar, fmt.Errorf("SIMBAR_COLOR: %w", err)
	}
	bar.BorderColor, err = util.ParseColor(cfg.BorderColor)
	if err != nil {
		return bar, fmt.Errorf("SIMBAR_BORDER_COLOR: %w", err)
	}

	return bar, nil
}

// Flags registers flags on the default flag set, using the current
// values of bar as defaults. The returned function copies the parsed
// flags back into bar and must be called after flag.Parse.
func (bar *BarConfig) Flags() (apply func()) {
	title := flag.String("title", bar.Title, "text shown in the status bar")
	clock := flag.String("clock", bar.Clock, "time layout of the clock, empty to hide it")
	height := flag.Float64("height", bar.Height, "height of the status bar")
	margin := flag.Float64("margin", bar.Margin, "distance between the status bar and the edges of the output")
	anchor := util.EdgesFlag("anchor", bar.Anchor, "comma-separated edges that the status bar is anchored to")
	radius := util.FloatsFlag("radius", bar.Radius, "comma-separated corner radii")
	segments := flag.Int("segments", bar.Segments, "segments per rounded corner")
	adaptive := flag.Bool("adaptive", bar.Adaptive, "use fewer segments for small corners")
	fill := util.ColorFlag("color", bar.Color, "fill color of the status bar")
	border := util.ColorFlag("border-color", bar.BorderColor, "border color of the status bar")
	borderWidth := flag.Float64("border-width", bar.BorderWidth, "border width of the status bar")

	return func() {
		bar.Title = *title
		bar.Clock = *clock
		bar.Height = max(*height, 0)
		bar.Margin = max(*margin, 0)
		bar.Anchor = *anchor
		bar.Radius = *radius
		bar.Segments = *segments
		bar.Adaptive = *adaptive
		bar.Color = *fill
		bar.BorderColor = *border
		bar.BorderWidth = *borderWidth
	}
}

// Bounds returns the area of an output with the given bounds that the
// bar occupies.
func (bar *BarConfig) Bounds(out geom.Rect[float64]) geom.Rect[float64] {
	avail := out.Inset(bar.Margin)
	if (avail.Dx() <= 0) || (avail.Dy() <= 0) {
		return geom.Rect[float64]{Min: out.Min, Max: out.Min}
	}

	vert := geom.EdgeTop | geom.EdgeBottom
	horiz := geom.EdgeLeft | geom.EdgeRight

	// Align stretches the bar between opposite anchors, so only the
	// thickness and, if the bar is not stretched, its length matter
	// here.
	var r geom.Rect[float64]
	switch {
	case (bar.Anchor&vert == vert) && (bar.Anchor&horiz != horiz):
		r = geom.Rt(0, 0, min(bar.Height, avail.Dx()), avail.Dy())
	case bar.Anchor&horiz == horiz:
		r = geom.Rt(0, 0, avail.Dx(), min(bar.Height, avail.Dy()))
	default:
		r = geom.Rt(0, 0, min(avail.Dx(), max(bar.Height, avail.Dx()/3)), min(bar.Height, avail.Dy()))
	}

	return geom.Align(avail, r, bar.Anchor)
}
