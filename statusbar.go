package main

import (
	"image"
	"time"

	"deedles.dev/simbar/flexrect"
	"deedles.dev/simbar/ui"
	"deedles.dev/wlr"
	"deedles.dev/ximage/geom"
)

// StatusBar is a rounded bar with a title on the left, a clock in the
// middle, and the name of its output on the right. Each output gets
// its own StatusBar so that textures are never shared between
// renderers.
type StatusBar struct {
	config *BarConfig
	name   string

	bg    *ui.FlexRectangleState
	title *ui.LabelState
	clock *ui.LabelState
	out   *ui.LabelState
}

func NewStatusBar(config *BarConfig, name string) *StatusBar {
	bg := ui.NewFlexRectangleState()
	bg.Rect.Observe(flexrect.ObserverFunc(func(r *flexrect.Rectangle, p flexrect.Property) {
		wlr.Log(wlr.Debug, "status bar %v changed", p)
	}))

	sb := StatusBar{
		config: config,
		name:   name,
		bg:     bg,
		title:  new(ui.LabelState),
		clock:  new(ui.LabelState),
		out:    new(ui.LabelState),
	}
	sb.configure()
	return &sb
}

func (sb *StatusBar) configure() {
	r := sb.bg.Rect
	r.SetRadius(radiusArgs(sb.config.Radius)...)
	r.SetSegments(sb.config.Segments)
	r.SetAdaptive(sb.config.Adaptive)
	r.SetColor(sb.config.Color)
	r.SetBorderColor(sb.config.BorderColor)
	r.SetBorderWidth(sb.config.BorderWidth)
}

func radiusArgs(radius []float64) []any {
	args := make([]any, 0, len(radius))
	for _, r := range radius {
		args = append(args, r)
	}
	return args
}

// sidePadding returns the padding for a label so that it stays clear
// of the rounded corners on both of its sides.
func sidePadding(radii flexrect.Radii, child ui.Widget) ui.Padding {
	pad := ui.Uniform(TitlePadding, child)
	pad.Left += max(radii.Get(flexrect.TopLeft), radii.Get(flexrect.BottomLeft)) / 2
	pad.Right += max(radii.Get(flexrect.TopRight), radii.Get(flexrect.BottomRight)) / 2
	return pad
}

// clockText formats now for the clock in the middle of the bar. An
// empty format disables the clock.
func (sb *StatusBar) clockText(now time.Time) string {
	if sb.config.Clock == "" {
		return ""
	}
	return now.Format(sb.config.Clock)
}

func (sb *StatusBar) widget() ui.Widget {
	pad := sidePadding(sb.bg.Rect.Radii(), ui.Box{
		Children: []ui.Widget{
			ui.Align{Edges: geom.EdgeLeft, Child: ui.Label{State: sb.title}},
			ui.Center{Child: ui.Label{State: sb.clock}},
			ui.Align{Edges: geom.EdgeRight, Child: ui.Label{State: sb.out}},
		},
	})

	return ui.Stack{
		Children: []ui.Widget{
			ui.FlexRectangle{State: sb.bg},
			pad,
		},
	}
}

// Render renders the status bar into the given area of the output.
func (sb *StatusBar) Render(rc ui.RenderContext, into geom.Rect[float64]) {
	src := image.NewUniform(ColorTitle)
	sb.title.SetText(rc.R, src, sb.config.Title)
	sb.clock.SetText(rc.R, src, sb.clockText(time.Now()))
	sb.out.SetText(rc.R, src, sb.name)
	sb.bg.Rect.SetSize(into.Size())

	lc := sb.widget().Layout(ui.Constraints{MaxSize: into.Size()})
	lc.Render(rc, into)
}

func (sb *StatusBar) Destroy() {
	sb.bg.Destroy()
	sb.title.Destroy()
	sb.clock.Destroy()
	sb.out.Destroy()
}
