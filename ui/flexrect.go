package ui

import (
	"deedles.dev/simbar/flexrect"
	"deedles.dev/simbar/internal/fimg"
	"deedles.dev/wlr"
	"deedles.dev/ximage/geom"
)

// FlexRectangle fills the area that it is rendered into with a
// rounded rectangle. Put it first in a Stack to use it as a
// background.
type FlexRectangle struct {
	State *FlexRectangleState
}

func (f FlexRectangle) Layout(con Constraints) LayoutContext {
	return LayoutContext{
		Size:   con.MaxSize,
		Render: f.State.render,
	}
}

// FlexRectangleState holds the properties of a FlexRectangle along
// with the texture that it was last drawn into. The texture is only
// redrawn when a property or the size of the widget changes.
type FlexRectangleState struct {
	Rect *flexrect.Rectangle

	buf *fimg.ABGR
	tex wlr.Texture
}

func NewFlexRectangleState() *FlexRectangleState {
	return &FlexRectangleState{
		Rect: flexrect.NewRectangle(),
	}
}

// draw redraws the rectangle into the state's buffer if it is out of
// date. It returns nil if there is nothing to draw.
func (s *FlexRectangleState) draw() *fimg.ABGR {
	b := s.Rect.Bounds()
	if b.Empty() {
		s.buf = nil
		return nil
	}

	if (s.buf == nil) || (s.buf.Rect != b) {
		s.buf = fimg.NewABGR(b)
	} else if s.Rect.Dirty() {
		s.buf.Clear()
	} else {
		return s.buf
	}

	s.Rect.Draw(s.buf, b.Min)
	return s.buf
}

func (s *FlexRectangleState) update(r wlr.Renderer, into geom.Rect[float64]) {
	s.Rect.SetSize(into.Size())
	if !s.Rect.Dirty() && s.tex.Valid() {
		return
	}

	if s.tex.Valid() {
		s.tex.Destroy()
		s.tex = wlr.Texture{}
	}

	buf := s.draw()
	if buf == nil {
		return
	}

	s.tex = wlr.TextureFromPixels(
		r,
		uint32(buf.Format()),
		uint32(buf.Stride),
		uint32(buf.Rect.Dx()),
		uint32(buf.Rect.Dy()),
		buf.Pix,
	)
	if !s.tex.Valid() {
		wlr.Log(wlr.Error, "create %v texture for %vx%v rectangle", buf.Format(), buf.Rect.Dx(), buf.Rect.Dy())
	}
}

func (s *FlexRectangleState) render(rc RenderContext, into geom.Rect[float64]) {
	s.update(rc.R, into)
	if !s.tex.Valid() {
		return
	}

	b := geom.RConv[float64](geom.FromImageRect(s.buf.Rect))
	Texture{Tex: s.tex}.render(rc, b.Add(into.Min))
}

// Destroy releases the texture held by the state.
func (s *FlexRectangleState) Destroy() {
	if s.tex.Valid() {
		s.tex.Destroy()
	}
	s.tex = wlr.Texture{}
	s.buf = nil
}
