package ui

import (
	"deedles.dev/wlr"
	"deedles.dev/ximage/geom"
)

type Padding struct {
	Top, Bottom, Left, Right float64
	Child                    Widget
}

// Uniform returns a Padding with the same amount on every side.
func Uniform(amount float64, child Widget) Padding {
	return Padding{
		Top:    amount,
		Bottom: amount,
		Left:   amount,
		Right:  amount,
		Child:  child,
	}
}

func (p Padding) toChild(con Constraints) Constraints {
	return Constraints{
		MaxSize: p.pad(con.Rect()).Size(),
	}
}

func (p Padding) fromChild(lc LayoutContext) geom.Point[float64] {
	return geom.Pt(
		lc.Size.X+p.Left+p.Right,
		lc.Size.Y+p.Top+p.Bottom,
	)
}

func (p Padding) pad(r geom.Rect[float64]) geom.Rect[float64] {
	return r.Pad(p.Top, p.Bottom, p.Left, p.Right)
}

func (p Padding) Layout(con Constraints) LayoutContext {
	lc := p.Child.Layout(p.toChild(con))
	return LayoutContext{
		Size: p.fromChild(lc),
		Render: func(rc RenderContext, into geom.Rect[float64]) {
			lc.Render(rc, p.pad(into))
		},
	}
}

type Center struct {
	Child Widget
}

func (c Center) Layout(con Constraints) LayoutContext {
	lc := c.Child.Layout(con)
	return LayoutContext{
		Size: con.MaxSize,
		Render: func(rc RenderContext, into geom.Rect[float64]) {
			lc.Render(rc, geom.Rect[float64]{Max: lc.Size}.CenterAt(into.Center()))
		},
	}
}

// Align positions its child against the given edges of the area it
// is rendered into, stretching the child if opposite edges are both
// given.
type Align struct {
	Edges geom.Edges
	Child Widget
}

func (a Align) Layout(con Constraints) LayoutContext {
	lc := a.Child.Layout(con)
	return LayoutContext{
		Size: con.MaxSize,
		Render: func(rc RenderContext, into geom.Rect[float64]) {
			lc.Render(rc, geom.Align(into, geom.Rect[float64]{Max: lc.Size}, a.Edges))
		},
	}
}

type Texture struct {
	Tex          wlr.Texture
	Transparency float64
}

func (t Texture) render(rc RenderContext, into geom.Rect[float64]) {
	if !t.Tex.Valid() {
		return
	}

	m := wlr.ProjectBoxMatrix(
		into.ImageRect(),
		wlr.OutputTransformNormal,
		0,
		rc.Out.TransformMatrix(),
	)
	rc.R.RenderTextureWithMatrix(t.Tex, m, float32(1-t.Transparency))
}

func (t Texture) Layout(con Constraints) LayoutContext {
	var s geom.Point[float64]
	if t.Tex.Valid() {
		s = geom.Pt(float64(t.Tex.Width()), float64(t.Tex.Height()))
	}

	return LayoutContext{
		Size:   s,
		Render: t.render,
	}
}

type Box struct {
	Vertical bool
	Children []Widget
}

func (b Box) addSize(total, size geom.Point[float64]) geom.Point[float64] {
	if b.Vertical {
		return geom.Pt(max(total.X, size.X), total.Y+size.Y)
	}
	return geom.Pt(total.X+size.X, max(total.Y, size.Y))
}

func (b Box) div(amount int) geom.Point[float64] {
	amount = max(amount, 1)
	if b.Vertical {
		return geom.Pt(1, float64(amount))
	}
	return geom.Pt(float64(amount), 1)
}

func (b Box) Layout(con Constraints) LayoutContext {
	div := b.div(len(b.Children))
	con.MaxSize.X /= div.X
	con.MaxSize.Y /= div.Y

	lc := make([]LayoutContext, 0, len(b.Children))
	var s geom.Point[float64]
	for _, c := range b.Children {
		clc := c.Layout(con)
		lc = append(lc, clc)
		s = b.addSize(s, clc.Size)
	}

	return LayoutContext{
		Size: s,
		Render: func(rc RenderContext, into geom.Rect[float64]) {
			s := into.Size()
			s.X /= div.X
			s.Y /= div.Y
			into = into.Resize(s)

			off := geom.Pt(s.X, 0)
			if b.Vertical {
				off = geom.Pt(0, s.Y)
			}

			for _, lc := range lc {
				lc.Render(rc, into)
				into = into.Add(off)
			}
		},
	}
}

type Stack struct {
	Children []Widget
}

func (s Stack) Layout(con Constraints) LayoutContext {
	lc := make([]LayoutContext, 0, len(s.Children))
	var sz geom.Point[float64]
	for _, c := range s.Children {
		clc := c.Layout(con)
		lc = append(lc, clc)
		sz = geom.Pt(max(sz.X, clc.Size.X), max(sz.Y, clc.Size.Y))
	}

	return LayoutContext{
		Size: sz,
		Render: func(rc RenderContext, into geom.Rect[float64]) {
			for _, lc := range lc {
				lc.Render(rc, into)
			}
		},
	}
}
