package ui

import (
	"fmt"
	"image"

	"deedles.dev/wlr"
	"deedles.dev/ximage/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var (
	fontOptions = opentype.FaceOptions{
		Size: 14,
		DPI:  72,
	}

	gomonoFont *sfnt.Font
	gomonoFace font.Face
)

func init() {
	var err error
	gomonoFont, err = opentype.Parse(gomono.TTF)
	if err != nil {
		panic(fmt.Errorf("parse font: %w", err))
	}

	gomonoFace, err = opentype.NewFace(gomonoFont, &fontOptions)
	if err != nil {
		panic(fmt.Errorf("create font face: %w", err))
	}
}

// TextImage draws str with src as its color into a new image that is
// exactly large enough to hold it.
func TextImage(src image.Image, str string) *image.NRGBA {
	fdraw := font.Drawer{
		Src:  src,
		Face: gomonoFace,
		Dot:  fixed.P(0, int(fontOptions.Size)),
	}

	extents, _ := fdraw.BoundString(str)
	buf := image.NewNRGBA(image.Rect(
		0,
		0,
		(extents.Max.X - extents.Min.X).Ceil(),
		int(fontOptions.Size*1.25),
	))
	fdraw.Dst = buf
	fdraw.Dot.X -= extents.Min.X
	fdraw.DrawString(str)

	return buf
}

func CreateTextTexture(r wlr.Renderer, src image.Image, str string) wlr.Texture {
	return wlr.TextureFromImage(r, TextImage(src, str))
}

type Label struct {
	State *LabelState
}

func (label Label) Layout(con Constraints) LayoutContext {
	tex := label.State.tex
	if !tex.Valid() {
		return LayoutContext{
			Render: func(RenderContext, geom.Rect[float64]) {},
		}
	}

	return Texture{Tex: tex}.Layout(con)
}

type LabelState struct {
	tex wlr.Texture
	str string
}

func (ls *LabelState) update(r wlr.Renderer, src image.Image) {
	if ls.tex.Valid() {
		ls.tex.Destroy()
	}

	if ls.str == "" {
		ls.tex = wlr.Texture{}
		return
	}

	ls.tex = CreateTextTexture(r, src, ls.str)
}

func (ls *LabelState) Text() string {
	return ls.str
}

func (ls *LabelState) SetText(r wlr.Renderer, src image.Image, str string) {
	if (str == ls.str) && ls.tex.Valid() {
		return
	}

	ls.str = str
	ls.update(r, src)
}

// Destroy releases the texture held by the label.
func (ls *LabelState) Destroy() {
	if ls.tex.Valid() {
		ls.tex.Destroy()
	}
	ls.tex = wlr.Texture{}
}
