// Package fimg provides image buffers laid out for direct upload to
// wlroots textures.
package fimg

import (
	"image"
	"image/color"

	"deedles.dev/simbar/internal/drm"
)

// ABGR is an in-memory image of premultiplied colors whose bytes are
// stored in alpha, blue, green, red order. On little-endian machines
// this is the layout of drm.FormatRGBA8888.
type ABGR struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

func NewABGR(r image.Rectangle) *ABGR {
	return &ABGR{
		Pix:    make([]byte, 4*r.Dx()*r.Dy()),
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}

// Format is the DRM format matching the layout of p.
func (p *ABGR) Format() drm.Format {
	return drm.FormatRGBA8888
}

func (p *ABGR) PixOffset(x, y int) int {
	return ((y - p.Rect.Min.Y) * p.Stride) + (x-p.Rect.Min.X)*4
}

func (p *ABGR) Bounds() image.Rectangle {
	return p.Rect
}

func (p *ABGR) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *ABGR) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *ABGR) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}

	i := p.PixOffset(x, y)
	s := p.Pix[i : i+4 : i+4]
	return color.RGBA{s[3], s[2], s[1], s[0]}
}

func (p *ABGR) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}

	c1 := color.RGBAModel.Convert(c).(color.RGBA)
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+4 : i+4]
	s[0] = c1.A
	s[1] = c1.B
	s[2] = c1.G
	s[3] = c1.R
}

// Clear sets every pixel to transparent.
func (p *ABGR) Clear() {
	clear(p.Pix)
}
