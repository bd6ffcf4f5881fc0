package flexrect

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Rasterize renders the coverage of m into an alpha mask of the given
// size. Edges are anti-aliased.
func Rasterize(m Mesh, size image.Point) *image.Alpha {
	mask := image.NewAlpha(image.Rectangle{Max: size})
	if m.Empty() || size.X <= 0 || size.Y <= 0 {
		return mask
	}

	z := vector.NewRasterizer(size.X, size.Y)
	for t := range m.Triangles() {
		z.MoveTo(t[0].X, t[0].Y)
		z.LineTo(t[1].X, t[1].Y)
		z.LineTo(t[2].X, t[2].Y)
		z.ClosePath()
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask
}

// pixelSize rounds a fractional size up to whole pixels.
func pixelSize(w, h float64) image.Point {
	if !(w > 0) || !(h > 0) {
		return image.Point{}
	}
	return image.Pt(int(math.Ceil(w)), int(math.Ceil(h)))
}
