package flexrect

import (
	"image"
	"testing"

	"deedles.dev/ximage/geom"
	"github.com/stretchr/testify/assert"
)

func TestRasterizeFill(t *testing.T) {
	m := Fill(geom.Pt(100.0, 50.0), Uniform(10), 16)
	mask := Rasterize(m, image.Pt(100, 50))

	assert.Equal(t, image.Rect(0, 0, 100, 50), mask.Bounds())
	assert.Equal(t, uint8(0xFF), mask.AlphaAt(50, 25).A)
	assert.Equal(t, uint8(0xFF), mask.AlphaAt(50, 0).A)
	assert.Equal(t, uint8(0xFF), mask.AlphaAt(0, 25).A)

	for _, p := range []image.Point{{0, 0}, {99, 0}, {99, 49}, {0, 49}, {1, 1}} {
		assert.Equal(t, uint8(0), mask.AlphaAt(p.X, p.Y).A, "pixel %v", p)
	}
}

func TestRasterizeBorder(t *testing.T) {
	m := Border(geom.Pt(40.0, 20.0), Radii{}, 3, 4)
	mask := Rasterize(m, image.Pt(40, 20))

	assert.Equal(t, uint8(0xFF), mask.AlphaAt(1, 1).A)
	assert.Equal(t, uint8(0xFF), mask.AlphaAt(20, 18).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(20, 10).A)
}

func TestRasterizeEmpty(t *testing.T) {
	mask := Rasterize(Mesh{}, image.Pt(4, 3))
	assert.Equal(t, image.Rect(0, 0, 4, 3), mask.Bounds())
	for _, a := range mask.Pix {
		assert.Zero(t, a)
	}

	mask = Rasterize(Fill(geom.Pt(4.0, 4.0), Uniform(1), 4), image.Point{})
	assert.True(t, mask.Bounds().Empty())
}
