package flexrect

import (
	"image"
	"image/color"
	"testing"

	"deedles.dev/ximage/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{0xFF, 0, 0, 0xFF}

func TestRectangleDefaults(t *testing.T) {
	r := NewRectangle()
	assert.Equal(t, DefaultSegments, r.Segments())
	assert.True(t, r.Dirty())
	assert.Zero(t, r.BorderWidth())
	assert.Equal(t, Radii{}, r.Radius())

	fill, border := r.Geometry()
	assert.True(t, fill.Empty())
	assert.True(t, border.Empty())
}

func TestRectangleSetters(t *testing.T) {
	r := NewRectangle()

	var changes []Property
	r.Observe(ObserverFunc(func(rect *Rectangle, p Property) {
		assert.Same(t, r, rect)
		changes = append(changes, p)
	}))

	assert.True(t, r.SetSize(geom.Pt(40.0, 20.0)))
	assert.False(t, r.SetSize(geom.Pt(40.0, 20.0)))
	assert.True(t, r.SetRadius(30))
	assert.False(t, r.SetRadius(30, 30, 30, 30))
	assert.True(t, r.SetSegments(8))
	assert.False(t, r.SetSegments(8))
	assert.True(t, r.SetColor(red))
	assert.False(t, r.SetColor(color.NRGBA{0xFF, 0, 0, 0xFF}))
	assert.True(t, r.SetBorderColor(color.White))
	assert.False(t, r.SetBorderColor(color.Gray{0xFF}))
	assert.True(t, r.SetBorderWidth(2))
	assert.False(t, r.SetBorderWidth(2))

	assert.Equal(t, []Property{
		PropertySize,
		PropertyRadius,
		PropertySegments,
		PropertyColor,
		PropertyBorderColor,
		PropertyBorderWidth,
	}, changes)

	assert.Equal(t, Uniform(30), r.Radius())
	assert.Equal(t, Uniform(10), r.Radii())
}

func TestRectangleInvalidInput(t *testing.T) {
	r := NewRectangle()
	assert.False(t, r.SetSize(geom.Pt(-4.0, -1.0)))
	assert.False(t, r.SetBorderWidth(-1))
	assert.True(t, r.SetSegments(0))
	assert.Equal(t, 1, r.Segments())
	assert.True(t, r.SetSegments(4096))
	assert.Equal(t, 4096, r.Segments())
}

func TestRectangleSetAdaptive(t *testing.T) {
	r := NewRectangle()

	var changes []Property
	r.Observe(ObserverFunc(func(rect *Rectangle, p Property) {
		changes = append(changes, p)
	}))

	assert.False(t, r.SetAdaptive(false))
	assert.True(t, r.SetAdaptive(true))
	assert.True(t, r.Adaptive())
	assert.False(t, r.SetAdaptive(true))
	assert.True(t, r.SetAdaptive(false))
	assert.Equal(t, []Property{PropertySegments, PropertySegments}, changes)
}

func TestRectangleGeometryCache(t *testing.T) {
	r := NewRectangle()
	r.SetSize(geom.Pt(100.0, 50.0))
	r.SetRadius(10)
	r.SetColor(red)

	fill, _ := r.Geometry()
	require.Len(t, fill.Vertices, 2*4*(DefaultSegments+1)+1)

	again, _ := r.Geometry()
	assert.Same(t, &fill.Vertices[0], &again.Vertices[0])

	r.SetColor(color.White)
	again, _ = r.Geometry()
	assert.Same(t, &fill.Vertices[0], &again.Vertices[0])

	r.SetSize(geom.Pt(100.0, 40.0))
	again, _ = r.Geometry()
	assert.NotSame(t, &fill.Vertices[0], &again.Vertices[0])
}

func TestRectangleBorderVisibility(t *testing.T) {
	r := NewRectangle()
	r.SetSize(geom.Pt(60.0, 30.0))
	r.SetRadius(6)

	_, border := r.Geometry()
	assert.True(t, border.Empty())

	r.SetBorderWidth(2)
	_, border = r.Geometry()
	assert.False(t, border.Empty())

	r.SetBorderColor(color.Transparent)
	_, border = r.Geometry()
	assert.True(t, border.Empty())
}

func TestRectangleDraw(t *testing.T) {
	r := NewRectangle()
	r.SetSize(geom.Pt(40.0, 20.0))
	r.SetRadius(8)
	r.SetColor(red)
	require.Equal(t, image.Rect(0, 0, 40, 20), r.Bounds())

	dst := image.NewRGBA(image.Rect(0, 0, 50, 30))
	r.Draw(dst, image.Pt(5, 5))
	assert.False(t, r.Dirty())

	assert.Equal(t, red, dst.RGBAAt(25, 15))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(1, 1))
	assert.Equal(t, red, dst.RGBAAt(25, 5))

	r.SetBorderWidth(2)
	r.SetBorderColor(color.RGBA{0, 0, 0xFF, 0xFF})
	assert.True(t, r.Dirty())
	r.Draw(dst, image.Pt(5, 5))
	assert.Equal(t, color.RGBA{0, 0, 0xFF, 0xFF}, dst.RGBAAt(25, 5))
	assert.Equal(t, red, dst.RGBAAt(25, 15))
}

func TestPropertyString(t *testing.T) {
	assert.Equal(t, "borderWidth", PropertyBorderWidth.String())
	assert.Equal(t, "unknown", Property(-1).String())
}
