package flexrect

import (
	"testing"

	"deedles.dev/ximage/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorder(t *testing.T) {
	size := geom.Pt(100.0, 50.0)
	m := Border(size, Uniform(10), 2, 8)

	require.Equal(t, Triangles, m.Mode)
	require.False(t, m.Empty())
	inBounds(t, m, size)

	n := len(m.Vertices) / 2
	assert.Equal(t, 4*(8+1), n)
	assert.Len(t, m.Indices, 6*n)
	for _, i := range m.Indices {
		assert.Less(t, int(i), len(m.Vertices))
	}
}

func TestBorderInnerOutline(t *testing.T) {
	size := geom.Pt(40.0, 20.0)
	m := Border(size, Radii{}, 3, 4)

	// Square corners collapse to a single pair each.
	require.Len(t, m.Vertices, 8)
	assert.Equal(t, []geom.Point[float32]{
		{X: 0, Y: 0}, {X: 3, Y: 3},
		{X: 40, Y: 0}, {X: 37, Y: 3},
		{X: 40, Y: 20}, {X: 37, Y: 17},
		{X: 0, Y: 20}, {X: 3, Y: 17},
	}, m.Vertices)
	assert.Len(t, m.Indices, 6*4)
}

func TestBorderArea(t *testing.T) {
	size := geom.Pt(40.0, 20.0)
	m := Border(size, Radii{}, 3, 4)

	var area float64
	for tri := range m.Triangles() {
		a, b, c := tri[0], tri[1], tri[2]
		area += float64((b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X)) / 2
	}
	assert.InDelta(t, 40*20-34*14, area, 1e-3)
}

func TestBorderDegenerate(t *testing.T) {
	assert.True(t, Border(geom.Pt(0.0, 10.0), Uniform(2), 1, 8).Empty())
	assert.True(t, Border(geom.Pt(10.0, 10.0), Uniform(2), 0, 8).Empty())
	assert.True(t, Border(geom.Pt(10.0, 10.0), Uniform(2), -3, 8).Empty())
}

func TestBorderSegmentLimit(t *testing.T) {
	size := geom.Pt(4000.0, 4000.0)

	m := Border(size, Uniform(1500), 10, MaxBorderSegments+5000)
	require.Len(t, m.Vertices, 2*4*(MaxBorderSegments+1))
	assert.Len(t, m.Indices, 6*4*(MaxBorderSegments+1))

	var top uint16
	for _, i := range m.Indices {
		top = max(top, i)
	}
	assert.Equal(t, len(m.Vertices)-1, int(top))

	assert.Equal(t, m, Border(size, Uniform(1500), 10, MaxBorderSegments))
}

func TestBorderWide(t *testing.T) {
	size := geom.Pt(30.0, 10.0)
	m := Border(size, Uniform(3), 100, 6)
	require.False(t, m.Empty())
	inBounds(t, m, size)
}
