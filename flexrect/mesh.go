package flexrect

import (
	"iter"
	"math"

	"deedles.dev/ximage/geom"
)

const (
	// DefaultSegments is the number of segments used for each corner
	// arc when nothing else is specified.
	DefaultSegments = 16

	// MaxBorderSegments is the largest number of segments per corner
	// that Border uses, so that its uint16 indices can address every
	// vertex of the ring.
	MaxBorderSegments = (1<<16)/8 - 1
)

// Mode is the primitive assembly mode of a Mesh.
type Mode uint8

const (
	// TriangleStrip treats every three consecutive vertices as a
	// triangle.
	TriangleStrip Mode = iota

	// Triangles treats every three consecutive indices as a triangle.
	Triangles
)

func (m Mode) String() string {
	switch m {
	case TriangleStrip:
		return "triangle-strip"
	case Triangles:
		return "triangles"
	default:
		return "unknown"
	}
}

// A Mesh is a list of vertices ready for upload to a GPU. Indices are
// only used in Triangles mode.
type Mesh struct {
	Mode     Mode
	Vertices []geom.Point[float32]
	Indices  []uint16
}

// Empty reports whether the mesh would draw nothing.
func (m Mesh) Empty() bool {
	switch m.Mode {
	case Triangles:
		return len(m.Indices) < 3
	default:
		return len(m.Vertices) < 3
	}
}

// Triangles yields every triangle of the mesh. Triangles of a strip
// are reordered so that all of them share the same winding.
func (m Mesh) Triangles() iter.Seq[[3]geom.Point[float32]] {
	return func(yield func([3]geom.Point[float32]) bool) {
		v := m.Vertices
		switch m.Mode {
		case Triangles:
			for i := 0; i+2 < len(m.Indices); i += 3 {
				t := [3]geom.Point[float32]{v[m.Indices[i]], v[m.Indices[i+1]], v[m.Indices[i+2]]}
				if !yield(t) {
					return
				}
			}

		default:
			for i := 0; i+2 < len(v); i++ {
				t := [3]geom.Point[float32]{v[i], v[i+1], v[i+2]}
				if i%2 == 1 {
					t[0], t[1] = t[1], t[0]
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Tessellator turns rounded rectangles into meshes.
type Tessellator struct {
	// Segments is the number of line segments that approximate each
	// quarter-circle corner. Values below 1 are treated as 1. Border
	// uses at most MaxBorderSegments.
	Segments int

	// Adaptive lowers the number of segments for corners with a
	// radius smaller than Segments pixels.
	Adaptive bool
}

func (t Tessellator) segments() int {
	return max(t.Segments, 1)
}

// steps returns the number of arc segments to use for a corner of
// radius r.
func (t Tessellator) steps(r float64) int {
	n := t.segments()
	if !t.Adaptive || r >= float64(n) {
		return n
	}
	return int(math.Ceil(r))
}

// arc returns the center of the rounded corner c of a w by h
// rectangle with corner radius r along with the angle at which the
// corner's arc starts. Every arc sweeps a quarter turn clockwise.
func (c Corner) arc(w, h, r float64) (center geom.Point[float64], start float64) {
	switch c {
	case TopLeft:
		return geom.Pt(r, r), math.Pi
	case TopRight:
		return geom.Pt(w-r, r), 3 * math.Pi / 2
	case BottomRight:
		return geom.Pt(w-r, h-r), 0
	case BottomLeft:
		return geom.Pt(r, h-r), math.Pi / 2
	default:
		panic("invalid corner")
	}
}

// arcPoints calls yield for steps+1 points evenly spaced along the
// arc of corner c. A zero radius yields the exact corner.
func (c Corner) arcPoints(w, h, r float64, steps int, yield func(geom.Point[float64])) {
	center, start := c.arc(w, h, r)
	if steps <= 0 {
		yield(center)
		return
	}

	for i := 0; i <= steps; i++ {
		a := start + (math.Pi/2)*float64(i)/float64(steps)
		sin, cos := math.Sincos(a)
		yield(geom.Pt(center.X+r*cos, center.Y+r*sin))
	}
}

// Fill returns a mesh covering a size.X by size.Y rectangle with
// rounded corners. The mesh is a triangle strip that alternates
// between the center of the rectangle and successive points along the
// outline, closed by repeating the first outline point. A rectangle
// with a non-positive dimension yields an empty mesh.
func (t Tessellator) Fill(size geom.Point[float64], radii Radii) Mesh {
	mesh := Mesh{Mode: TriangleStrip}
	if degenerate(size) {
		return mesh
	}

	w, h := size.X, size.Y
	radii = radii.Clamp(size)
	clip := clipper(size)
	center := clip(geom.Pt(w/2, h/2))

	var n int
	for c := TopLeft; c <= BottomLeft; c++ {
		n += t.steps(radii[c]) + 1
	}
	mesh.Vertices = make([]geom.Point[float32], 0, 2*n+1)

	for c := TopLeft; c <= BottomLeft; c++ {
		r := radii[c]
		c.arcPoints(w, h, r, t.steps(r), func(p geom.Point[float64]) {
			mesh.Vertices = append(mesh.Vertices, center, clip(p))
		})
	}
	mesh.Vertices = append(mesh.Vertices, mesh.Vertices[1])

	return mesh
}

// Fill is shorthand for Tessellator{Segments: segments}.Fill(size, radii).
func Fill(size geom.Point[float64], radii Radii, segments int) Mesh {
	return Tessellator{Segments: segments}.Fill(size, radii)
}

// degenerate reports whether size has no area to draw into.
func degenerate(size geom.Point[float64]) bool {
	return !(size.X > 0) || !(size.Y > 0) || math.IsInf(size.X, 0) || math.IsInf(size.Y, 0)
}

// clipper returns a function that converts points to float32 while
// keeping them inside of the rectangle from the origin to size.
func clipper(size geom.Point[float64]) func(geom.Point[float64]) geom.Point[float32] {
	mx, my := float32(size.X), float32(size.Y)
	return func(p geom.Point[float64]) geom.Point[float32] {
		return geom.Pt(
			min(max(float32(p.X), 0), mx),
			min(max(float32(p.Y), 0), my),
		)
	}
}
