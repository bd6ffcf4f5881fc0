package flexrect

import "deedles.dev/ximage/geom"

// Border returns a mesh covering a ring of the given width along the
// inside of the outline of a rounded rectangle. The inner edge of the
// ring is a rounded rectangle inset by width whose radii are shrunk by
// width. The mesh uses the Triangles mode with at most
// MaxBorderSegments segments per corner.
func (t Tessellator) Border(size geom.Point[float64], radii Radii, width float64) Mesh {
	mesh := Mesh{Mode: Triangles}
	if degenerate(size) || !(width > 0) {
		return mesh
	}

	w, h := size.X, size.Y
	width = min(width, maxRadius(size))
	radii = radii.Clamp(size)
	inner := radii.Inset(width)
	iw, ih := w-2*width, h-2*width
	clip := clipper(size)
	t.Segments = min(t.segments(), MaxBorderSegments)

	for c := TopLeft; c <= BottomLeft; c++ {
		steps := t.steps(radii[c])

		var outer []geom.Point[float64]
		c.arcPoints(w, h, radii[c], steps, func(p geom.Point[float64]) {
			outer = append(outer, p)
		})

		// Inner arcs use the outer step count so that the two outlines
		// pair up point for point.
		i := 0
		c.arcPoints(iw, ih, inner[c], steps, func(p geom.Point[float64]) {
			op := clip(outer[i])
			ip := clip(geom.Pt(p.X+width, p.Y+width))
			i++

			if n := len(mesh.Vertices); n >= 2 && mesh.Vertices[n-2] == op && mesh.Vertices[n-1] == ip {
				return
			}
			mesh.Vertices = append(mesh.Vertices, op, ip)
		})
	}

	n := len(mesh.Vertices) / 2
	if n > 1 && mesh.Vertices[0] == mesh.Vertices[2*(n-1)] && mesh.Vertices[1] == mesh.Vertices[2*(n-1)+1] {
		mesh.Vertices = mesh.Vertices[:2*(n-1)]
		n--
	}
	if n < 2 {
		mesh.Vertices = nil
		return mesh
	}

	mesh.Indices = make([]uint16, 0, 6*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		po, pi := uint16(2*i), uint16(2*i+1)
		co, ci := uint16(2*j), uint16(2*j+1)
		mesh.Indices = append(mesh.Indices,
			po, co, pi,
			pi, co, ci,
		)
	}

	return mesh
}

// Border is shorthand for Tessellator{Segments: segments}.Border(size, radii, width).
func Border(size geom.Point[float64], radii Radii, width float64, segments int) Mesh {
	return Tessellator{Segments: segments}.Border(size, radii, width)
}
