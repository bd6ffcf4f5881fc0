package flexrect

import (
	"image"
	"image/color"

	"deedles.dev/ximage/geom"
	"golang.org/x/image/draw"
)

// Property identifies a property of a Rectangle.
type Property int

const (
	PropertySize Property = iota
	PropertyRadius
	PropertySegments
	PropertyColor
	PropertyBorderColor
	PropertyBorderWidth
)

func (p Property) String() string {
	switch p {
	case PropertySize:
		return "size"
	case PropertyRadius:
		return "radius"
	case PropertySegments:
		return "segments"
	case PropertyColor:
		return "color"
	case PropertyBorderColor:
		return "borderColor"
	case PropertyBorderWidth:
		return "borderWidth"
	default:
		return "unknown"
	}
}

// geometric reports whether a change to p invalidates the geometry
// of a Rectangle.
func (p Property) geometric() bool {
	switch p {
	case PropertySize, PropertyRadius, PropertySegments, PropertyBorderWidth:
		return true
	default:
		return false
	}
}

// An Observer is notified whenever a property of a Rectangle changes.
type Observer interface {
	PropertyChanged(r *Rectangle, p Property)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(r *Rectangle, p Property)

func (f ObserverFunc) PropertyChanged(r *Rectangle, p Property) {
	f(r, p)
}

// Rectangle is a rounded rectangle with a fill color and an optional
// border. It caches its meshes and only regenerates them when a
// property that affects them changes.
//
// The zero value is not ready for use. Use NewRectangle instead.
type Rectangle struct {
	size        geom.Point[float64]
	radii       Radii
	tess        Tessellator
	color       color.Color
	borderColor color.Color
	borderWidth float64

	observers []Observer

	fill, border Mesh
	stale        bool
	dirty        bool
}

// NewRectangle returns a transparent, square-cornered Rectangle of
// zero size with a black, zero width border.
func NewRectangle() *Rectangle {
	return &Rectangle{
		tess:        Tessellator{Segments: DefaultSegments},
		color:       color.Transparent,
		borderColor: color.Black,
		stale:       true,
		dirty:       true,
	}
}

// Observe registers o to be notified of property changes.
func (r *Rectangle) Observe(o Observer) {
	r.observers = append(r.observers, o)
}

func (r *Rectangle) changed(p Property) {
	r.dirty = true
	if p.geometric() {
		r.stale = true
	}
	for _, o := range r.observers {
		o.PropertyChanged(r, p)
	}
}

func (r *Rectangle) Size() geom.Point[float64] {
	return r.size
}

// SetSize sets the size of the rectangle. Negative dimensions are
// treated as zero. It returns true if the size changed.
func (r *Rectangle) SetSize(size geom.Point[float64]) bool {
	size = geom.Pt(nonNegative(size.X), nonNegative(size.Y))
	if size == r.size {
		return false
	}

	r.size = size
	r.changed(PropertySize)
	return true
}

// Radius returns the radii as they were set, before clamping.
func (r *Rectangle) Radius() Radii {
	return r.radii
}

// Radii returns the radii clamped to the current size.
func (r *Rectangle) Radii() Radii {
	return r.radii.Clamp(r.size)
}

// SetRadius sets the corner radii from a list of values. See
// ParseRadii for details. It returns true if the parsed radii differ
// from the previous ones.
func (r *Rectangle) SetRadius(vals ...any) bool {
	radii := ParseRadii(vals...)
	if radii == r.radii {
		return false
	}

	r.radii = radii
	r.changed(PropertyRadius)
	return true
}

func (r *Rectangle) Segments() int {
	return r.tess.segments()
}

// SetSegments sets the number of segments per corner arc. It returns
// true if the effective number of segments changed.
func (r *Rectangle) SetSegments(n int) bool {
	n = max(n, 1)
	if n == r.tess.Segments {
		return false
	}

	r.tess.Segments = n
	r.changed(PropertySegments)
	return true
}

// SetAdaptive enables or disables adaptive segment reduction for small
// corners. It returns true if the setting changed.
func (r *Rectangle) SetAdaptive(adaptive bool) bool {
	if adaptive == r.tess.Adaptive {
		return false
	}

	r.tess.Adaptive = adaptive
	r.changed(PropertySegments)
	return true
}

func (r *Rectangle) Adaptive() bool {
	return r.tess.Adaptive
}

func (r *Rectangle) Color() color.Color {
	return r.color
}

func (r *Rectangle) SetColor(c color.Color) bool {
	if sameColor(c, r.color) {
		return false
	}

	r.color = c
	r.changed(PropertyColor)
	return true
}

func (r *Rectangle) BorderColor() color.Color {
	return r.borderColor
}

func (r *Rectangle) SetBorderColor(c color.Color) bool {
	if sameColor(c, r.borderColor) {
		return false
	}

	r.borderColor = c
	r.changed(PropertyBorderColor)
	return true
}

func (r *Rectangle) BorderWidth() float64 {
	return r.borderWidth
}

// SetBorderWidth sets the width of the border. Negative widths are
// treated as zero.
func (r *Rectangle) SetBorderWidth(w float64) bool {
	w = nonNegative(w)
	if w == r.borderWidth {
		return false
	}

	r.borderWidth = w
	r.changed(PropertyBorderWidth)
	return true
}

// Dirty reports whether any property has changed since the last call
// to Draw.
func (r *Rectangle) Dirty() bool {
	return r.dirty
}

// Geometry returns the fill and border meshes of the rectangle,
// regenerating them if necessary. The fill is empty if the fill color
// is fully transparent and the border is empty if it has no width or
// is fully transparent.
func (r *Rectangle) Geometry() (fill, border Mesh) {
	if r.stale {
		r.fill = r.tess.Fill(r.size, r.radii)
		r.border = r.tess.Border(r.size, r.radii, r.borderWidth)
		r.stale = false
	}

	if visible(r.color) {
		fill = r.fill
	}
	if visible(r.borderColor) {
		border = r.border
	}
	return fill, border
}

// Bounds returns the pixel bounds that Draw covers when drawing at the
// origin.
func (r *Rectangle) Bounds() image.Rectangle {
	return image.Rectangle{Max: pixelSize(r.size.X, r.size.Y)}
}

// Draw composites the rectangle onto dst with its top-left corner at
// at. The fill is drawn first, then the border over it.
func (r *Rectangle) Draw(dst draw.Image, at image.Point) {
	defer func() { r.dirty = false }()

	fill, border := r.Geometry()
	b := r.Bounds()
	if b.Empty() {
		return
	}

	to := b.Add(at)
	if !fill.Empty() {
		mask := Rasterize(fill, b.Size())
		draw.DrawMask(dst, to, image.NewUniform(r.color), image.Point{}, mask, image.Point{}, draw.Over)
	}
	if !border.Empty() {
		mask := Rasterize(border, b.Size())
		draw.DrawMask(dst, to, image.NewUniform(r.borderColor), image.Point{}, mask, image.Point{}, draw.Over)
	}
}

func nonNegative(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}

func visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a > 0
}

func sameColor(c1, c2 color.Color) bool {
	if (c1 == nil) || (c2 == nil) {
		return c1 == c2
	}

	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()
	return (r1 == r2) && (g1 == g2) && (b1 == b2) && (a1 == a2)
}
