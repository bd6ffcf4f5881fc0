package flexrect

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"deedles.dev/ximage/geom"
)

// Corner identifies one corner of a rectangle. Corners are ordered
// clockwise starting from the top left.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return "Corner(" + strconv.Itoa(int(c)) + ")"
	}
}

// Radii are the radii of the four corners of a rectangle, indexed by
// Corner.
type Radii [4]float64

// Uniform returns Radii with r at every corner.
func Uniform(r float64) Radii {
	return ParseRadii(r)
}

// ParseRadii builds Radii from a list of values in the order top
// left, top right, bottom right, bottom left. A single value applies
// to all four corners. Otherwise, values are positional and missing
// corners are left square. Values that are not numbers, or that are
// negative, are treated as zero.
func ParseRadii(vals ...any) (r Radii) {
	if len(vals) == 1 {
		v := radiusValue(vals[0])
		return Radii{v, v, v, v}
	}

	for i := range min(len(vals), len(r)) {
		r[i] = radiusValue(vals[i])
	}
	return r
}

func radiusValue(v any) float64 {
	var f float64
	switch v := v.(type) {
	case nil:
		return 0
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = p
	default:
		rv := reflect.ValueOf(v)
		switch {
		case rv.CanFloat():
			f = rv.Float()
		case rv.CanInt():
			f = float64(rv.Int())
		case rv.CanUint():
			f = float64(rv.Uint())
		default:
			return 0
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// Clamp limits each radius to half of the smaller dimension of size
// so that adjacent arcs can never overlap. A size with a
// non-positive dimension clamps every radius to zero.
func (r Radii) Clamp(size geom.Point[float64]) Radii {
	m := maxRadius(size)
	for i, v := range r {
		r[i] = min(max(v, 0), m)
		if math.IsNaN(v) {
			r[i] = 0
		}
	}
	return r
}

func maxRadius(size geom.Point[float64]) float64 {
	if degenerate(size) {
		return 0
	}
	return min(size.X, size.Y) / 2
}

// Get returns the radius of corner c.
func (r Radii) Get(c Corner) float64 {
	return r[c]
}

// Inset returns the radii shrunk by d, never going below zero.
func (r Radii) Inset(d float64) Radii {
	for i, v := range r {
		r[i] = max(v-d, 0)
	}
	return r
}
