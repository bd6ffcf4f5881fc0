package util

import (
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"deedles.dev/ximage/geom"
)

func Flag[T flag.Value](name string, value T, usage string) T {
	flag.Var(value, name, usage)
	return value
}

type floatsFlag []float64

func (s floatsFlag) String() string {
	strs := make([]string, 0, len(s))
	for _, v := range s {
		strs = append(strs, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(strs, ",")
}

func (s *floatsFlag) Set(v string) error {
	vals, err := ParseFloats(v)
	if err != nil {
		return err
	}
	*s = vals
	return nil
}

// FloatsFlag defines a flag holding a comma-separated list of numbers.
func FloatsFlag(name string, value []float64, usage string) *[]float64 {
	return (*[]float64)(Flag(name, (*floatsFlag)(&value), usage))
}

// ParseFloats parses a comma-separated list of numbers. Empty
// elements are skipped.
func ParseFloats(v string) ([]float64, error) {
	var vals []float64
	for _, f := range strings.Split(v, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		p, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		vals = append(vals, p)
	}
	return vals, nil
}

var edgeNames = []struct {
	name string
	edge geom.Edges
}{
	{"top", geom.EdgeTop},
	{"bottom", geom.EdgeBottom},
	{"left", geom.EdgeLeft},
	{"right", geom.EdgeRight},
}

// ParseEdges parses a comma-separated list of edge names, such as
// "top,left,right".
func ParseEdges(v string) (edges geom.Edges, err error) {
outer:
	for _, name := range strings.Split(v, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		for _, e := range edgeNames {
			if e.name == name {
				edges |= e.edge
				continue outer
			}
		}
		return 0, fmt.Errorf("unknown edge %q", name)
	}
	return edges, nil
}

// FormatEdges is the inverse of ParseEdges.
func FormatEdges(edges geom.Edges) string {
	names := make([]string, 0, len(edgeNames))
	for _, e := range edgeNames {
		if edges&e.edge != 0 {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, ",")
}

type edgesFlag geom.Edges

func (e edgesFlag) String() string {
	return FormatEdges(geom.Edges(e))
}

func (e *edgesFlag) Set(v string) error {
	edges, err := ParseEdges(v)
	if err != nil {
		return err
	}
	*e = edgesFlag(edges)
	return nil
}

// EdgesFlag defines a flag holding a set of screen edges.
func EdgesFlag(name string, value geom.Edges, usage string) *geom.Edges {
	return (*geom.Edges)(Flag(name, (*edgesFlag)(&value), usage))
}

// ParseColor parses a color in #rrggbb or #rrggbbaa form. The leading
// # is optional.
func ParseColor(v string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if (len(h) != 6) && (len(h) != 8) {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", v)
	}
	if len(h) == 6 {
		h += "ff"
	}

	c, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", v, err)
	}
	return color.NRGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

type colorFlag color.NRGBA

func (c colorFlag) String() string {
	return FormatColor(color.NRGBA(c))
}

func (c *colorFlag) Set(v string) error {
	p, err := ParseColor(v)
	if err != nil {
		return err
	}
	*c = colorFlag(p)
	return nil
}

// ColorFlag defines a flag holding a hex color.
func ColorFlag(name string, value color.NRGBA, usage string) *color.NRGBA {
	return (*color.NRGBA)(Flag(name, (*colorFlag)(&value), usage))
}
