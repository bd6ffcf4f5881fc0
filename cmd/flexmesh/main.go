// flexmesh builds the geometry of a rounded rectangle, prints a
// summary of it, and optionally renders it to a PNG.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"deedles.dev/simbar/flexrect"
	"deedles.dev/simbar/internal/util"
	"deedles.dev/ximage/geom"
	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
)

type Args struct {
	Width       float64   `arg:"positional,required" help:"width of the rectangle"`
	Height      float64   `arg:"positional,required" help:"height of the rectangle"`
	Radius      []float64 `arg:"-r,--radius" help:"corner radii: one value for all corners or top-left top-right bottom-right bottom-left"`
	Segments    int       `arg:"-n,--segments" default:"16" help:"segments per rounded corner"`
	Adaptive    bool      `arg:"-a,--adaptive" help:"use fewer segments for small corners"`
	Border      float64   `arg:"-b,--border" help:"border width"`
	Color       string    `arg:"--color" default:"#ffffff" help:"fill color"`
	BorderColor string    `arg:"--border-color" default:"#000000" help:"border color"`
	Out         string    `arg:"-o,--out" help:"write the rendered rectangle to this PNG file"`
	Verbose     bool      `arg:"-v,--verbose" help:"enable debug logging"`
}

func (Args) Description() string {
	return "flexmesh builds the triangle mesh of a rounded rectangle."
}

// build creates a Rectangle from the arguments.
func build(args Args) (*flexrect.Rectangle, error) {
	fill, err := util.ParseColor(args.Color)
	if err != nil {
		return nil, fmt.Errorf("parse fill color: %w", err)
	}
	border, err := util.ParseColor(args.BorderColor)
	if err != nil {
		return nil, fmt.Errorf("parse border color: %w", err)
	}

	radius := make([]any, 0, len(args.Radius))
	for _, r := range args.Radius {
		radius = append(radius, r)
	}

	r := flexrect.NewRectangle()
	r.Observe(flexrect.ObserverFunc(func(r *flexrect.Rectangle, p flexrect.Property) {
		slog.Debug("property changed", "property", p)
	}))
	r.SetSize(geom.Pt(args.Width, args.Height))
	r.SetRadius(radius...)
	r.SetSegments(args.Segments)
	r.SetAdaptive(args.Adaptive)
	r.SetColor(fill)
	r.SetBorderColor(border)
	r.SetBorderWidth(args.Border)
	return r, nil
}

func countTriangles(m flexrect.Mesh) (n int) {
	for range m.Triangles() {
		n++
	}
	return n
}

// summarize writes a human-readable description of the geometry of r
// to w.
func summarize(w io.Writer, r *flexrect.Rectangle) {
	key := color.New(color.FgCyan, color.Bold).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	size := r.Size()
	fmt.Fprintf(w, "%v %vx%v\n", key("size:"), size.X, size.Y)

	radii := r.Radii()
	fmt.Fprintf(w, "%v", key("radii:"))
	for c := flexrect.TopLeft; c <= flexrect.BottomLeft; c++ {
		fmt.Fprintf(w, " %v=%v", c, radii.Get(c))
	}
	fmt.Fprintln(w)
	if radii != r.Radius() {
		fmt.Fprintf(w, "%v\n", warn("radii were clamped to fit the rectangle"))
	}

	fill, border := r.Geometry()
	if fill.Empty() {
		fmt.Fprintf(w, "%v %v\n", key("fill:"), warn("empty"))
	} else {
		fmt.Fprintf(w, "%v %v, %v vertices, %v triangles\n", key("fill:"), fill.Mode, len(fill.Vertices), countTriangles(fill))
	}
	if border.Empty() {
		fmt.Fprintf(w, "%v %v\n", key("border:"), warn("none"))
	} else {
		fmt.Fprintf(w, "%v %v, %v vertices, %v indices\n", key("border:"), border.Mode, len(border.Vertices), len(border.Indices))
	}
}

// writePNG renders r and writes it to the file at path.
func writePNG(path string, r *flexrect.Rectangle) (err error) {
	b := r.Bounds()
	if b.Empty() {
		return fmt.Errorf("rectangle of size %v is empty", r.Size())
	}

	img := image.NewRGBA(b)
	r.Draw(img, b.Min)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		cerr := file.Close()
		if (cerr != nil) && (err == nil) {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	err = png.Encode(file, img)
	if err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

func run(args Args) error {
	r, err := build(args)
	if err != nil {
		return err
	}

	summarize(os.Stdout, r)

	if args.Out == "" {
		return nil
	}
	err = writePNG(args.Out, r)
	if err != nil {
		return err
	}
	slog.Info("wrote image", "path", args.Out, "bounds", r.Bounds())
	return nil
}

func main() {
	var args Args
	arg.MustParse(&args)

	level := slog.LevelInfo
	if args.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := run(args)
	if err != nil {
		slog.Error("failed", "err", err)
		os.Exit(1)
	}
}
