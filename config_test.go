package main

import (
	"image/color"
	"testing"

	"deedles.dev/ximage/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	bar, err := cfg.Bar()
	require.NoError(t, err)
	assert.Equal(t, "simbar", bar.Title)
	assert.Equal(t, "15:04", bar.Clock)
	assert.Equal(t, 32.0, bar.Height)
	assert.Equal(t, 6.0, bar.Margin)
	assert.Equal(t, 2.0, bar.BorderWidth)
	assert.Equal(t, geom.EdgeTop|geom.EdgeLeft|geom.EdgeRight, bar.Anchor)
	assert.Equal(t, []float64{12}, bar.Radius)
	assert.Equal(t, 16, bar.Segments)
	assert.Equal(t, color.NRGBA{0xEB, 0xFF, 0xEC, 0xFF}, bar.Color)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("SIMBAR_RADIUS", "4,8,0,2")
	t.Setenv("SIMBAR_ANCHOR", "bottom")
	t.Setenv("SIMBAR_COLOR", "#ff000080")
	t.Setenv("SIMBAR_SEGMENTS", "3")
	t.Setenv("SIMBAR_ADAPTIVE", "true")
	t.Setenv("SIMBAR_CLOCK", "15:04:05")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	bar, err := cfg.Bar()
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 8, 0, 2}, bar.Radius)
	assert.Equal(t, geom.EdgeBottom, bar.Anchor)
	assert.Equal(t, color.NRGBA{0xFF, 0, 0, 0x80}, bar.Color)
	assert.Equal(t, 3, bar.Segments)
	assert.True(t, bar.Adaptive)
	assert.Equal(t, "15:04:05", bar.Clock)
}

func TestConfigBarErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"Anchor", Config{Anchor: "middle", Color: "#000000", BorderColor: "#000000"}},
		{"Color", Config{Anchor: "top", Color: "red", BorderColor: "#000000"}},
		{"BorderColor", Config{Anchor: "top", Color: "#000000", BorderColor: "#12"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.cfg.Bar()
			assert.Error(t, err)
		})
	}
}

func TestBarBounds(t *testing.T) {
	out := geom.Rt(0.0, 0.0, 1000.0, 500.0)

	tests := []struct {
		name   string
		anchor geom.Edges
		want   geom.Rect[float64]
	}{
		{"Top", geom.EdgeTop | geom.EdgeLeft | geom.EdgeRight, geom.Rt(10.0, 10.0, 990.0, 40.0)},
		{"Bottom", geom.EdgeBottom | geom.EdgeLeft | geom.EdgeRight, geom.Rt(10.0, 460.0, 990.0, 490.0)},
		{"Left", geom.EdgeLeft | geom.EdgeTop | geom.EdgeBottom, geom.Rt(10.0, 10.0, 40.0, 490.0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bar := BarConfig{Height: 30, Margin: 10, Anchor: test.anchor}
			assert.Equal(t, test.want, bar.Bounds(out))
		})
	}
}

func TestBarBoundsTooSmall(t *testing.T) {
	bar := BarConfig{Height: 30, Margin: 10, Anchor: geom.EdgeTop | geom.EdgeLeft | geom.EdgeRight}
	b := bar.Bounds(geom.Rt(0.0, 0.0, 15.0, 15.0))
	assert.Zero(t, b.Dx())
	assert.Zero(t, b.Dy())

	b = bar.Bounds(geom.Rt(0.0, 0.0, 100.0, 25.0))
	assert.Equal(t, geom.Rt(10.0, 10.0, 90.0, 15.0), b)
}

func TestRadiusArgs(t *testing.T) {
	assert.Equal(t, []any{1.0, 2.5}, radiusArgs([]float64{1, 2.5}))
	assert.Empty(t, radiusArgs(nil))
}
