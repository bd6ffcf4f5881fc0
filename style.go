package main

import "image/color"

const (
	TitlePadding = 5
)

var (
	ColorBackground = color.NRGBA{0x77, 0x77, 0x77, 0xFF}
	ColorTitle      = color.NRGBA{0x3D, 0x7D, 0x42, 0xFF}
)
