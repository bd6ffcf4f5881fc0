// Package drm contains pixel format codes as understood by wlroots.
package drm

// Format is a DRM fourcc pixel format code.
type Format uint32

// Fourcc builds a format code from its four characters.
func Fourcc(a, b, c, d byte) Format {
	return Format(a) | (Format(b) << 8) | (Format(c) << 16) | (Format(d) << 24)
}

const (
	FormatARGB8888 Format = 'A' | ('R' << 8) | ('2' << 16) | ('4' << 24)
	FormatRGBA8888 Format = 'R' | ('A' << 8) | ('2' << 16) | ('4' << 24)
	FormatABGR8888 Format = 'A' | ('B' << 8) | ('2' << 16) | ('4' << 24)

	FormatBigEndian Format = 1 << 31
)

func (f Format) String() string {
	var be string
	if f&FormatBigEndian != 0 {
		be = " (big-endian)"
		f &^= FormatBigEndian
	}
	return string([]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)}) + be
}
