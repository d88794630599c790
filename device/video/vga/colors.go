package vga

// Color is one of the 16 color indices supported in text mode.
type Color uint8

// The standard text mode palette.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	LightBrown
	White
)

// Attr is the color attribute byte stored in the high half of each
// framebuffer cell: foreground color in the low nibble, background color
// in the high nibble.
type Attr uint8

// MakeAttr packs a foreground and a background color into an attribute.
func MakeAttr(fg, bg Color) Attr {
	return Attr(uint8(fg) | uint8(bg)<<4)
}

// Fg returns the foreground color encoded in the attribute.
func (a Attr) Fg() Color {
	return Color(a & 0x0F)
}

// Bg returns the background color encoded in the attribute.
func (a Attr) Bg() Color {
	return Color(a >> 4)
}
