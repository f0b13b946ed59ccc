package core

// Color is a foreground color for a screen cell.
// Frontends map it to ANSI codes or RGB.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGB returns an approximate 8-bit RGB triple for the color, used by
// frontends that draw pixels instead of terminal cells.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xcd, 0x31, 0x31
	case ColorGreen:
		return 0x2e, 0x9e, 0x4a
	case ColorYellow:
		return 0xe5, 0xc0, 0x2a
	case ColorBlue:
		return 0x24, 0x72, 0xc8
	case ColorMagenta:
		return 0xbc, 0x3f, 0xbc
	case ColorCyan:
		return 0x11, 0xa8, 0xcd
	case ColorWhite:
		return 0xe5, 0xe5, 0xe5
	case ColorBrightRed:
		return 0xf1, 0x4c, 0x4c
	case ColorBrightGreen:
		return 0x5c, 0xd8, 0x6b
	case ColorBrightYellow:
		return 0xf5, 0xf5, 0x43
	case ColorBrightBlue:
		return 0x3b, 0x8e, 0xea
	case ColorBrightMagenta:
		return 0xd6, 0x70, 0xd6
	case ColorBrightCyan:
		return 0x29, 0xb8, 0xdb
	case ColorBrightWhite:
		return 0xff, 0xff, 0xff
	case ColorOrange:
		return 0xff, 0x87, 0x00
	case ColorGray:
		return 0x8a, 0x8a, 0x8a
	default:
		return 0x20, 0x20, 0x20
	}
}
