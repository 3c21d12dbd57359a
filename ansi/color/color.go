// Color values as they appear in SGR sequences: the 16 named colors,
// 8-bit palette indexes, and 24-bit direct color.
package color

import "github.com/hnimtadd/ansikit/ansi/utils"

// RGB is a struct that represents an RGB color.
type RGB struct {
	R, G, B uint8
}

// Name is one of the 16 named colors addressable with the short SGR forms
// (30-37/90-97 foreground, 40-47/100-107 background).
type Name uint8

const (
	NameBlack Name = iota
	NameRed
	NameGreen
	NameYellow
	NameBlue
	NameMagenta
	NameCyan
	NameWhite
	NameBrightBlack
	NameBrightRed
	NameBrightGreen
	NameBrightYellow
	NameBrightBlue
	NameBrightMagenta
	NameBrightCyan
	NameBrightWhite
)

func (n Name) String() string {
	switch n {
	case NameBlack:
		return "black"
	case NameRed:
		return "red"
	case NameGreen:
		return "green"
	case NameYellow:
		return "yellow"
	case NameBlue:
		return "blue"
	case NameMagenta:
		return "magenta"
	case NameCyan:
		return "cyan"
	case NameWhite:
		return "white"
	case NameBrightBlack:
		return "bright-black"
	case NameBrightRed:
		return "bright-red"
	case NameBrightGreen:
		return "bright-green"
	case NameBrightYellow:
		return "bright-yellow"
	case NameBrightBlue:
		return "bright-blue"
	case NameBrightMagenta:
		return "bright-magenta"
	case NameBrightCyan:
		return "bright-cyan"
	case NameBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}

// DefaultRGB returns the palette value this library assigns to a named color
// when no terminal palette is available.
func (n Name) DefaultRGB() RGB {
	switch n {
	case NameBlack:
		return RGB{0x1D, 0x1F, 0x21}
	case NameRed:
		return RGB{0xCC, 0x66, 0x66}
	case NameGreen:
		return RGB{0xB5, 0xBD, 0x68}
	case NameYellow:
		return RGB{0xF0, 0xC6, 0x74}
	case NameBlue:
		return RGB{0x81, 0xA2, 0xBE}
	case NameMagenta:
		return RGB{0xB2, 0x94, 0xC7}
	case NameCyan:
		return RGB{0x8C, 0xC3, 0xE9}
	case NameWhite:
		return RGB{0xC5, 0xC8, 0xC6}
	case NameBrightBlack:
		return RGB{0x7C, 0x7C, 0x7C}
	case NameBrightRed:
		return RGB{0xFF, 0x8F, 0x8F}
	case NameBrightGreen:
		return RGB{0xB5, 0xBD, 0x68}
	case NameBrightYellow:
		return RGB{0xF0, 0xC6, 0x74}
	case NameBrightBlue:
		return RGB{0x81, 0xA2, 0xBE}
	case NameBrightMagenta:
		return RGB{0xB2, 0x94, 0xC7}
	case NameBrightCyan:
		return RGB{0x8C, 0xC3, 0xE9}
	case NameBrightWhite:
		return RGB{0xFF, 0xFF, 0xFF}
	default:
		return RGB{0, 0, 0}
	}
}

// Kind discriminates the three color representations.
type Kind uint8

const (
	KindNamed Kind = iota
	KindIndexed
	KindRGB
)

// Color is an immutable color value. Exactly one representation is active,
// selected by Kind; the other fields are zero.
type Color struct {
	Kind  Kind
	Name  Name
	Index uint8
	RGB   RGB
}

// Named returns one of the 16 named colors.
func Named(n Name) Color {
	return Color{Kind: KindNamed, Name: n}
}

// Indexed returns an 8-bit palette color (0-255).
func Indexed(idx uint8) Color {
	return Color{Kind: KindIndexed, Index: idx}
}

// FromRGB returns a 24-bit direct color.
func FromRGB(r, g, b uint8) Color {
	return Color{Kind: KindRGB, RGB: RGB{R: r, G: g, B: b}}
}

// Compare defines the canonical total order over colors: kind first, then
// the payload of that kind. This order is part of the attribute-set ordering
// and must stay stable.
func (c Color) Compare(other Color) int {
	if c.Kind != other.Kind {
		return int(c.Kind) - int(other.Kind)
	}
	switch c.Kind {
	case KindNamed:
		return int(c.Name) - int(other.Name)
	case KindIndexed:
		return int(c.Index) - int(other.Index)
	default:
		if c.RGB.R != other.RGB.R {
			return int(c.RGB.R) - int(other.RGB.R)
		}
		if c.RGB.G != other.RGB.G {
			return int(c.RGB.G) - int(other.RGB.G)
		}
		return int(c.RGB.B) - int(other.RGB.B)
	}
}

// Resolve returns the RGB value of this color under the given palette.
// Named colors resolve through their palette slot, indexed colors through
// the table, direct colors are returned as-is.
func (c Color) Resolve(p *Palette) RGB {
	switch c.Kind {
	case KindNamed:
		return p[c.Name]
	case KindIndexed:
		return p[c.Index]
	default:
		return c.RGB
	}
}

// Palette is the 256 color palette.
type Palette [256]RGB

// DefaultPalette is the standard xterm-style palette: 16 named values,
// a 6x6x6 color cube, and a 24-step gray ramp.
var DefaultPalette = func() Palette {
	var result Palette

	// Named values:
	var i int
	for ; i < 16; i++ {
		result[i] = Name(i).DefaultRGB()
	}

	// Cube
	utils.Assert(i == 16)
	var r, g, b uint8
	for r = 0; r < 6; r++ {
		for g = 0; g < 6; g++ {
			for b = 0; b < 6; b++ {
				rgb := RGB{}
				if r > 0 {
					rgb.R = r*40 + 55
				}
				if g > 0 {
					rgb.G = g*40 + 55
				}
				if b > 0 {
					rgb.B = b*40 + 55
				}
				result[i] = rgb
				i++
			}
		}
	}

	// Gray ramp
	utils.Assert(i == 232) // 16+6*6*6
	for ; i < 256; i++ {
		value := uint8((i-232)*10 + 8)
		result[i] = RGB{value, value, value}
	}

	return result
}()
