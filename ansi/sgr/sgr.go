// SGR (Select Graphic Rendition) attribute types, their canonical escape
// codes, and parameter-list decoding.
//
// This is implemented based on: https://vt100.net/docs/vt510-rm/SGR.html
package sgr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hnimtadd/ansikit/ansi/color"
)

type AttributeType uint8

// The first ten values mirror the SGR codes 0-9, so the discriminant of a
// boolean attribute is also its wire code. The three color slots follow;
// their position defines the canonical attribute order.
const (
	AttributeTypeReset AttributeType = iota
	AttributeTypeBold
	AttributeTypeFaint
	AttributeTypeItalic
	AttributeTypeUnderline
	AttributeTypeBlinkSlow
	AttributeTypeBlinkRapid
	AttributeTypeReverse
	AttributeTypeConceal
	AttributeTypeCrossedOut
	AttributeTypeForeground
	AttributeTypeBackground
	AttributeTypeUnderlineColor
)

// Attribute is a single SGR attribute. Color is meaningful only for the
// three slot types (Foreground, Background, UnderlineColor) and is zero
// otherwise, which keeps the struct comparable.
type Attribute struct {
	Type  AttributeType
	Color color.Color
}

var (
	Reset      = Attribute{Type: AttributeTypeReset}
	Bold       = Attribute{Type: AttributeTypeBold}
	Faint      = Attribute{Type: AttributeTypeFaint}
	Italic     = Attribute{Type: AttributeTypeItalic}
	Underline  = Attribute{Type: AttributeTypeUnderline}
	BlinkSlow  = Attribute{Type: AttributeTypeBlinkSlow}
	BlinkRapid = Attribute{Type: AttributeTypeBlinkRapid}
	Reverse    = Attribute{Type: AttributeTypeReverse}
	Conceal    = Attribute{Type: AttributeTypeConceal}
	CrossedOut = Attribute{Type: AttributeTypeCrossedOut}
)

// Foreground returns the attribute setting the foreground color slot.
func Foreground(c color.Color) Attribute {
	return Attribute{Type: AttributeTypeForeground, Color: c}
}

// Background returns the attribute setting the background color slot.
func Background(c color.Color) Attribute {
	return Attribute{Type: AttributeTypeBackground, Color: c}
}

// UnderlineColor returns the attribute setting the underline color slot.
func UnderlineColor(c color.Color) Attribute {
	return Attribute{Type: AttributeTypeUnderlineColor, Color: c}
}

// Compare defines the canonical total order over attributes: discriminant
// first, then color payload. Every place that compares or materializes
// attribute sets uses this order.
func (a Attribute) Compare(other Attribute) int {
	if a.Type != other.Type {
		return int(a.Type) - int(other.Type)
	}
	return a.Color.Compare(other.Color)
}

// Code returns the canonical escape sequence for this attribute.
//
// A named underline color has no SGR 58 short form and encodes to the empty
// string; only indexed and direct underline colors are representable.
func (a Attribute) Code() string {
	switch a.Type {
	case AttributeTypeReset,
		AttributeTypeBold,
		AttributeTypeFaint,
		AttributeTypeItalic,
		AttributeTypeUnderline,
		AttributeTypeBlinkSlow,
		AttributeTypeBlinkRapid,
		AttributeTypeReverse,
		AttributeTypeConceal,
		AttributeTypeCrossedOut:
		return fmt.Sprintf("\x1B[%dm", a.Type)
	case AttributeTypeForeground:
		return colorCode(a.Color, 30, 90, 38)
	case AttributeTypeBackground:
		return colorCode(a.Color, 40, 100, 48)
	case AttributeTypeUnderlineColor:
		if a.Color.Kind == color.KindNamed {
			return ""
		}
		return colorCode(a.Color, 0, 0, 58)
	default:
		return ""
	}
}

// colorCode encodes a color for one slot. named/bright are the bases of the
// 16 short forms, extended is the introducer of the 5;n and 2;r;g;b forms.
func colorCode(c color.Color, named, bright, extended int) string {
	switch c.Kind {
	case color.KindNamed:
		if c.Name < color.NameBrightBlack {
			return fmt.Sprintf("\x1B[%dm", named+int(c.Name))
		}
		return fmt.Sprintf("\x1B[%dm", bright+int(c.Name-color.NameBrightBlack))
	case color.KindIndexed:
		return fmt.Sprintf("\x1B[%d;5;%dm", extended, c.Index)
	default:
		return fmt.Sprintf("\x1B[%d;2;%d;%d;%dm", extended, c.RGB.R, c.RGB.G, c.RGB.B)
	}
}

// DecodeParams decodes the parameter substring of an SGR sequence (the text
// between "ESC[" and "m") into attributes, left to right.
//
// Segments are matched literally, so "07" is not Reverse. The extended color
// introducers 38/48/58 consume one mode segment and then one (mode 5) or
// three (mode 2) value segments; if the group is truncated or a value does
// not parse as a byte, the group yields nothing and the consumed segments
// are not reinterpreted. That lossy behavior is observable and deliberate.
func DecodeParams(params string) []Attribute {
	var segs []string
	for _, seg := range strings.Split(params, ";") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}

	var result []Attribute
	for i := 0; i < len(segs); i++ {
		switch seg := segs[i]; seg {
		case "0":
			result = append(result, Reset)
		case "1":
			result = append(result, Bold)
		case "2":
			result = append(result, Faint)
		case "3":
			result = append(result, Italic)
		case "4":
			result = append(result, Underline)
		case "5":
			result = append(result, BlinkSlow)
		case "6":
			result = append(result, BlinkRapid)
		case "7":
			result = append(result, Reverse)
		case "8":
			result = append(result, Conceal)
		case "9":
			result = append(result, CrossedOut)
		case "30", "31", "32", "33", "34", "35", "36", "37":
			result = append(result, Foreground(color.Named(color.Name(seg[1]-'0'))))
		case "90", "91", "92", "93", "94", "95", "96", "97":
			result = append(result, Foreground(color.Named(color.NameBrightBlack+color.Name(seg[1]-'0'))))
		case "40", "41", "42", "43", "44", "45", "46", "47":
			result = append(result, Background(color.Named(color.Name(seg[1]-'0'))))
		case "100", "101", "102", "103", "104", "105", "106", "107":
			result = append(result, Background(color.Named(color.NameBrightBlack+color.Name(seg[2]-'0'))))
		case "38", "48", "58":
			if c, ok := decodeExtendedColor(segs, &i); ok {
				switch seg {
				case "38":
					result = append(result, Foreground(c))
				case "48":
					result = append(result, Background(c))
				case "58":
					result = append(result, UnderlineColor(c))
				}
			}
		}
	}
	return result
}

// decodeExtendedColor consumes the mode and value segments following a
// 38/48/58 introducer at *i, advancing *i past everything it consumed.
func decodeExtendedColor(segs []string, i *int) (color.Color, bool) {
	next, ok := nextSegment(segs, i)
	if !ok {
		return color.Color{}, false
	}
	switch next {
	case "5":
		// 8-bit color: 38;5;<n>
		val, ok := nextSegment(segs, i)
		if !ok {
			return color.Color{}, false
		}
		idx, err := strconv.ParseUint(val, 10, 8)
		if err != nil {
			return color.Color{}, false
		}
		return color.Indexed(uint8(idx)), true
	case "2":
		// 24-bit color: 38;2;<r>;<g>;<b>. All three segments are consumed
		// even when an earlier one fails to parse.
		var rgb [3]uint8
		parsed := true
		for k := range rgb {
			val, ok := nextSegment(segs, i)
			if !ok {
				parsed = false
				continue
			}
			v, err := strconv.ParseUint(val, 10, 8)
			if err != nil {
				parsed = false
				continue
			}
			rgb[k] = uint8(v)
		}
		if !parsed {
			return color.Color{}, false
		}
		return color.FromRGB(rgb[0], rgb[1], rgb[2]), true
	default:
		// Unknown mode. The mode segment stays consumed.
		return color.Color{}, false
	}
}

func nextSegment(segs []string, i *int) (string, bool) {
	if *i+1 >= len(segs) {
		return "", false
	}
	*i++
	return segs[*i], true
}
