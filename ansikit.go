// Package ansikit generates and parses ANSI terminal escape sequences.
//
// The protocol model lives under ansi/ (color, sgr, escape), the decoder in
// ansi/parse, capability detection in capability. This package is a thin
// facade over those for the common cases: styling a piece of text, parsing
// previously styled text, and stripping or measuring it.
package ansikit

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hnimtadd/ansikit/ansi/parse"
	"github.com/hnimtadd/ansikit/ansi/sgr"
)

// FormatText wraps text in the escape codes for attrs and appends the Reset
// code. Reset is always appended, even for an empty attribute list, so
// composed output never leaks style into following content.
func FormatText(text string, attrs []sgr.Attribute) string {
	var b strings.Builder
	for _, attr := range attrs {
		b.WriteString(attr.Code())
	}
	b.WriteString(text)
	b.WriteString(sgr.Reset.Code())
	return b.String()
}

// Parse decodes input into cleaned text, style spans, and point events.
func Parse(input string) *parse.Result {
	return parse.Parse(input)
}

// Strip returns input with all escape sequences removed.
func Strip(input string) string {
	return parse.Strip(input)
}

// VisibleWidth returns the display-cell width of input after stripping
// escape sequences, accounting for wide and combining runes.
func VisibleWidth(input string) int {
	return runewidth.StringWidth(parse.Strip(input))
}
