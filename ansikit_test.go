package ansikit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hnimtadd/ansikit/ansi/color"
	"github.com/hnimtadd/ansikit/ansi/sgr"
)

func TestFormatText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		attrs    []sgr.Attribute
		expected string
	}{
		{
			name:     "bold",
			text:     "hi",
			attrs:    []sgr.Attribute{sgr.Bold},
			expected: "\x1B[1mhi\x1B[0m",
		},
		{
			name:     "bold red",
			text:     "hi",
			attrs:    []sgr.Attribute{sgr.Bold, sgr.Foreground(color.Named(color.NameRed))},
			expected: "\x1B[1m\x1B[31mhi\x1B[0m",
		},
		{
			name:     "truecolor background",
			text:     "x",
			attrs:    []sgr.Attribute{sgr.Background(color.FromRGB(1, 2, 3))},
			expected: "\x1B[48;2;1;2;3mx\x1B[0m",
		},
		{
			name:     "empty attribute list still resets",
			text:     "plain",
			attrs:    nil,
			expected: "plain\x1B[0m",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatText(tc.text, tc.attrs)
			assert.Equal(t, tc.expected, got)
			assert.True(t, strings.HasSuffix(got, sgr.Reset.Code()))
		})
	}
}

func TestFormatTextParseRoundTrip(t *testing.T) {
	attrs := []sgr.Attribute{sgr.Bold, sgr.Foreground(color.Named(color.NameRed))}
	result := Parse(FormatText("hi", attrs))
	assert.Equal(t, "hi", result.Text)
	assert.Len(t, result.Spans, 1)
	assert.Equal(t, 0, result.Spans[0].Start)
	assert.Equal(t, 2, result.Spans[0].End)
	assert.ElementsMatch(t, attrs, result.Spans[0].Attrs)
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "hi", Strip("\x1B[1m\x1B[31mhi\x1B[0m"))
	assert.Equal(t, "plain", Strip("plain"))
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "plain ascii", input: "abc", expected: 3},
		{name: "styled ascii", input: "\x1B[1mhi\x1B[0m", expected: 2},
		{name: "wide runes", input: "\x1B[31m世界\x1B[0m", expected: 4},
		{name: "only escapes", input: "\x1B[31m\x1B[0m", expected: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, VisibleWidth(tc.input))
		})
	}
}
