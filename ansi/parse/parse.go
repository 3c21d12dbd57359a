// Single-pass decoder for text interleaved with ANSI escape sequences.
//
// The parser walks the input once, either consuming a recognized CSI
// sequence or copying one character to the cleaned text. SGR sequences feed
// a merge state machine that produces non-overlapping style spans over the
// cleaned text; cursor, erase and device sequences become point events.
// Malformed input is degraded, never surfaced: unterminated sequences,
// unknown parameter/final combinations and truncated color groups are
// stripped silently.
package parse

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hnimtadd/ansikit/ansi/escape"
	"github.com/hnimtadd/ansikit/ansi/sgr"
	"github.com/hnimtadd/ansikit/logger"
)

// Span is a half-open byte range [Start, End) over the cleaned text during
// which the active attribute set was constant. Attrs is in canonical order
// and never empty; Start < End always holds.
type Span struct {
	Start int
	End   int
	Attrs []sgr.Attribute
}

// Point is a single non-SGR escape anchored to a byte offset in the cleaned
// text.
type Point struct {
	Pos  int
	Code escape.Escape
}

// Result is the full decode output. Spans are ordered by ascending start and
// pairwise non-overlapping; Points are in encounter order, which is also
// ascending offset order. The result holds no references into the input.
type Result struct {
	Text   string
	Spans  []Span
	Points []Point
}

type Parser struct {
	input     string
	pos       int
	outputPos int

	logger logger.Logger
}

type Options struct {
	// Logger receives debug records for sequences the parser strips without
	// classifying. Defaults to a discard logger.
	Logger logger.Logger
}

func NewParser(input string, opts Options) *Parser {
	log := opts.Logger
	if log == nil {
		log = logger.Discard
	}
	return &Parser{
		input:  input,
		logger: log,
	}
}

// Parse decodes input with default options.
func Parse(input string) *Result {
	return NewParser(input, Options{}).Parse()
}

// Parse runs the scan. It never fails: any input yields a well-formed
// Result.
func (p *Parser) Parse() *Result {
	var cleaned strings.Builder
	cleaned.Grow(len(p.input))

	var spans []Span
	var points []Point

	active := sgr.NewSet()
	lastEmitted := sgr.NewSet()
	spanStart := -1

	for p.pos < len(p.input) {
		escapes, consumed, ok := p.nextEscapes()
		if !ok {
			// Copy one character verbatim. Offsets advance by encoded size
			// so span and point positions are byte offsets into Text.
			_, size := utf8.DecodeRuneInString(p.input[p.pos:])
			cleaned.WriteString(p.input[p.pos : p.pos+size])
			p.pos += size
			p.outputPos += size
			continue
		}

		for _, esc := range escapes {
			if esc.Kind != escape.KindSGR {
				points = append(points, Point{Pos: p.outputPos, Code: esc})
				continue
			}

			if esc.SGR.Type == sgr.AttributeTypeReset {
				if spanStart >= 0 {
					if !lastEmitted.Empty() {
						spans = append(spans, Span{
							Start: spanStart,
							End:   p.outputPos,
							Attrs: lastEmitted.Attributes(),
						})
					}
					spanStart = -1
				}
				active.Clear()
			} else {
				active.Apply(esc.SGR)
			}

			// A boundary exists wherever the active set differs from the
			// one last emitted.
			if !active.Equals(lastEmitted) {
				if spanStart >= 0 {
					if !lastEmitted.Empty() {
						spans = append(spans, Span{
							Start: spanStart,
							End:   p.outputPos,
							Attrs: lastEmitted.Attributes(),
						})
					}
					spanStart = -1
				}
				if !active.Empty() {
					spanStart = p.outputPos
				}
				lastEmitted = active.Clone()
			}
		}
		p.pos += consumed
	}

	// Close a span left open at input end.
	if spanStart >= 0 && !lastEmitted.Empty() {
		spans = append(spans, Span{
			Start: spanStart,
			End:   p.outputPos,
			Attrs: lastEmitted.Attributes(),
		})
	}

	// Adjacent SGR changes with no intervening text record empty ranges;
	// drop them.
	spans = slices.DeleteFunc(spans, func(s Span) bool {
		return s.Start == s.End
	})
	if len(spans) == 0 {
		spans = nil
	}

	return &Result{
		Text:   cleaned.String(),
		Spans:  spans,
		Points: points,
	}
}

// isFinalByte reports whether b terminates a CSI sequence.
func isFinalByte(b byte) bool {
	return b >= 0x40 && b <= 0x7E
}

// nextEscapes recognizes a CSI sequence at the current position. ok is false
// when the position does not start a sequence. A recognized-but-unclassified
// sequence returns ok with zero escapes: it is stripped and nothing more.
func (p *Parser) nextEscapes() (escapes []escape.Escape, consumed int, ok bool) {
	in := p.input
	if p.pos+2 > len(in) || in[p.pos] != 0x1B || in[p.pos+1] != '[' {
		return nil, 0, false
	}

	end := p.pos + 2
	for end < len(in) && !isFinalByte(in[end]) {
		end++
	}
	if end >= len(in) {
		// No terminator before input end: discard the whole tail. This
		// keeps the scan position in sync and guarantees termination.
		p.logger.Debug("unterminated CSI sequence", "pos", p.pos)
		return nil, len(in) - p.pos, true
	}

	final := in[end]
	params := in[p.pos+2 : end]
	consumed = end + 1 - p.pos

	if final == 'm' {
		for _, attr := range sgr.DecodeParams(params) {
			escapes = append(escapes, escape.NewSGR(attr))
		}
		return escapes, consumed, true
	}
	if move, ok := decodeCursor(params, final); ok {
		return []escape.Escape{escape.NewCursor(move)}, consumed, true
	}
	if erase, ok := decodeErase(params, final); ok {
		return []escape.Escape{escape.NewErase(erase)}, consumed, true
	}
	if device, ok := decodeDevice(params, final); ok {
		return []escape.Escape{escape.NewDevice(device)}, consumed, true
	}
	p.logger.Debug("unrecognized CSI sequence",
		"params", params, "final", string(final))
	return nil, consumed, true
}

// parseCount parses a single numeric parameter, defaulting to 1 when it is
// absent or unparsable.
func parseCount(s string) uint16 {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 1
	}
	return uint16(n)
}

func decodeCursor(params string, final byte) (escape.CursorMove, bool) {
	switch final {
	case 'A':
		return escape.CursorUp(parseCount(params)), true
	case 'B':
		return escape.CursorDown(parseCount(params)), true
	case 'C':
		return escape.CursorForward(parseCount(params)), true
	case 'D':
		return escape.CursorBackward(parseCount(params)), true
	case 'E':
		return escape.CursorNextLine(parseCount(params)), true
	case 'F':
		return escape.CursorPreviousLine(parseCount(params)), true
	case 'G':
		return escape.CursorHorizontalAbsolute(parseCount(params)), true
	case 'H', 'f':
		row, col := uint16(1), uint16(1)
		parts := strings.Split(params, ";")
		if len(parts) > 0 {
			row = parseCount(parts[0])
		}
		if len(parts) > 1 {
			col = parseCount(parts[1])
		}
		return escape.CursorPosition(row, col), true
	default:
		return escape.CursorMove{}, false
	}
}

func decodeErase(params string, final byte) (escape.Erase, bool) {
	var mode escape.EraseMode
	switch params {
	case "", "0":
		mode = escape.EraseModeToEnd
	case "1":
		mode = escape.EraseModeToStart
	case "2":
		mode = escape.EraseModeAll
	default:
		return escape.Erase{}, false
	}
	switch final {
	case 'J':
		return escape.EraseDisplay(mode), true
	case 'K':
		return escape.EraseLine(mode), true
	default:
		return escape.Erase{}, false
	}
}

func decodeDevice(params string, final byte) (escape.DeviceControl, bool) {
	switch {
	case params == "" && final == 's':
		return escape.DeviceSaveCursor, true
	case params == "" && final == 'u':
		return escape.DeviceRestoreCursor, true
	case params == "?25" && final == 'l':
		return escape.DeviceHideCursor, true
	case params == "?25" && final == 'h':
		return escape.DeviceShowCursor, true
	default:
		return 0, false
	}
}
