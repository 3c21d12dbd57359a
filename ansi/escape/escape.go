// The closed vocabulary of escape sequences handled by this library: SGR
// attributes, cursor movement, erase commands, and device control, plus the
// sum type tying them together. Pure data with total encoders; decoding
// lives in the parse package.
package escape

import (
	"fmt"

	"github.com/hnimtadd/ansikit/ansi/sgr"
)

// Kind discriminates the four escape families.
type Kind uint8

const (
	KindSGR Kind = iota
	KindCursor
	KindErase
	KindDevice
)

// Escape is any escape sequence this library can represent. Kind selects
// which payload field is meaningful; the others are zero. Keeping it a flat
// comparable struct makes exhaustive switching cheap and equality exact.
type Escape struct {
	Kind   Kind
	SGR    sgr.Attribute
	Cursor CursorMove
	Erase  Erase
	Device DeviceControl
}

func NewSGR(attr sgr.Attribute) Escape {
	return Escape{Kind: KindSGR, SGR: attr}
}

func NewCursor(move CursorMove) Escape {
	return Escape{Kind: KindCursor, Cursor: move}
}

func NewErase(erase Erase) Escape {
	return Escape{Kind: KindErase, Erase: erase}
}

func NewDevice(device DeviceControl) Escape {
	return Escape{Kind: KindDevice, Device: device}
}

// Sequence returns the canonical byte sequence for this escape.
func (e Escape) Sequence() string {
	switch e.Kind {
	case KindSGR:
		return e.SGR.Code()
	case KindCursor:
		return e.Cursor.Sequence()
	case KindErase:
		return e.Erase.Sequence()
	case KindDevice:
		return e.Device.Sequence()
	default:
		return ""
	}
}

type CursorMoveType uint8

const (
	CursorMoveUp CursorMoveType = iota
	CursorMoveDown
	CursorMoveForward
	CursorMoveBackward
	CursorMoveNextLine
	CursorMovePreviousLine
	CursorMoveHorizontalAbsolute
	CursorMovePosition
)

// CursorMove is a relative or absolute cursor movement. N carries the count
// for the relative moves, Row/Col the coordinates for Position.
type CursorMove struct {
	Type     CursorMoveType
	N        uint16
	Row, Col uint16
}

func CursorUp(n uint16) CursorMove {
	return CursorMove{Type: CursorMoveUp, N: n}
}

func CursorDown(n uint16) CursorMove {
	return CursorMove{Type: CursorMoveDown, N: n}
}

func CursorForward(n uint16) CursorMove {
	return CursorMove{Type: CursorMoveForward, N: n}
}

func CursorBackward(n uint16) CursorMove {
	return CursorMove{Type: CursorMoveBackward, N: n}
}

func CursorNextLine(n uint16) CursorMove {
	return CursorMove{Type: CursorMoveNextLine, N: n}
}

func CursorPreviousLine(n uint16) CursorMove {
	return CursorMove{Type: CursorMovePreviousLine, N: n}
}

func CursorHorizontalAbsolute(n uint16) CursorMove {
	return CursorMove{Type: CursorMoveHorizontalAbsolute, N: n}
}

func CursorPosition(row, col uint16) CursorMove {
	return CursorMove{Type: CursorMovePosition, Row: row, Col: col}
}

// Sequence returns the canonical byte sequence for this movement.
func (m CursorMove) Sequence() string {
	switch m.Type {
	case CursorMoveUp:
		return fmt.Sprintf("\x1B[%dA", m.N)
	case CursorMoveDown:
		return fmt.Sprintf("\x1B[%dB", m.N)
	case CursorMoveForward:
		return fmt.Sprintf("\x1B[%dC", m.N)
	case CursorMoveBackward:
		return fmt.Sprintf("\x1B[%dD", m.N)
	case CursorMoveNextLine:
		return fmt.Sprintf("\x1B[%dE", m.N)
	case CursorMovePreviousLine:
		return fmt.Sprintf("\x1B[%dF", m.N)
	case CursorMoveHorizontalAbsolute:
		return fmt.Sprintf("\x1B[%dG", m.N)
	case CursorMovePosition:
		return fmt.Sprintf("\x1B[%d;%dH", m.Row, m.Col)
	default:
		return ""
	}
}

// EraseMode selects what part of the display or line is erased, relative to
// the cursor.
type EraseMode uint8

const (
	EraseModeToEnd EraseMode = iota
	EraseModeToStart
	EraseModeAll
)

type EraseTarget uint8

const (
	EraseTargetDisplay EraseTarget = iota
	EraseTargetLine
)

// Erase clears part or all of the display (CSI J) or line (CSI K).
type Erase struct {
	Target EraseTarget
	Mode   EraseMode
}

func EraseDisplay(mode EraseMode) Erase {
	return Erase{Target: EraseTargetDisplay, Mode: mode}
}

func EraseLine(mode EraseMode) Erase {
	return Erase{Target: EraseTargetLine, Mode: mode}
}

// Sequence returns the canonical byte sequence for this erase command.
func (e Erase) Sequence() string {
	final := byte('J')
	if e.Target == EraseTargetLine {
		final = 'K'
	}
	return fmt.Sprintf("\x1B[%d%c", e.Mode, final)
}

// DeviceControl is one of the fixed cursor-state toggles.
type DeviceControl uint8

const (
	DeviceSaveCursor DeviceControl = iota
	DeviceRestoreCursor
	DeviceHideCursor
	DeviceShowCursor
)

// Sequence returns the canonical byte sequence for this device control.
func (d DeviceControl) Sequence() string {
	switch d {
	case DeviceSaveCursor:
		return "\x1B[s"
	case DeviceRestoreCursor:
		return "\x1B[u"
	case DeviceHideCursor:
		return "\x1B[?25l"
	case DeviceShowCursor:
		return "\x1B[?25h"
	default:
		return ""
	}
}
