// Terminal capability detection. This is advisory only: callers may use it
// to decide which colors to emit, but nothing in the encoder or decoder
// consults it.
package capability

import (
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"
)

// Environment describes the ANSI capabilities of the current terminal.
type Environment struct {
	// SupportsANSI is true if escape sequences are rendered at all.
	SupportsANSI bool
	// SupportsTrueColor is true if 24-bit color is rendered.
	SupportsTrueColor bool
	// Supports8BitColor is true if the 256 color palette is rendered.
	Supports8BitColor bool
}

// Detect queries stdout and the process environment.
func Detect() Environment {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return detect(isTTY, os.Getenv)
}

func detect(isTTY bool, getenv func(string) string) Environment {
	termEnv := getenv("TERM")

	if runtime.GOOS == "windows" {
		// Windows 10+ consoles render ANSI when virtual terminal
		// processing is enabled; assume it is when attached to a tty.
		// Truecolor is known for Windows Terminal and VSCode.
		supportsANSI := isTTY
		trueColor := getenv("WT_SESSION") != "" ||
			getenv("TERM_PROGRAM") == "vscode" ||
			strings.Contains(termEnv, "xterm") ||
			strings.Contains(termEnv, "truecolor")
		return Environment{
			SupportsANSI:      supportsANSI,
			SupportsTrueColor: trueColor,
			Supports8BitColor: supportsANSI,
		}
	}

	colorTerm := getenv("COLORTERM")
	supportsANSI := isTTY && termEnv != "dumb" && termEnv != ""
	trueColor := colorTerm == "truecolor" ||
		colorTerm == "24bit" ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(termEnv, "24bit")
	return Environment{
		SupportsANSI:      supportsANSI,
		SupportsTrueColor: trueColor,
		Supports8BitColor: strings.Contains(termEnv, "256color") || trueColor,
	}
}
