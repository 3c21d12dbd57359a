package parse

import (
	"strings"

	"golang.org/x/text/transform"
)

const escByte = 0x1B

// Strip returns input with every CSI escape sequence removed. The output is
// byte-identical to Parse(input).Text but skips span and point bookkeeping.
//
// An ESC not followed by '[' is ordinary text, and an unterminated sequence
// swallows the rest of the input, matching the parser exactly.
func Strip(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); {
		if input[i] == escByte && i+1 < len(input) && input[i+1] == '[' {
			j := i + 2
			for j < len(input) && !isFinalByte(input[j]) {
				j++
			}
			if j >= len(input) {
				break
			}
			i = j + 1
			continue
		}
		b.WriteByte(input[i])
		i++
	}
	return b.String()
}

// Transformer strips CSI escape sequences from a byte stream. It implements
// transform.Transformer and is stateless: a sequence split across chunks is
// held back with ErrShortSrc until the terminator arrives.
type Transformer struct {
	transform.NopResetter
}

var _ transform.Transformer = Transformer{}

func (Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b == escByte {
			if nSrc+1 >= len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				// ESC as the very last byte is ordinary text.
			} else if src[nSrc+1] == '[' {
				j := nSrc + 2
				for j < len(src) && !isFinalByte(src[j]) {
					j++
				}
				if j >= len(src) {
					if !atEOF {
						return nDst, nSrc, transform.ErrShortSrc
					}
					// Unterminated at EOF: the tail is discarded.
					return nDst, len(src), nil
				}
				nSrc = j + 1
				continue
			}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
