package textutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLineEnding indicates a line-ending name that is not recognized.
var ErrUnknownLineEnding = errors.New("unknown line ending")

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// ParseLineEnding parses a line-ending name ("lf", "crlf", "cr") or a
// literal line-break sequence into a LineEnding.
func ParseLineEnding(s string) (LineEnding, error) {
	switch s {
	case "lf", "LF", "\n":
		return LineEndingLF, nil
	case "crlf", "CRLF", "\r\n":
		return LineEndingCRLF, nil
	case "cr", "CR", "\r":
		return LineEndingCR, nil
	default:
		return LineEndingLF, fmt.Errorf("%w: %q", ErrUnknownLineEnding, s)
	}
}

// DetectLineEnding returns the style of the first line break found in
// content, defaulting to LF when content has no line breaks.
func DetectLineEnding(content string) LineEnding {
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				return LineEndingCRLF
			}
			return LineEndingCR
		case '\n':
			return LineEndingLF
		}
	}
	return LineEndingLF
}

// NormalizeEOL rewrites every recognized line break in content (\r\n, \r,
// or \n) to eol. Content without line breaks is returned unchanged.
func NormalizeEOL(content, eol string) string {
	// Collapse to LF first so a CRLF target cannot double-convert.
	s := strings.ReplaceAll(content, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if eol == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", eol)
}
