package config

import (
	"fmt"
	"strings"

	"github.com/dshills/scribe/printer"
	"github.com/dshills/scribe/textutil"
)

// Indentation styles.
const (
	IndentSpaces = "spaces"
	IndentTabs   = "tabs"
)

// Profile describes the printing style for one session.
type Profile struct {
	// IndentStyle is "spaces" or "tabs".
	IndentStyle string `toml:"indent_style" yaml:"indent_style"`

	// IndentSize is the number of indent characters per level.
	IndentSize int `toml:"indent_size" yaml:"indent_size"`

	// EndOfLine is the line terminator name: "lf", "crlf", or "cr".
	EndOfLine string `toml:"end_of_line" yaml:"end_of_line"`

	// TabWidth is the tab stop width for display-column measurement.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
}

// Default returns the default profile: four-space indentation, LF line
// endings, tab width 4.
func Default() Profile {
	return Profile{
		IndentStyle: IndentSpaces,
		IndentSize:  4,
		EndOfLine:   "lf",
		TabWidth:    4,
	}
}

// Validate checks that every field holds a usable value.
func (p Profile) Validate() error {
	switch p.IndentStyle {
	case IndentSpaces, IndentTabs:
	default:
		return fmt.Errorf("%w: indent style %q", ErrInvalidProfile, p.IndentStyle)
	}
	if p.IndentSize < 1 {
		return fmt.Errorf("%w: indent size %d", ErrInvalidProfile, p.IndentSize)
	}
	if _, err := textutil.ParseLineEnding(p.EndOfLine); err != nil {
		return fmt.Errorf("%w: end of line %q", ErrInvalidProfile, p.EndOfLine)
	}
	if p.TabWidth < 1 {
		return fmt.Errorf("%w: tab width %d", ErrInvalidProfile, p.TabWidth)
	}
	return nil
}

// IndentUnit returns the literal string inserted per indent level.
func (p Profile) IndentUnit() string {
	if p.IndentStyle == IndentTabs {
		return strings.Repeat("\t", p.IndentSize)
	}
	return strings.Repeat(" ", p.IndentSize)
}

// LineEnding returns the profile's line terminator.
func (p Profile) LineEnding() textutil.LineEnding {
	le, err := textutil.ParseLineEnding(p.EndOfLine)
	if err != nil {
		return textutil.LineEndingLF
	}
	return le
}

// Options returns printer options reflecting the profile.
func (p Profile) Options() []printer.Option {
	return []printer.Option{
		printer.WithIndentUnit(p.IndentUnit()),
		printer.WithEndOfLine(p.LineEnding().Sequence()),
		printer.WithTabWidth(p.TabWidth),
	}
}

// NewPrinter creates a printer configured by the profile.
func (p Profile) NewPrinter() *printer.Printer {
	return printer.New(p.Options()...)
}
