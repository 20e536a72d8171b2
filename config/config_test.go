package config

import (
	"errors"
	"testing"

	"github.com/dshills/scribe/textutil"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default profile should validate, got %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	p := Default()

	if p.IndentUnit() != "    " {
		t.Errorf("expected 4-space indent unit, got %q", p.IndentUnit())
	}

	if p.LineEnding() != textutil.LineEndingLF {
		t.Errorf("expected LF, got %v", p.LineEnding())
	}

	if p.TabWidth != 4 {
		t.Errorf("expected tab width 4, got %d", p.TabWidth)
	}
}

func TestTabsIndentUnit(t *testing.T) {
	p := Default()
	p.IndentStyle = IndentTabs
	p.IndentSize = 1

	if p.IndentUnit() != "\t" {
		t.Errorf("expected tab indent unit, got %q", p.IndentUnit())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"indent style", func(p *Profile) { p.IndentStyle = "dots" }},
		{"indent size", func(p *Profile) { p.IndentSize = 0 }},
		{"end of line", func(p *Profile) { p.EndOfLine = "mixed" }},
		{"tab width", func(p *Profile) { p.TabWidth = 0 }},
	}

	for _, tt := range tests {
		p := Default()
		tt.mutate(&p)

		if err := p.Validate(); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("%s: expected ErrInvalidProfile, got %v", tt.name, err)
		}
	}
}

func TestLineEndingCRLF(t *testing.T) {
	p := Default()
	p.EndOfLine = "crlf"

	if p.LineEnding().Sequence() != "\r\n" {
		t.Errorf("expected CRLF sequence, got %q", p.LineEnding().Sequence())
	}
}

func TestNewPrinterAppliesProfile(t *testing.T) {
	p := Default()
	p.IndentStyle = IndentTabs
	p.IndentSize = 1
	p.EndOfLine = "crlf"

	pr := p.NewPrinter()
	pr.Println("a")
	pr.Indent()
	pr.Print("b")

	if pr.Source() != "a\r\n\tb" {
		t.Errorf("expected %q, got %q", "a\r\n\tb", pr.Source())
	}
}
