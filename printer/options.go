package printer

// Default configuration values.
const (
	DefaultIndentUnit = "    "
	DefaultEndOfLine  = "\n"
	DefaultTabWidth   = 4
)

// Option configures a Printer during creation.
type Option func(*Printer)

// WithIndentUnit sets the string pushed per indent level.
func WithIndentUnit(unit string) Option {
	return func(p *Printer) {
		if unit != "" {
			p.indentUnit = unit
		}
	}
}

// WithEndOfLine sets the line terminator appended by Newline.
func WithEndOfLine(eol string) Option {
	return func(p *Printer) {
		if eol != "" {
			p.endOfLine = eol
		}
	}
}

// WithTabWidth sets the tab stop width used by DisplayColumn.
// It has no effect on cursor tracking, which is byte-based.
func WithTabWidth(width int) Option {
	return func(p *Printer) {
		if width > 0 {
			p.tabWidth = width
		}
	}
}
