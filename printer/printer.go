package printer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/scribe/textutil"
)

// Printer accumulates indented text and tracks the cursor position after
// every write. One Printer serves one printing session: it is created with
// a fixed indent unit and end-of-line string, fed by a visitor, and
// discarded once Source has been extracted.
//
// Printer is not safe for concurrent use.
type Printer struct {
	id         string
	indentUnit string
	endOfLine  string
	tabWidth   int

	indents   []string
	buf       []byte
	lineStart int // buffer offset of the current line's first byte
	cursor    Position
	indented  bool
	revision  uint64
}

// New creates a printer with the given options. The indentation stack
// starts with a single empty entry and the cursor at (1:0).
func New(opts ...Option) *Printer {
	p := &Printer{
		id:         uuid.NewString(),
		indentUnit: DefaultIndentUnit,
		endOfLine:  DefaultEndOfLine,
		tabWidth:   DefaultTabWidth,
		indents:    []string{""},
		cursor:     Pos(1, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ID returns the unique identifier of this printing session.
func (p *Printer) ID() string {
	return p.id
}

// top returns the active indentation prefix.
func (p *Printer) top() string {
	if len(p.indents) == 0 {
		panic(ErrUnbalancedIndent)
	}
	return p.indents[len(p.indents)-1]
}

// append writes s to the buffer and advances the cursor column by len(s).
func (p *Printer) append(s string) {
	p.buf = append(p.buf, s...)
	p.cursor.Column += len(s)
	p.revision++
}

// Indent pushes the current indentation extended by one indent unit.
// Does not output anything.
func (p *Printer) Indent() *Printer {
	p.indents = append(p.indents, p.top()+p.indentUnit)
	return p
}

// IndentTo pushes the current indentation right-padded with spaces until it
// reaches column. Panics with ErrIndentShrink if column is smaller than the
// current indentation's length. Does not output anything.
func (p *Printer) IndentTo(column int) *Printer {
	top := p.top()
	if column < len(top) {
		panic(ErrIndentShrink)
	}
	if pad := column - len(top); pad > 0 {
		top += strings.Repeat(" ", pad)
	}
	p.indents = append(p.indents, top)
	return p
}

// IndentToCursor pushes an indentation aligned to the current cursor
// column. Call it after printing an expression whose end column should
// anchor the lines that follow. Does not output anything.
func (p *Printer) IndentToCursor() *Printer {
	return p.IndentTo(p.cursor.Column)
}

// DuplicateIndent pushes a verbatim copy of the current indentation. With
// this you announce "the next lines will be indented" without saying how
// far yet; once known, Unindent the copy and IndentTo the right column.
// Does not output anything.
func (p *Printer) DuplicateIndent() *Printer {
	p.indents = append(p.indents, p.top())
	return p
}

// Unindent pops the top indentation entry. Panics with ErrUnbalancedIndent
// when the stack is empty, which the sentinel entry makes reachable only on
// the second consecutive unmatched pop. Does not output anything.
func (p *Printer) Unindent() *Printer {
	if len(p.indents) == 0 {
		panic(ErrUnbalancedIndent)
	}
	p.indents = p.indents[:len(p.indents)-1]
	return p
}

// Print appends text to the buffer. If nothing has been printed on the
// current line yet, the active indentation prefix is emitted first.
//
// text must not contain line-break characters; this is not validated, and
// violating it makes subsequent Cursor values unreliable. Use Println or
// Newline to terminate lines.
func (p *Printer) Print(text string) *Printer {
	if !p.indented {
		p.append(p.top())
		p.indented = true
	}
	p.append(text)
	return p
}

// Println appends text followed by the end-of-line string. The same
// no-line-break constraint as Print applies to text.
func (p *Printer) Println(text string) *Printer {
	p.Print(text)
	return p.Newline()
}

// Newline appends the end-of-line string, advances the cursor to the start
// of the next line, and arms indentation for the next Print. The prefix is
// emitted lazily, so a line that never receives content stays free of
// trailing whitespace.
func (p *Printer) Newline() *Printer {
	p.buf = append(p.buf, p.endOfLine...)
	p.cursor = Pos(p.cursor.Line+1, 0)
	p.indented = false
	p.lineStart = len(p.buf)
	p.revision++
	return p
}

// Cursor returns the current position. It is exact only if every Print and
// Println call respected the no-line-break contract.
func (p *Printer) Cursor() Position {
	return p.cursor
}

// CurrentIndent returns the active indentation prefix.
func (p *Printer) CurrentIndent() string {
	return p.top()
}

// IndentDepth returns the number of entries on the indentation stack,
// including the sentinel. A balanced session ends at depth 1.
func (p *Printer) IndentDepth() int {
	return len(p.indents)
}

// LineLen returns the byte length of the current, possibly partial line.
func (p *Printer) LineLen() int {
	return len(p.buf) - p.lineStart
}

// DisplayColumn returns the display width of the current line in terminal
// cells, expanding tabs to the configured tab width and measuring grapheme
// clusters rather than bytes. Alignment policies that target visual columns
// use this instead of Cursor().Column.
func (p *Printer) DisplayColumn() int {
	return textutil.DisplayWidth(string(p.buf[p.lineStart:]), p.tabWidth)
}

// NormalizeEOL rewrites every line break in content to this printer's
// end-of-line string. It does not touch the buffer or the cursor.
func (p *Printer) NormalizeEOL(content string) string {
	return textutil.NormalizeEOL(content, p.endOfLine)
}

// Source returns everything printed so far. It can be called mid-session
// to observe partial output.
func (p *Printer) Source() string {
	return string(p.buf)
}

// String returns the printed source, same as Source.
func (p *Printer) String() string {
	return p.Source()
}
