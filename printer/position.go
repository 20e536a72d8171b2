package printer

import "fmt"

// Position is a location in printed output. Line is 1-indexed; Column is
// 0-indexed and counts the bytes written on the current line, so a freshly
// constructed printer sits at (1:0).
type Position struct {
	Line   int
	Column int
}

// Pos returns a Position at the given line and column.
func Pos(line, column int) Position {
	return Position{Line: line, Column: column}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// WithLine returns a copy of p with the line replaced.
func (p Position) WithLine(line int) Position {
	return Position{Line: line, Column: p.Column}
}

// WithColumn returns a copy of p with the column replaced.
func (p Position) WithColumn(column int) Position {
	return Position{Line: p.Line, Column: column}
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}
