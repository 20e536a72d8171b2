package printer

// Snapshot is a read-only view of a printing session at a specific point.
// It will not change when the printer keeps writing.
type Snapshot struct {
	sessionID string
	source    string
	cursor    Position
	revision  uint64
}

// Snapshot captures the current session state.
func (p *Printer) Snapshot() Snapshot {
	return Snapshot{
		sessionID: p.id,
		source:    string(p.buf),
		cursor:    p.cursor,
		revision:  p.revision,
	}
}

// Revision returns the write revision the printer had reached. It increases
// with every buffer write, so two snapshots of one session with the same
// revision hold identical content.
func (p *Printer) Revision() uint64 {
	return p.revision
}

// SessionID returns the ID of the printer the snapshot was taken from.
func (s Snapshot) SessionID() string {
	return s.sessionID
}

// Source returns the snapshot content.
func (s Snapshot) Source() string {
	return s.source
}

// Cursor returns the cursor position at capture time.
func (s Snapshot) Cursor() Position {
	return s.cursor
}

// Revision returns the write revision at capture time.
func (s Snapshot) Revision() uint64 {
	return s.revision
}

// Len returns the snapshot's byte length.
func (s Snapshot) Len() int {
	return len(s.source)
}
