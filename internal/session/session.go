// Package session tracks how much of a document has been shown and
// turns that into the progress percentage on the status bar.
package session

// Session is the transient read state for one paging run.
type Session struct {
	total   int64
	shown   int64
	percent int
	done    bool
}

// New creates a session for a document of total bytes. An empty
// document is complete before the first page.
func New(total int64) *Session {
	s := &Session{total: total}
	if total <= 0 {
		s.percent = 100
		s.done = true
	}
	return s
}

// Advance accounts one rendered page and returns the updated percent.
// Progress is byte-based, clamped to [0,100] and never decreases.
func (s *Session) Advance(bytes int64) int {
	if s.total <= 0 {
		return s.percent
	}

	s.shown += bytes
	if s.shown > s.total {
		s.shown = s.total
	}

	// round to nearest, as in (shown/total)*100
	pct := int((s.shown*100 + s.total/2) / s.total)
	if pct > 100 {
		pct = 100
	}
	if pct > s.percent {
		s.percent = pct
	}
	return s.percent
}

// Percent returns the last computed progress percentage.
func (s *Session) Percent() int { return s.percent }

// BytesShown returns how many source bytes have been displayed.
func (s *Session) BytesShown() int64 { return s.shown }

// MarkDone records that the final page has been rendered.
func (s *Session) MarkDone() { s.done = true }

// Done reports whether the document is fully displayed.
func (s *Session) Done() bool { return s.done }
