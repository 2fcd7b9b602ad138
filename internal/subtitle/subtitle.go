package subtitle

// represents single subtitle cue
type Entry struct {
	// original sequence label, kept verbatim and never renumbered
	Index string
	Span  Span
	Lines []string
}

// represents display window of a cue
type Span struct {
	Start Time
	End   Time
}

func (s Span) String() string {
	return s.Start.String() + SpanSeparator + s.End.String()
}

// copies the entry so callers never share the Lines backing array
func (e Entry) clone() Entry {
	lines := make([]string, len(e.Lines))
	copy(lines, e.Lines)
	return Entry{
		Index: e.Index,
		Span:  e.Span,
		Lines: lines,
	}
}

// reports whether two entries carry the same index, span and text
func (e Entry) Equal(other Entry) bool {
	if e.Index != other.Index ||
		e.Span.Start.Milliseconds() != other.Span.Start.Milliseconds() ||
		e.Span.End.Milliseconds() != other.Span.End.Milliseconds() ||
		len(e.Lines) != len(other.Lines) {
		return false
	}
	for i := range e.Lines {
		if e.Lines[i] != other.Lines[i] {
			return false
		}
	}
	return true
}

// file extension handled by this package
const Extension = ".srt"
