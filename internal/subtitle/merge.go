package subtitle

// Overlaps reports whether b starts or ends inside a, boundaries included.
func Overlaps(a, b Span) bool {
	aStart := a.Start.Milliseconds()
	aEnd := a.End.Milliseconds()
	bStart := b.Start.Milliseconds()
	bEnd := b.End.Milliseconds()

	return (aStart <= bStart && bStart <= aEnd) ||
		(aStart <= bEnd && bEnd <= aEnd)
}

// MergePair builds a new entry covering both spans. The index of a is kept
// and the lines of b follow the lines of a.
func MergePair(a, b Entry) Entry {
	start := min(a.Span.Start.Milliseconds(), b.Span.Start.Milliseconds())
	end := max(a.Span.End.Milliseconds(), b.Span.End.Milliseconds())

	lines := make([]string, 0, len(a.Lines)+len(b.Lines))
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)

	return Entry{
		Index: a.Index,
		Span: Span{
			Start: FromMilliseconds(start),
			End:   FromMilliseconds(end),
		},
		Lines: lines,
	}
}

// Merge makes one left-to-right pass collapsing each entry with its
// successor when their spans overlap. A merged entry is not compared
// against the entry after it within the same pass.
func Merge(entries []Entry) []Entry {
	merged := make([]Entry, 0, len(entries))

	for i := 0; i < len(entries); {
		if i == len(entries)-1 {
			merged = append(merged, entries[i].clone())
			break
		}

		cur, next := entries[i], entries[i+1]
		if Overlaps(cur.Span, next.Span) {
			merged = append(merged, MergePair(cur, next))
			i += 2
			continue
		}

		merged = append(merged, cur.clone())
		i++
	}

	return merged
}

// MergeUntilStable repeats Merge until a pass no longer shrinks the track.
func MergeUntilStable(entries []Entry) []Entry {
	merged := Merge(entries)
	for {
		next := Merge(merged)
		if len(next) == len(merged) {
			return next
		}
		merged = next
	}
}
