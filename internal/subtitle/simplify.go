package subtitle

import (
	"strings"
)

// noise tags stripped when no other list is configured
func DefaultTags() []string {
	return []string{`{\an8}`, `{=0}`}
}

// removes a fixed, ordered list of literal tags from subtitle text
type Simplifier struct {
	tags []string
}

func NewSimplifier(tags []string) *Simplifier {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag != "" {
			kept = append(kept, tag)
		}
	}
	return &Simplifier{tags: kept}
}

func (s *Simplifier) Tags() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// Line removes every occurrence of every tag from line. Removal repeats
// until nothing changes, so a tag pieced together by an earlier removal
// ({\an{=0}8}) goes too.
func (s *Simplifier) Line(line string) string {
	for {
		next := s.strip(line)
		if next == line {
			return line
		}
		line = next
	}
}

// every changing pass shortens the line, so Line terminates
func (s *Simplifier) strip(line string) string {
	for _, tag := range s.tags {
		line = strings.ReplaceAll(line, tag, "")
	}
	return line
}

// Document simplifies each line of text and terminates every line with a
// newline, blank lines included.
func (s *Simplifier) Document(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 1)
	for _, line := range splitLines(text) {
		sb.WriteString(s.Line(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

// splits on \n, drops a trailing \r per line and does not yield a final
// empty line for text ending in a newline
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
