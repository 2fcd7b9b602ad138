package subtitle

import (
	"strings"
)

// SubRip format
type SRTWriter struct{}

func NewWriter() *SRTWriter {
	return &SRTWriter{}
}

// Encode renders entries as SRT text, each block closed by a blank line.
func Encode(entries []Entry) string {
	var sb strings.Builder
	for _, entry := range entries {
		// index, kept verbatim
		sb.WriteString(entry.Index)
		sb.WriteString("\n")

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(entry.Span.String())
		sb.WriteString("\n")

		// text
		for _, line := range entry.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// writes the entries to an SRT file
func (w *SRTWriter) Write(entries []Entry, path string) error {
	return WriteFile(path, Encode(entries))
}
