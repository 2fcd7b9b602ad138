package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifierLine(t *testing.T) {
	s := NewSimplifier(DefaultTags())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"both tags", `{\an8}Hello {=0}world`, "Hello world"},
		{"repeated tag", `{\an8}a{\an8}b{\an8}`, "ab"},
		{"no tags", "plain text", "plain text"},
		{"other braces kept", `{\i1}italic{\i0}`, `{\i1}italic{\i0}`},
		{"only tags", `{=0}{\an8}`, ""},
		{"tag nested in tag", `{\an{=0}8}`, ""},
		{"tag revealed by later tag", `{{=0}\an8}text`, "text"},
		{"tag revealed by earlier tag", `{={\an8}0}text`, "text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Line(tt.in))
		})
	}
}

func TestSimplifierIdempotent(t *testing.T) {
	s := NewSimplifier(DefaultTags())
	lines := []string{
		`{\an8}Hello {=0}world`,
		`{=0}{=0}{=0}`,
		`{\an8{=0}`,
		`{=0}}{\an8}}`,
		"nothing to strip",
		`{\an{=0}8}`,
		`{{=0}\an8}`,
		`{={\an8}0}`,
		`{\an{={\an8}0}8}x`,
	}
	for _, line := range lines {
		once := s.Line(line)
		assert.Equal(t, once, s.Line(once), "line %q", line)
	}
}

func TestSimplifierCustomTags(t *testing.T) {
	s := NewSimplifier([]string{"<i>", "</i>", ""})
	assert.Equal(t, []string{"<i>", "</i>"}, s.Tags())
	assert.Equal(t, `Hi {\an8}`, s.Line(`<i>Hi</i> {\an8}`))
}

func TestDefaultTagsIsFresh(t *testing.T) {
	tags := DefaultTags()
	tags[0] = "changed"
	assert.Equal(t, `{\an8}`, DefaultTags()[0])
}

func TestSimplifierDocument(t *testing.T) {
	s := NewSimplifier(DefaultTags())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "keeps blank lines and terminates each line",
			in:   "1\n00:00:00,000 --> 00:00:01,000\n{\\an8}Hi\n\n2",
			want: "1\n00:00:00,000 --> 00:00:01,000\nHi\n\n2\n",
		},
		{
			name: "trailing newline not doubled",
			in:   "a\n",
			want: "a\n",
		},
		{
			name: "crlf",
			in:   "a{=0}\r\n\r\nb\r\n",
			want: "a\n\nb\n",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Document(tt.in))
		})
	}
}
