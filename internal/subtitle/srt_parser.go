package subtitle

type ParseOptions struct {
	// emit a final block that is not followed by a blank line
	FlushTrailing bool
}

func DefaultParseOptions() ParseOptions {
	return ParseOptions{FlushTrailing: false}
}

type parseState int

const (
	awaitingIndex parseState = iota
	awaitingSpan
	collectingText
)

// SRT block parser driven by an explicit state machine
type Parser struct {
	opts ParseOptions
}

func NewParser(opts ParseOptions) *Parser {
	return &Parser{opts: opts}
}

// Parse uses DefaultParseOptions.
func Parse(text string) ([]Entry, error) {
	return NewParser(DefaultParseOptions()).Parse(text)
}

// in-progress block
type block struct {
	state   parseState
	index   string
	span    Span
	lines   []string
	started int
}

func (b *block) empty() bool {
	return b.state == awaitingIndex
}

func (b *block) finish() (Entry, error) {
	if b.state == awaitingSpan {
		return Entry{}, &FormatError{
			Line:    b.started,
			Content: b.index,
			Err:     ErrMissingSpan,
		}
	}
	lines := b.lines
	if lines == nil {
		lines = []string{}
	}
	return Entry{Index: b.index, Span: b.span, Lines: lines}, nil
}

// consumes one non-blank line
func (b *block) feed(line string, lineNum int) error {
	switch b.state {
	case awaitingIndex:
		b.index = line
		b.started = lineNum
		b.state = awaitingSpan
	case awaitingSpan:
		span, err := ParseSpan(line)
		if err != nil {
			return &FormatError{Line: lineNum, Content: line, Err: err}
		}
		b.span = span
		b.state = collectingText
	case collectingText:
		b.lines = append(b.lines, line)
	}
	return nil
}

// Parse turns SRT text into entries. Only blocks terminated by a blank
// line become entries unless FlushTrailing is set. Any malformed block
// fails the whole document.
func (p *Parser) Parse(text string) ([]Entry, error) {
	entries := []Entry{}
	cur := &block{}

	for i, line := range splitLines(text) {
		lineNum := i + 1

		if line == "" {
			if cur.empty() {
				continue
			}
			entry, err := cur.finish()
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
			cur = &block{}
			continue
		}

		if err := cur.feed(line, lineNum); err != nil {
			return nil, err
		}
	}

	if p.opts.FlushTrailing && !cur.empty() {
		entry, err := cur.finish()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
