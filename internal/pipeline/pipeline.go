package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mgpai22/srtmerge/internal/logging"
	"github.com/mgpai22/srtmerge/internal/subtitle"
)

// ErrSamePath is returned when the intermediate file would overwrite the
// input or the output.
var ErrSamePath = errors.New("simplified path collides with another file")

type Options struct {
	Tags          []string
	FlushTrailing bool
	UntilStable   bool
}

// output of every stage of one run
type Result struct {
	Simplified string
	Parsed     []subtitle.Entry
	Merged     []subtitle.Entry
	Output     string
}

// Processor runs simplify, parse, merge and serialize over a document. It
// holds no per-document state and is safe for concurrent use.
type Processor struct {
	simplifier  *subtitle.Simplifier
	parser      *subtitle.Parser
	untilStable bool
	logger      *logging.Logger
}

func New(opts Options, logger *logging.Logger) *Processor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Processor{
		simplifier:  subtitle.NewSimplifier(opts.Tags),
		parser:      subtitle.NewParser(subtitle.ParseOptions{FlushTrailing: opts.FlushTrailing}),
		untilStable: opts.UntilStable,
		logger:      logger,
	}
}

// Simplify runs only the tag stripping stage.
func (p *Processor) Simplify(text string) string {
	return p.simplifier.Document(text)
}

func (p *Processor) Process(text string) (*Result, error) {
	simplified := p.simplifier.Document(text)

	parsed, err := p.parser.Parse(simplified)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subtitles: %w", err)
	}

	var merged []subtitle.Entry
	if p.untilStable {
		merged = subtitle.MergeUntilStable(parsed)
	} else {
		merged = subtitle.Merge(parsed)
	}

	return &Result{
		Simplified: simplified,
		Parsed:     parsed,
		Merged:     merged,
		Output:     subtitle.Encode(merged),
	}, nil
}

// ProcessFile runs the pipeline from inPath to outPath. A non-empty
// simplifiedPath also receives the tag-stripped intermediate text.
func (p *Processor) ProcessFile(
	ctx context.Context,
	inPath, outPath, simplifiedPath string,
) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if simplifiedPath != "" {
		for _, other := range []string{inPath, outPath} {
			if samePath(simplifiedPath, other) {
				return nil, fmt.Errorf("%w: %s", ErrSamePath, simplifiedPath)
			}
		}
	}

	text, err := subtitle.ReadFile(inPath)
	if err != nil {
		return nil, err
	}

	result, err := p.Process(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inPath, err)
	}

	if simplifiedPath != "" {
		if err := subtitle.WriteFile(simplifiedPath, result.Simplified); err != nil {
			return nil, err
		}
		p.logger.Debugw("Wrote simplified subtitles", "path", simplifiedPath)
	}

	if err := subtitle.NewWriter().Write(result.Merged, outPath); err != nil {
		return nil, err
	}

	p.logger.Infow("Merged subtitle file",
		"input", inPath,
		"output", outPath,
		"entries", len(result.Parsed),
		"merged", len(result.Parsed)-len(result.Merged),
	)

	return result, nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
