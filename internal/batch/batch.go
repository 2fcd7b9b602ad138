package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mgpai22/srtmerge/internal/logging"
	"github.com/mgpai22/srtmerge/internal/pipeline"
	"github.com/mgpai22/srtmerge/internal/subtitle"
)

type Options struct {
	Dir           string
	OutDir        string // defaults to Dir
	SimplifiedDir string // empty disables intermediate output
	OutputSuffix  string
	Concurrency   int

	// keep going after a file fails instead of cancelling the rest
	ContinueOnError bool
}

// outcome for one input file
type FileResult struct {
	Input   string
	Output  string
	Entries int
	Merged  int
	Err     error
}

type Summary struct {
	Files  []FileResult
	Failed int
}

// OutputPath maps an input name to <name><suffix>.srt inside dir.
func OutputPath(dir, name, suffix string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(dir, base+suffix+subtitle.Extension)
}

// Run processes every SRT file in opts.Dir with bounded parallelism. Each
// file is independent; results keep directory listing order.
func Run(
	ctx context.Context,
	proc *pipeline.Processor,
	opts Options,
	logger *logging.Logger,
) (*Summary, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.Concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be positive, got %d", opts.Concurrency)
	}
	outDir := opts.OutDir
	if outDir == "" {
		outDir = opts.Dir
	}
	if filepath.Clean(outDir) == filepath.Clean(opts.Dir) && opts.OutputSuffix == "" {
		return nil, fmt.Errorf("output suffix is required when writing next to the inputs")
	}
	if opts.SimplifiedDir != "" && filepath.Clean(opts.SimplifiedDir) == filepath.Clean(opts.Dir) {
		return nil, fmt.Errorf("simplified dir must differ from the input dir %s", opts.Dir)
	}

	listed, err := subtitle.ListFiles(opts.Dir)
	if err != nil {
		return nil, err
	}

	// skip our own output from an earlier run
	names := listed[:0]
	for _, name := range listed {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if opts.OutputSuffix != "" && strings.HasSuffix(base, opts.OutputSuffix) {
			logger.Debugw("Skipping previous output", "file", name)
			continue
		}
		names = append(names, name)
	}

	logger.Infow("Starting batch",
		"dir", opts.Dir,
		"files", len(names),
		"concurrency", opts.Concurrency,
	)

	results := make([]FileResult, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			in := filepath.Join(opts.Dir, name)
			out := OutputPath(outDir, name, opts.OutputSuffix)
			simplified := ""
			if opts.SimplifiedDir != "" {
				simplified = filepath.Join(opts.SimplifiedDir, name)
			}

			res := FileResult{Input: in, Output: out}
			r, err := proc.ProcessFile(gctx, in, out, simplified)
			if err != nil {
				res.Err = err
				results[i] = res
				logger.Warnw("Failed to process file", "input", in, "error", err)
				if opts.ContinueOnError {
					return nil
				}
				return fmt.Errorf("%s: %w", name, err)
			}

			res.Entries = len(r.Parsed)
			res.Merged = len(r.Parsed) - len(r.Merged)
			results[i] = res
			return nil
		})
	}

	waitErr := g.Wait()

	summary := &Summary{Files: results}
	for _, res := range results {
		if res.Err != nil {
			summary.Failed++
		}
	}

	logger.Infow("Batch complete",
		"files", len(names),
		"failed", summary.Failed,
	)

	if waitErr != nil {
		return summary, waitErr
	}
	return summary, nil
}
