package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtmerge/internal/batch"
	"github.com/mgpai22/srtmerge/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch [directory]",
	Short: "Run merge over every SRT file in a directory",
	Long: `Process every .srt file directly inside a directory. Files are handled in
parallel and independently of each other.

Outputs are named <name><output_suffix>.srt and written next to the inputs
unless --out-dir is given.

Examples:
  srtmerge batch ./subs
  srtmerge batch ./subs --out-dir ./clean --concurrency 8
  srtmerge batch ./subs --continue-on-error=false`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	addPipelineFlags(batchCmd)
	batchCmd.Flags().
		String("out-dir", "", "Directory for merged files (defaults to the input directory)")
	batchCmd.Flags().
		Int("concurrency", 0, "Number of files processed in parallel (default from config)")
	batchCmd.Flags().
		Bool("continue-on-error", true, "Keep processing remaining files after a failure")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx := context.Background()

	outDir, _ := cmd.Flags().GetString("out-dir")

	concurrency := cfg.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency, _ = cmd.Flags().GetInt("concurrency")
	}
	continueOnError := cfg.ContinueOnError
	if cmd.Flags().Changed("continue-on-error") {
		continueOnError, _ = cmd.Flags().GetBool("continue-on-error")
	}

	proc := pipeline.New(pipelineOptions(cmd), logger)
	summary, err := batch.Run(ctx, proc, batch.Options{
		Dir:             dir,
		OutDir:          outDir,
		SimplifiedDir:   cfg.SimplifiedDir,
		OutputSuffix:    cfg.OutputSuffix,
		Concurrency:     concurrency,
		ContinueOnError: continueOnError,
	}, logger)
	if summary != nil {
		out := cmd.OutOrStdout()
		for _, res := range summary.Files {
			if res.Err != nil {
				fmt.Fprintf(out, "FAIL %s: %v\n", res.Input, res.Err)
				continue
			}
			fmt.Fprintf(out, "ok   %s -> %s (%d entries, %d merged)\n",
				res.Input, res.Output, res.Entries, res.Merged)
		}
		fmt.Fprintf(out, "Processed %d files, %d failed\n", len(summary.Files), summary.Failed)
	}
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", summary.Failed, len(summary.Files))
	}
	return nil
}
