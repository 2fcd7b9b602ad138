package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtmerge/internal/pipeline"
	"github.com/mgpai22/srtmerge/internal/subtitle"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [subtitle_file]",
	Short: "Strip noise tags and merge overlapping cues in one SRT file",
	Long: `Strip the configured tags from every line of an SRT file, then merge each
cue with the following one when their time windows overlap.

A single pass is made by default: a merged cue is not compared again with
the cue after it. Use --until-stable to repeat the pass.

Examples:
  srtmerge merge movie.srt
  srtmerge merge movie.srt -o clean.srt --simplified movie.simplified.srt
  srtmerge merge movie.srt --in-place --until-stable
  srtmerge merge movie.srt --tags '{\an8}' --tags '<i>'`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	addPipelineFlags(mergeCmd)
	mergeCmd.Flags().
		String("simplified", "", "Also write the tag-stripped text before merging to this path")
	mergeCmd.Flags().
		Bool("in-place", false, "Replace the input file, keeping the original as <file>.bak")
}

func runMerge(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	ctx := context.Background()

	outputPath, _ := cmd.Flags().GetString("output")
	simplifiedPath, _ := cmd.Flags().GetString("simplified")
	inPlace, _ := cmd.Flags().GetBool("in-place")

	if err := checkInput(inputPath); err != nil {
		return err
	}
	if inPlace && outputPath != "" {
		return fmt.Errorf("--in-place and --output cannot be used together")
	}

	if simplifiedPath == "" && cfg.SimplifiedDir != "" {
		simplifiedPath = filepath.Join(cfg.SimplifiedDir, filepath.Base(inputPath))
	}

	if inPlace {
		backup := inputPath + ".bak"
		if err := copyFile(inputPath, backup); err != nil {
			return err
		}
		logger.Infow("Saved backup", "path", backup)
		outputPath = inputPath
	}
	if outputPath == "" {
		outputPath = deriveOutputPath(inputPath, cfg.OutputSuffix)
	}

	opts := pipelineOptions(cmd)
	logger.Infow("Starting subtitle merge",
		"input", inputPath,
		"output", outputPath,
		"tags", opts.Tags,
		"until_stable", opts.UntilStable,
		"flush_trailing", opts.FlushTrailing,
	)

	proc := pipeline.New(opts, logger)
	result, err := proc.ProcessFile(ctx, inputPath, outputPath, simplifiedPath)
	if err != nil {
		return fmt.Errorf("failed to merge subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles merged successfully: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Entries: %d -> %d\n", len(result.Parsed), len(result.Merged))

	return nil
}

func checkInput(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory; expected a file", path)
	}
	if !subtitle.IsSubtitleFile(path) {
		return fmt.Errorf(
			"unsupported subtitle format %q: only %s is supported",
			filepath.Ext(path),
			subtitle.Extension,
		)
	}
	return nil
}

// <dir>/<name><suffix>.srt next to the input
func deriveOutputPath(inputPath, suffix string) string {
	baseName := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return baseName + suffix + subtitle.Extension
}

// byte-for-byte, BOM included
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup %s: %w", dst, err)
	}
	return nil
}
