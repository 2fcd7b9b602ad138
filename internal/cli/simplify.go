package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtmerge/internal/pipeline"
	"github.com/mgpai22/srtmerge/internal/subtitle"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [subtitle_file]",
	Short: "Only strip noise tags, without parsing or merging",
	Long: `Remove the configured tag literals from every line of a file and write the
result. Cue structure is not checked, so this works on files that merge
would reject.

Examples:
  srtmerge simplify movie.srt
  srtmerge simplify movie.srt -o movie.clean.srt --tags '{\an8}'`,
	Args: cobra.ExactArgs(1),
	RunE: runSimplify,
}

func init() {
	rootCmd.AddCommand(simplifyCmd)

	simplifyCmd.Flags().
		StringArray("tags", nil, "Tag literal to strip, repeatable (replaces the configured list)")
}

func runSimplify(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	if err := checkInput(inputPath); err != nil {
		return err
	}
	if outputPath == "" {
		baseName := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = baseName + ".simplified" + subtitle.Extension
	}

	opts := pipeline.Options{Tags: cfg.Tags}
	if cmd.Flags().Changed("tags") {
		opts.Tags, _ = cmd.Flags().GetStringArray("tags")
	}

	text, err := subtitle.ReadFile(inputPath)
	if err != nil {
		return err
	}

	simplified := pipeline.New(opts, logger).Simplify(text)
	if err := subtitle.WriteFile(outputPath, simplified); err != nil {
		return err
	}

	logger.Infow("Simplified subtitle file",
		"input", inputPath,
		"output", outputPath,
		"tags", opts.Tags,
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles simplified: %s\n", outputPath)

	return nil
}
