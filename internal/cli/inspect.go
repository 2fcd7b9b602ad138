package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtmerge/internal/pipeline"
	"github.com/mgpai22/srtmerge/internal/subtitle"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "List parsed cues and which ones overlap their successor",
	Long: `Parse an SRT file after tag stripping and print one row per cue: index,
time span, number of text lines and whether it overlaps the next cue.
Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	addPipelineFlags(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if err := checkInput(inputPath); err != nil {
		return err
	}

	text, err := subtitle.ReadFile(inputPath)
	if err != nil {
		return err
	}

	result, err := pipeline.New(pipelineOptions(cmd), logger).Process(text)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tSPAN\tLINES\tOVERLAPS NEXT")

	overlapping := 0
	for i, entry := range result.Parsed {
		overlap := "-"
		if i+1 < len(result.Parsed) && subtitle.Overlaps(entry.Span, result.Parsed[i+1].Span) {
			overlap = "yes"
			overlapping++
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", entry.Index, entry.Span, len(entry.Lines), overlap)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"\n%d cues, %d overlap their successor, %d after merge\n",
		len(result.Parsed), overlapping, len(result.Merged),
	)
	return nil
}
