package cli

import (
	"github.com/spf13/cobra"

	"github.com/mgpai22/srtmerge/internal/config"
	"github.com/mgpai22/srtmerge/internal/logging"
	"github.com/mgpai22/srtmerge/internal/pipeline"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "srtmerge",
	Short: "Clean SubRip subtitles and merge overlapping cues",
	Long: `srtmerge strips noise markup tags such as {\an8} and {=0} from SubRip
subtitle files, then merges consecutive cues whose display windows overlap.

Settings are read from srtmerge.yaml when present (see "srtmerge config init").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Config file path (default srtmerge.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}

// registers the flags shared by commands that run the pipeline
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().
		StringArray("tags", nil, "Tag literal to strip, repeatable (replaces the configured list)")
	cmd.Flags().
		Bool("flush-trailing", false, "Keep a final cue that is not followed by a blank line")
	cmd.Flags().
		Bool("until-stable", false, "Repeat the merge pass until no more cues overlap")
}

// config values overridden by any flag the user set explicitly
func pipelineOptions(cmd *cobra.Command) pipeline.Options {
	opts := pipeline.Options{
		Tags:          cfg.Tags,
		FlushTrailing: cfg.FlushTrailing,
		UntilStable:   cfg.UntilStable,
	}

	if cmd.Flags().Changed("tags") {
		opts.Tags, _ = cmd.Flags().GetStringArray("tags")
	}
	if cmd.Flags().Changed("flush-trailing") {
		opts.FlushTrailing, _ = cmd.Flags().GetBool("flush-trailing")
	}
	if cmd.Flags().Changed("until-stable") {
		opts.UntilStable, _ = cmd.Flags().GetBool("until-stable")
	}

	return opts
}
