package main

import "gcodeprep/config"

import "log/slog"
import "os"

import "github.com/spf13/cobra"

var (
	configPath string
	cfg        config.Config

	flagPrecision     int
	flagSegmentLength float64
	flagMinArcLength  float64
	flagTruncate      int
	flagFeedOverride  float64
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	root := &cobra.Command{
		Use:   "gcodeprep",
		Short: "Preprocess G-code for linear-only motion controllers",
		Long: `gcodeprep rewrites G-code for controllers that only understand
linear moves: G2/G3 arcs are expanded into bounded sequences of short G1
segments, with optional decimal truncation and feed-rate override.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			applyFlag(cmd, "precision", func() { cfg.Precision = flagPrecision })
			applyFlag(cmd, "segment-length", func() { cfg.SegmentLength = flagSegmentLength })
			applyFlag(cmd, "min-arc-length", func() { cfg.MinArcLength = flagMinArcLength })
			applyFlag(cmd, "truncate", func() { cfg.TruncateDigits = flagTruncate })
			applyFlag(cmd, "feed-override", func() { cfg.FeedOverride = flagFeedOverride })
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", ".gcodeprep.yaml", "Settings file")
	pf.IntVar(&flagPrecision, "precision", 4, "Precision for generated moves")
	pf.Float64Var(&flagSegmentLength, "segment-length", 0, "Maximum length of a generated arc segment")
	pf.Float64Var(&flagMinArcLength, "min-arc-length", 0, "Arc length below which arcs are left unexpanded")
	pf.IntVar(&flagTruncate, "truncate", 0, "Truncate decimals on passthrough lines to this many digits")
	pf.Float64Var(&flagFeedOverride, "feed-override", 0, "Rescale feed rates to this percentage")

	root.AddCommand(expandCmd())
	root.AddCommand(streamCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func applyFlag(cmd *cobra.Command, name string, apply func()) {
	if cmd.Flags().Changed(name) {
		apply()
	}
}
