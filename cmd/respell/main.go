package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsnanigans/respell/cmd/respell/ui"
	"github.com/jsnanigans/respell/pkg/morph"
)

var (
	flagDebug     bool
	flagThreshold int
	flagConfig    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "respell",
		Short:         "Animate a misspelled word into its correct spelling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "verbose development logging")
	root.PersistentFlags().IntVar(&flagThreshold, "threshold", 0, "highlight moves up to this displacement (default 1)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config for durations and threshold")

	root.AddCommand(newPlanCmd(), newPlayCmd())
	return root
}

func newLogger() (*zap.Logger, error) {
	if flagDebug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// settings resolves config-file values and flag overrides. Flags win.
func settings() (morph.Options, morph.ScriptConfig, error) {
	opts, script, err := loadConfig(flagConfig)
	if err != nil {
		return morph.Options{}, morph.ScriptConfig{}, err
	}
	if flagThreshold > 0 {
		opts.HighlightThreshold = flagThreshold
	}
	return opts, script, nil
}

func newPlanCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan <source> <target>",
		Short: "Print the edit plan for a word pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			opts, _, err := settings()
			if err != nil {
				return err
			}

			plan := morph.ComputePlanWith(args[0], args[1], opts)
			logger.Debug("plan computed",
				zap.String("source", plan.Source),
				zap.String("target", plan.Target),
				zap.Int("deletions", len(plan.Deletions)),
				zap.Int("insertions", len(plan.Insertions)),
				zap.Int("moves", len(plan.Moves)),
				zap.Int("replacements", len(plan.Replacements)))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, morph.VisualizePlan(plan))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "diff:   "+morph.DiffPreview(plan.Source, plan.Target))
			fmt.Fprintln(out, "phases: "+formatPhases(morph.PhaseSequence(plan)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw plan as JSON")
	return cmd
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <source> <target>",
		Short: "Play the morph animation in the terminal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			opts, script, err := settings()
			if err != nil {
				return err
			}

			plan := morph.ComputePlanWith(args[0], args[1], opts)
			frames := morph.BuildScript(plan, script)
			logger.Debug("starting player", zap.Int("frames", len(frames)))

			_, err = tea.NewProgram(ui.NewPlayer(plan, frames)).Run()
			return err
		},
	}
}

func formatPhases(phases []morph.Phase) string {
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = p.String()
	}
	return strings.Join(names, " -> ")
}
