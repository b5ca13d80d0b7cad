package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ivlev/focuscursor/internal/director"
	"github.com/ivlev/focuscursor/internal/logging"
)

func newTourCommand(a *app) *cobra.Command {
	var (
		duration float64
		out      string
	)
	tour := director.NewTour()

	cmd := &cobra.Command{
		Use:   "tour [scenario.yaml]",
		Short: "Write a scenario whose events visit every element in reading order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path, err := scenarioPath(ctx, args)
			if err != nil {
				return err
			}
			s, err := director.ReadScenario(path)
			if err != nil {
				return err
			}
			if duration <= 0 {
				duration = s.Duration
			}

			generated, err := tour.Generate(s, duration)
			if err != nil {
				return err
			}

			if out == "" {
				out = director.GenerateScenarioPath(filepath.Dir(path), "tour")
			}
			if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
				return err
			}
			if err := director.WriteScenario(generated, out); err != nil {
				return err
			}

			logging.FromContext(ctx).Info().Str("path", out).Int("events", len(generated.Events)).Msg("tour written")
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&duration, "duration", 0, "tour length in seconds (default: the scenario's duration)")
	f.StringVarP(&out, "out", "o", "", "output file (default: timestamped file next to the input)")
	f.Float64Var(&tour.MinDwell, "min-dwell", tour.MinDwell, "minimum seconds per element")
	f.Float64Var(&tour.MaxDwell, "max-dwell", tour.MaxDwell, "maximum seconds per element")
	return cmd
}
