package cli

import (
	"github.com/spf13/cobra"

	"github.com/ivlev/focuscursor/internal/engine"
	"github.com/ivlev/focuscursor/internal/logging"
)

func newRunCommand(a *app) *cobra.Command {
	var jsonLines bool

	cmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Replay a scenario headless and print the cursor state per tick",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, path, err := a.loadDirector(ctx, args)
			if err != nil {
				return err
			}
			ctx = logging.WithScenario(ctx, path)
			return engine.WriteTrace(ctx, d, cmd.OutOrStdout(), jsonLines)
		},
	}
	cmd.Flags().BoolVar(&jsonLines, "json", false, "emit JSON lines instead of a table")
	return cmd
}
