package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/focuscursor/internal/director"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario.yaml]",
		Short: "Check a scenario and the active configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := scenarioPath(cmd.Context(), args)
			if err != nil {
				return err
			}
			s, err := director.ReadScenario(path)
			if err != nil {
				return err
			}
			if _, err := director.Build(s); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d elements, %d events, %d frames at %g fps)\n",
				path, len(s.Elements), len(s.Events), s.Frames(), s.FPS)
			return nil
		},
	}
}
