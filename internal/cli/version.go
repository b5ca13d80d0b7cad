package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivlev/focuscursor/internal/easing"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v := a.build.Version
			if v == "" {
				v = "dev"
			}
			if a.build.Commit != "" {
				v += " (" + a.build.Commit + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), "focuscursor", v)
		},
	}
}

func newEasingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "easings",
		Short: "List easing names accepted by cursor.easing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(easing.Names(), "\n"))
		},
	}
}
