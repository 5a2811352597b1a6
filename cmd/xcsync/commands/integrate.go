package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (c *CLI) newIntegrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Reconcile the project snapshot against the integration manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, _ := cmd.Flags().GetString("project")
			manifest, _ := cmd.Flags().GetString("manifest")

			result, err := c.app.Run(cmd.Context(), project, manifest)
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Integrated %d target(s)\n", green("✓"), result.Targets)
			return nil
		},
	}
	cmd.Flags().StringP("project", "p", "project.yaml", "Path to the project graph snapshot")
	cmd.Flags().StringP("manifest", "m", "xcsync.yaml", "Path to the integration manifest")
	return cmd
}
