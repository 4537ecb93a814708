package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Provision the virtualenv for the configured requirements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			requirements, err := cmd.Flags().GetString("requirements")
			if err != nil {
				return err
			}
			return c.app.Setup(cmd.Context(), configPath, requirements)
		},
	}

	cmd.Flags().StringP("requirements", "r", "", "Override the requirements manifest named by the config")

	return cmd
}
