package commands

import (
	"github.com/refract-dev/refract/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Watch the project and reload modules on change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notifyTarget, _ := cmd.Flags().GetString("notify-target")
			jsonLogs, _ := cmd.Flags().GetBool("json-logs")

			return c.app.Run(cmd.Context(), app.RunOptions{
				NotifyTarget: notifyTarget,
				JSONLogs:     jsonLogs,
			})
		},
	}
	cmd.Flags().StringP("notify-target", "t", "", "Notification sink address (unix://path or host:port); defaults to the project socket")
	cmd.Flags().Bool("json-logs", false, "Emit logs as JSON")
	return cmd
}
