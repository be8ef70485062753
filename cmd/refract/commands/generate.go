package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <directory>",
		Short: "Scaffold a new refract project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			return c.app.Generate(args[0], overwrite)
		},
	}
	cmd.Flags().Bool("overwrite", false, "Scaffold into a non-empty directory, replacing conflicting files")
	return cmd
}
