package cli

import (
	"fmt"

	"github.com/jakoblorz/clipdeck/internal/config"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the clipdeck version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clipdeck %s (commit %s)\n", config.Version, config.GitCommit)
		},
	}
}
