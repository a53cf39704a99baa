package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewNewCommand creates the new command
func NewNewCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Name a new project and open the editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")

			result, err := s.settings.AskProject(title)
			if err != nil {
				return fmt.Errorf("failed to read project settings: %w", err)
			}
			if result == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}

			return s.open(cmd, result.Title, nil)
		},
	}
}
