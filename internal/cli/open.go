package cli

import (
	"github.com/spf13/cobra"
)

// NewOpenCommand creates the open command
func NewOpenCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>...",
		Short: "Open the editor with media files imported",
		Long: `Imports the given files as clips, in order, and opens the editor.

Directories are scanned for media files. Files whose duration cannot be
probed get the default clip length.`,
		Example: `  clipdeck open intro.mp4 music.mp3
  clipdeck open ./footage --title "Holiday Cut"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			return s.open(cmd, title, args)
		},
	}
}
