package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/jakoblorz/clipdeck/internal/filesystem"
	"github.com/jakoblorz/clipdeck/internal/media"
	"github.com/spf13/cobra"
)

// ScanCommand handles the scan command
type ScanCommand struct {
	fs filesystem.FileSystem
}

// ScanOutput represents the complete scan output
type ScanOutput struct {
	Root  string        `json:"root"`
	Files []media.Entry `json:"files"`
}

// NewScanCommand creates a new scan command
func NewScanCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ScanCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List the media files in a directory",
		Long: `Walks a directory and lists the files clipdeck can import.

Without an argument the working directory is scanned. Hidden directories
and paths matched by the directory's .gitignore are skipped.`,
		Example: `  clipdeck scan
  clipdeck scan ./footage
  clipdeck scan ./footage --format json > media.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")

	return cobraCmd
}

// Run executes the scan command
func (c *ScanCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q (must be text or json)", format)
	}

	root, err := c.resolveRoot(args)
	if err != nil {
		return err
	}

	entries, err := media.NewScanner(c.fs).Scan(root)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}

	out := cmd.OutOrStdout()

	if format == "json" {
		if entries == nil {
			entries = []media.Entry{}
		}
		data, err := json.MarshalIndent(ScanOutput{Root: root, Files: entries}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No media files found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Type, humanize.Bytes(uint64(max(entry.Size, 0))), entry.Path)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d media file(s)\n", len(entries))
	return nil
}

func (c *ScanCommand) resolveRoot(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	wd, err := c.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}
