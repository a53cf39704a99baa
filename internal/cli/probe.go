package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/template"

	"github.com/jakoblorz/clipdeck/internal/filesystem"
	"github.com/jakoblorz/clipdeck/internal/media"
	"github.com/jakoblorz/clipdeck/internal/timecode"
	"github.com/spf13/cobra"
)

// ProbeCommand handles the probe command
type ProbeCommand struct {
	fs     filesystem.FileSystem
	prober media.Prober
}

// probeOutput is the JSON shape of a probe result
type probeOutput struct {
	*media.Metadata
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// NewProbeCommand creates a new probe command
func NewProbeCommand(fs filesystem.FileSystem, prober media.Prober) *cobra.Command {
	cmd := &ProbeCommand{
		fs:     fs,
		prober: prober,
	}

	cobraCmd := &cobra.Command{
		Use:   "probe <file>",
		Short: "Show media metadata for a file",
		Long: `Runs ffprobe on a file and prints its type, duration, codecs and size.

The text report can be replaced with a Go template. Sprig functions are
available, plus clock, mmss and bytes.`,
		Example: `  clipdeck probe intro.mp4
  clipdeck probe intro.mp4 --format json
  clipdeck probe intro.mp4 --template report.tmpl`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")
	cobraCmd.Flags().String("template", "", "Template file for the text report")

	return cobraCmd
}

// Run executes the probe command
func (c *ProbeCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	templatePath, _ := cmd.Flags().GetString("template")

	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q (must be text or json)", format)
	}
	if c.prober == nil {
		return errors.New("probing is disabled (CLIPDECK_FFPROBE=false)")
	}

	path := args[0]
	if !c.fs.Exists(path) {
		return fmt.Errorf("file not found: %s", path)
	}

	md, err := c.prober.Probe(path)
	if err != nil {
		return fmt.Errorf("failed to probe %s: %w", path, err)
	}

	out := cmd.OutOrStdout()

	if format == "json" {
		data, err := json.MarshalIndent(probeOutput{
			Metadata:        md,
			Duration:        timecode.FormatClock(md.Duration),
			DurationSeconds: md.Duration.Seconds(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	var tmpl *template.Template
	if templatePath != "" {
		tmpl, err = media.LoadReportTemplate(c.fs, templatePath)
		if err != nil {
			return err
		}
	}

	report, err := media.RenderReport(tmpl, md)
	if err != nil {
		return err
	}
	fmt.Fprint(out, report)
	return nil
}
