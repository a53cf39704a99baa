package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/clipdeck/internal/config"
	"github.com/jakoblorz/clipdeck/internal/editor"
	"github.com/jakoblorz/clipdeck/internal/filesystem"
	"github.com/jakoblorz/clipdeck/internal/logging"
	"github.com/jakoblorz/clipdeck/internal/media"
	"github.com/jakoblorz/clipdeck/internal/store"
	"github.com/jakoblorz/clipdeck/internal/tui/project"
	"github.com/jakoblorz/clipdeck/internal/tui/studio"
	"github.com/spf13/cobra"
)

// EditorRunner runs the editor program until the user quits
type EditorRunner func(model tea.Model) error

// ProjectPrompt asks for the settings of a new project. A nil result means
// the user aborted.
type ProjectPrompt func(initialTitle string) (*project.Result, error)

// Settings carries what the commands need besides the filesystem and prober
type Settings struct {
	Logger       *slog.Logger
	ClipDuration time.Duration
	RunEditor    EditorRunner
	AskProject   ProjectPrompt
}

func (s Settings) withDefaults() Settings {
	if s.Logger == nil {
		s.Logger = slog.New(slog.DiscardHandler)
	}
	if s.ClipDuration <= 0 {
		s.ClipDuration = editor.DefaultClipDuration
	}
	if s.RunEditor == nil {
		s.RunEditor = runProgram
	}
	if s.AskProject == nil {
		s.AskProject = project.NewFlow().Run
	}
	return s
}

func runProgram(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// session wires a fresh store to the editor screen
type session struct {
	fs       filesystem.FileSystem
	prober   media.Prober
	settings Settings
}

// open builds the project from title and paths, then hands it to the editor
func (s *session) open(cmd *cobra.Command, title string, paths []string) error {
	logger := s.settings.Logger
	title = strings.TrimSpace(title)

	st := store.New(logger)
	actions := editor.NewActions(st, s.fs,
		editor.WithProber(s.prober),
		editor.WithClipDuration(s.settings.ClipDuration),
		editor.WithLogger(logger),
	)

	if title != "" {
		actions.Rename(title)
	}

	if len(paths) > 0 {
		clips, err := actions.ImportAll(paths)
		if err != nil {
			return fmt.Errorf("failed to import media: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d clip(s)\n", len(clips))
	}

	logging.WithComponent(logger, "cli").Info("opening editor", "title", st.Snapshot().Title, "clips", len(st.Snapshot().Clips))
	if err := s.settings.RunEditor(studio.New(st, actions, logger)); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, prober media.Prober, settings Settings) *cobra.Command {
	s := &session{
		fs:       fs,
		prober:   prober,
		settings: settings.withDefaults(),
	}

	rootCmd := &cobra.Command{
		Use:   "clipdeck",
		Short: "Arrange video and audio clips in the terminal",
		Long: `A terminal editor shell for video projects.

Add placeholder clips or import media files, arrange them on the timeline
and inspect sources with ffprobe.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to an empty project when no subcommand is provided.
			title, _ := cmd.Flags().GetString("title")
			return s.open(cmd, title, nil)
		},
	}

	rootCmd.PersistentFlags().StringP("title", "t", "", "Initial project title")

	// Add subcommands
	rootCmd.AddCommand(NewOpenCommand(s))
	rootCmd.AddCommand(NewNewCommand(s))
	rootCmd.AddCommand(NewProbeCommand(fs, prober))
	rootCmd.AddCommand(NewScanCommand(fs))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// newProber returns the ffprobe backed prober, or nil when probing is disabled
func newProber(cfg config.Config) media.Prober {
	if !cfg.ProbeEnabled() {
		return nil
	}
	return media.NewFFProbe()
}

// newSettings derives the command settings from the configuration. Each
// package tags logger with its own component.
func newSettings(cfg config.Config, logger *slog.Logger) Settings {
	return Settings{
		Logger:       logger,
		ClipDuration: cfg.DefaultClipDuration(),
	}
}

// Execute runs the root command
func Execute() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := logging.NewFileLogger(cfg.LogFile(), cfg.LogLevel())
	if err != nil {
		return err
	}
	defer closeLog()

	rootCmd := NewRootCommand(filesystem.NewOSFileSystem(), newProber(cfg), newSettings(cfg, logger))

	if err := rootCmd.Execute(); err != nil {
		logging.WithComponent(logger, "cli").Error("command failed", "error", err)
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
