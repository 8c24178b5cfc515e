// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

// tickmark is a terminal to-do list. It keeps a single in-memory task
// list for the duration of the session: add tasks from a draft input,
// toggle them complete, delete them, and narrow the view with tabs and
// a text filter. Nothing is persisted; quitting discards the list.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/tickmark-app/tickmark/lib/cli"
	"github.com/tickmark-app/tickmark/lib/clock"
	"github.com/tickmark-app/tickmark/lib/config"
	"github.com/tickmark-app/tickmark/lib/task"
	"github.com/tickmark-app/tickmark/lib/taskui"
	"github.com/tickmark-app/tickmark/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var startTab string
	var logOutput string

	flagSet := pflag.NewFlagSet("tickmark", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to tickmark.yaml (default: TICKMARK_CONFIG, or built-in defaults)")
	flagSet.StringVar(&startTab, "start-tab", "", "tab shown on startup: all, active, completed")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works regardless of
	// other flags.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("tickmark")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	logger, cleanup, err := buildLogger(logOutput)
	if err != nil {
		return cli.Validation("cannot open log file %s: %w", logOutput, err)
	}
	defer cleanup()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if startTab != "" {
		cfg.UI.StartTab = startTab
	}
	tab, err := parseTab(cfg.UI.StartTab)
	if err != nil {
		return err
	}

	// Detect the terminal background before bubbletea takes over the
	// screen.
	theme := buildTheme(cfg)

	store := task.NewStore(clock.Real())
	source := taskui.NewStoreSource(store)

	model := taskui.NewModel(source)
	model.SetTheme(theme)
	model.SetStartTab(tab)
	model.SetGlyphs(cfg.UI.OpenGlyph, cfg.UI.DoneGlyph)

	logger.Info("starting", "start_tab", cfg.UI.StartTab, "theme_mode", cfg.Theme.Mode)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return cli.Internal("running terminal UI: %w", err)
	}
	return nil
}

// loadConfig loads configuration from the --config flag when given,
// otherwise from TICKMARK_CONFIG, otherwise built-in defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, cli.NotFound("config file not found: %s", configPath).
					WithHint("Check the path, or omit --config to use the built-in defaults.")
			}
			return nil, cli.Validation("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, cli.Validation("loading config from TICKMARK_CONFIG: %w", err)
	}
	return cfg, nil
}

// parseTab maps a start-tab name to its Tab value.
func parseTab(name string) (taskui.Tab, error) {
	switch name {
	case "all":
		return taskui.TabAll, nil
	case "active":
		return taskui.TabActive, nil
	case "completed":
		return taskui.TabCompleted, nil
	}
	return taskui.TabAll, cli.Validation("unknown start tab %q", name).
		WithHint("Valid tabs: all, active, completed.")
}

// buildTheme selects the palette from the theme mode and applies any
// per-color overrides from the config.
func buildTheme(cfg *config.Config) taskui.Theme {
	var theme taskui.Theme
	switch cfg.Theme.Mode {
	case config.ThemeDark:
		theme = taskui.DefaultDarkTheme
	case config.ThemeLight:
		theme = taskui.DefaultLightTheme
	default:
		theme = taskui.DetectTheme()
	}

	if cfg.Theme.Accent != "" {
		theme.AccentForeground = lipgloss.Color(cfg.Theme.Accent)
	}
	if cfg.Theme.Selection != "" {
		theme.SelectedBackground = lipgloss.Color(cfg.Theme.Selection)
	}
	if cfg.Theme.Completed != "" {
		theme.CompletedText = lipgloss.Color(cfg.Theme.Completed)
	}
	return theme
}

// buildLogger returns a logger for pre-TUI and background records.
// Without --log-output, records at warning and above go to stderr.
// With it, all records go to the file as JSON; stderr stays clean so
// the alt-screen display is not corrupted.
func buildLogger(logOutput string) (*slog.Logger, func(), error) {
	if logOutput == "" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		return slog.New(handler), func() {}, nil
	}

	file, err := os.Create(logOutput)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `tickmark — interactive terminal to-do list.

The list lives in memory for the session. Add tasks with the draft
input, toggle them complete, delete them, and switch between the All,
Active, and Completed tabs. Quitting discards the list.

Configuration is optional. tickmark reads the file named by --config
or the TICKMARK_CONFIG environment variable; without either it uses
built-in defaults. There is no automatic config discovery.

Usage:
  tickmark [flags]

Keys:
  j/k or arrows   move the cursor
  Space or Enter  toggle the selected task
  d               delete the selected task
  a               add a new task
  /               filter the list
  1/2/3           switch tabs
  q               quit

Examples:
  # Start with defaults
  tickmark

  # Start on the active tab with a custom config
  tickmark --config ~/.config/tickmark.yaml --start-tab active

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
