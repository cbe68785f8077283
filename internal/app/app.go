// Package app wires configuration, preferences, and the log tailer into the
// Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ptrager/loupe/internal/config"
	"github.com/ptrager/loupe/internal/logtail"
	"github.com/ptrager/loupe/internal/prefs"
	"github.com/ptrager/loupe/internal/ui"
)

// Options configure the Loupe application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/loupe/prefs.toml
	LogPath    string // overrides the configured log file
	PollEvery  time.Duration
}

// Run boots the Loupe TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if path := strings.TrimSpace(opts.LogPath); path != "" {
		cfg.LogPath = path
	}
	if opts.PollEvery > 0 {
		cfg.Poll = opts.PollEvery
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}
	theme := userPrefs.Theme
	if theme == "" {
		theme = cfg.Theme
	}

	seed, err := logtail.Read(cfg.LogPath, cfg.TailLines)
	if err != nil {
		return fmt.Errorf("seed log lines: %w", err)
	}

	model := ui.New(ui.Options{
		Config:    cfg,
		ThemeName: theme,
		Follow:    userPrefs.Follow,
		Tailer:    logtail.NewTailer(cfg.LogPath),
		SeedLines: seed,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}

	if m, ok := final.(*ui.Model); ok {
		userPrefs.Theme = m.ThemeName()
		userPrefs.Follow = m.FollowEnabled()
		if err := prefs.Save(opts.PrefsPath, userPrefs); err != nil {
			// Losing prefs is not worth a failed exit.
			log.Printf("save prefs failed: %v", err)
		}
	}
	return nil
}
