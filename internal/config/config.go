package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings Loupe reads at startup.
type Config struct {
	LogPath    string        // file the viewer follows
	Theme      string        // theme name; prefs may override
	Poll       time.Duration // how often the log file is polled for new lines
	Scrollback int           // maximum number of lines kept in the list
	TailLines  int           // lines seeded from the end of the file at startup
}

const (
	defaultConfigPath = "~/.config/loupe/config.toml"
	defaultLogPath    = "/var/log/syslog"
	defaultTheme      = "midnight"
	defaultPollMs     = 500
	defaultScrollback = 5000
	defaultTailLines  = 1000
)

// Load locates and parses the Loupe config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogPath:    defaultLogPath,
		Theme:      defaultTheme,
		Poll:       defaultPollMs * time.Millisecond,
		Scrollback: defaultScrollback,
		TailLines:  defaultTailLines,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogPath    string `toml:"log_path"`
		Theme      string `toml:"theme"`
		PollMs     int    `toml:"poll_ms"`
		Scrollback int    `toml:"scrollback"`
		TailLines  int    `toml:"tail_lines"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if raw.PollMs > 0 {
		cfg.Poll = time.Duration(raw.PollMs) * time.Millisecond
	}
	if raw.Scrollback > 0 {
		cfg.Scrollback = raw.Scrollback
	}
	if raw.TailLines > 0 {
		cfg.TailLines = raw.TailLines
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
