package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultTUIConfigPath returns the default TOML config path for the terminal UI.
func DefaultTUIConfigPath() string {
	return filepath.Join(XDGConfigHome(), "awsomemath", "config.toml")
}
