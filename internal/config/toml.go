package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the terminal UI's TOML file. Pointer fields tell "unset"
// apart from zero values so flags can take precedence.
type FileConfig struct {
	Volume  VolumeConfig  `toml:"volume"`
	Display DisplayConfig `toml:"display"`
}

// VolumeConfig maps volume calculator settings.
type VolumeConfig struct {
	Shape *string `toml:"shape"`
}

// DisplayConfig maps look-and-feel settings.
type DisplayConfig struct {
	Accent *string `toml:"accent"`
	Width  *int    `toml:"width"`
}

// LoadFileConfig reads a TOML config from path. A missing file is not an error.
func LoadFileConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// DefaultFileConfig is written by `awsomemath config` when no file exists.
const DefaultFileConfig = `# awsomemath terminal settings

[volume]
# shape selected when the volume calculator opens: Cube, Sphere, Cone, Cylinder
shape = "Cube"

[display]
# lipgloss colour for the result line
accent = "#C89A3A"
# width of the calculator display in cells
width = 24
`
