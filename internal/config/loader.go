package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension. Unknown extensions
// are treated as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unknown format %q (want yaml or toml)", name)
	}
}

// Parse decodes data over the built-in defaults, so a file only needs the
// keys it changes.
func Parse(data []byte, format Format) (HopConfig, error) {
	cfg := DefaultHopConfig()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("toml unmarshal: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads and parses a single config file.
func LoadFile(path string) (HopConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultHopConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Load loads the game configuration.
// Search order: customPath -> ~/.mattresshop/configs/hop.{yaml,toml} ->
// ./configs/hop.yaml -> embedded default.
// Only an explicit customPath turns read or parse failures into errors;
// broken files found during the search are skipped.
func Load(customPath string) (HopConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	candidates := []string{
		userConfigPath("hop.yaml"),
		userConfigPath("hop.toml"),
		filepath.Join("configs", "hop.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultHopYAML, FormatYAML)
	if err != nil {
		return DefaultHopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg HopConfig, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("toml encode: %w", err)
		}
		return nil
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mattresshop", "configs", filename)
}
