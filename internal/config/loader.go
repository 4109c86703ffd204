package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from a file extension.
// Anything that is not .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// ParseFormat converts a CLI value into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unknown format %q (want yaml or toml)", s)
	}
}

// Decode parses data on top of the built-in defaults, so partial files only
// override the keys they mention.
func Decode(data []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return cfg, nil
}

// Encode serializes the configuration in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: toml encode: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: yaml encode: %w", err)
		}
		return data, nil
	}
}

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.arkanoid/arkanoid.{yaml,toml} -> ./configs/arkanoid.{yaml,toml} -> embedded default
//
// Only an explicit customPath reports read and parse errors; candidates on
// the search path that are missing or broken are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Decode(data, FormatForPath(customPath))
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, candidate := range searchPaths() {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		if cfg, err := Decode(data, FormatForPath(candidate)); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := Decode(defaultYAML, FormatYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "arkanoid.yaml"),
			filepath.Join(dir, "arkanoid.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "arkanoid.yaml"),
		filepath.Join("configs", "arkanoid.toml"),
	)
}

// userConfigDir returns ~/.arkanoid, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid")
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
