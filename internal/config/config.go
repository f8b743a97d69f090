// Package config loads and validates YAML configuration for the mdtoc CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-mdtoc/internal/fileutil"
	"github.com/alnah/go-mdtoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field limits. Markers and bullets end up verbatim in documents, so keep
// them short and single-line.
const (
	MaxMarkerLength = 200 // a full HTML comment line
	MaxBulletLength = 8   // "1.", "-", ">>"
	MaxIndentWidth  = 16
	MaxWorkers      = 64
)

// Styles accepted by format.style.
var validStyles = []string{"alternating", "asterisks", "dashes", "numbers", "pluses", "custom"}

// Config holds all configuration for table-of-contents generation.
type Config struct {
	Markers MarkersConfig `yaml:"markers"`
	Format  FormatConfig  `yaml:"format"`
	Batch   BatchConfig   `yaml:"batch"`
}

// MarkersConfig defines the sentinel lines delimiting the TOC region.
type MarkersConfig struct {
	Start string `yaml:"start"` // Empty = "<!-- toc -->"
	Stop  string `yaml:"stop"`  // Empty = "<!-- tocstop -->"
}

// FormatConfig defines list rendering options.
type FormatConfig struct {
	Style        string `yaml:"style"`        // alternating, asterisks, dashes, numbers, pluses, custom
	Bullet       string `yaml:"bullet"`       // Glyph for style "custom"
	IndentWidth  int    `yaml:"indentWidth"`  // Spaces per nesting level (0 = default 2)
	IncludeTitle bool   `yaml:"includeTitle"` // Keep the level-1 document title in the list
}

// BatchConfig defines multi-file processing options.
type BatchConfig struct {
	Workers int `yaml:"workers"` // 0 = derived from GOMAXPROCS
}

// Validate checks markers, style, and numeric ranges. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateMarker("markers.start", c.Markers.Start); err != nil {
		return err
	}
	if err := validateMarker("markers.stop", c.Markers.Stop); err != nil {
		return err
	}
	if c.Markers.Start != "" && c.Markers.Start == c.Markers.Stop {
		return fmt.Errorf("markers.stop: must differ from markers.start %q", c.Markers.Start)
	}

	if c.Format.Style != "" && !slices.Contains(validStyles, c.Format.Style) {
		return fmt.Errorf("format.style: invalid value %q (must be one of %s)",
			c.Format.Style, strings.Join(validStyles, ", "))
	}
	if c.Format.Style == "custom" && c.Format.Bullet == "" {
		return fmt.Errorf("format.bullet: required when format.style is %q", "custom")
	}
	if len(c.Format.Bullet) > MaxBulletLength {
		return fmt.Errorf("%w: format.bullet (%d chars, max %d)",
			ErrFieldTooLong, len(c.Format.Bullet), MaxBulletLength)
	}
	if strings.ContainsAny(c.Format.Bullet, " \t\r\n") {
		return fmt.Errorf("format.bullet: must not contain whitespace, got %q", c.Format.Bullet)
	}

	if c.Format.IndentWidth < 0 || c.Format.IndentWidth > MaxIndentWidth {
		return fmt.Errorf("format.indentWidth: must be between 0 and %d, got %d",
			MaxIndentWidth, c.Format.IndentWidth)
	}
	if c.Batch.Workers < 0 || c.Batch.Workers > MaxWorkers {
		return fmt.Errorf("batch.workers: must be between 0 and %d, got %d",
			MaxWorkers, c.Batch.Workers)
	}

	return nil
}

// validateMarker checks one marker line. Markers match whole lines, so they
// cannot contain line breaks themselves.
func validateMarker(fieldName, value string) error {
	if len(value) > MaxMarkerLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), MaxMarkerLength)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%s: must be a single line, got %q", fieldName, value)
	}
	return nil
}

// DefaultConfig returns a neutral configuration; empty fields mean the
// library defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdtoc/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdtoc", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
