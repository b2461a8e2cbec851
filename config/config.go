// Package config loads and saves bitstream tool configuration: which chip
// variant to target, how strict to be about model inconsistencies, and how
// cmd/bitdump and cmd/bitview format their output.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the bitstream tool configuration.
type Config struct {
	// Chip settings
	Chip struct {
		Variant string `toml:"variant"` // only "XC6SLX9" is recognised
	} `toml:"chip"`

	// Codec settings. Both flags are loaded and saved with the file; the
	// codec and the commands do not read them, so neither changes how an
	// encode or decode behaves.
	Codec struct {
		StrictResidual   bool `toml:"strict_residual"`    // residual-bits strictness flag
		FailOnDiagnostic bool `toml:"fail_on_diagnostic"` // diagnostic-promotion flag
	} `toml:"codec"`

	// Diagnostics settings
	Diagnostics struct {
		Verbose    bool   `toml:"verbose"`
		OutputFile string `toml:"output_file"`
		Format     string `toml:"format"` // text, json
	} `toml:"diagnostics"`

	// Display settings (loaded and saved; cmd/bitview does not read them)
	Display struct {
		ColorOutput  bool `toml:"color_output"`
		BytesPerLine int  `toml:"bytes_per_line"`
	} `toml:"display"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Chip.Variant = "XC6SLX9"

	cfg.Codec.StrictResidual = false
	cfg.Codec.FailOnDiagnostic = false

	cfg.Diagnostics.Verbose = false
	cfg.Diagnostics.OutputFile = ""
	cfg.Diagnostics.Format = "text"

	cfg.Display.ColorOutput = true
	cfg.Display.BytesPerLine = 16

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\bitstream\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "bitstream")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/bitstream/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "bitstream")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file is
// not an error: it yields the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
