// Package config provides the augedit configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/tradej/go-augeas"
)

// Config represents the augedit TOML configuration file. Command-line flags
// override anything set here.
type Config struct {
	// Root is the filesystem root passed to the library. Empty means the
	// AUGEAS_ROOT environment variable, or "/".
	Root string `toml:"root"`

	// LoadPath is a colon-separated list of extra lens directories.
	LoadPath string `toml:"loadpath"`

	// Flags lists initialization flags by name; see ParseFlagNames.
	Flags []string `toml:"flags"`

	// Transforms are registered after initialization, followed by a
	// reload, so only the named files appear under /files.
	Transforms []Transform `toml:"transform"`
}

// Transform binds a lens to include/exclude glob patterns.
type Transform struct {
	Lens string   `toml:"lens"`
	Name string   `toml:"name,omitempty"`
	Incl []string `toml:"incl"`
	Excl []string `toml:"excl,omitempty"`
}

// flagNames maps configuration file flag names to library flags.
var flagNames = map[string]augeas.Flag{
	"backup":     augeas.SaveBackup,
	"newfile":    augeas.SaveNewFile,
	"typecheck":  augeas.TypeCheck,
	"nostdinc":   augeas.NoStdinc,
	"noop":       augeas.SaveNoop,
	"noload":     augeas.NoLoad,
	"noautoload": augeas.NoModlAutoload,
	"span":       augeas.EnableSpan,
}

// ParseFlagNames converts flag names from the configuration file into a
// flag bitmask.
func ParseFlagNames(names []string) (augeas.Flag, error) {
	flags := augeas.None
	for _, name := range names {
		f, ok := flagNames[name]
		if !ok {
			return augeas.None, fmt.Errorf("unknown flag %q", name)
		}
		flags |= f
	}
	return flags, nil
}

// Load reads a Config from a TOML file.
func Load(filename string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(filename, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if _, err := ParseFlagNames(cfg.Flags); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}
	for _, t := range cfg.Transforms {
		if t.Lens == "" || len(t.Incl) == 0 {
			return nil, fmt.Errorf("config file %s: transform needs a lens and at least one incl pattern", filename)
		}
	}
	return &cfg, nil
}

// DefaultPath returns the conventional location of the configuration file,
// honoring XDG_CONFIG_HOME.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "augedit", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "augedit", "config.toml")
}

// LoadDefault loads the configuration file from DefaultPath, returning an
// empty Config when the file does not exist.
func LoadDefault() (*Config, error) {
	p := DefaultPath()
	if p == "" {
		return &Config{}, nil
	}
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(p)
}
