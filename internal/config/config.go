// Package config resolves texgen's configuration from its config file and
// the environment. All environment reads happen here; the rest of the
// pipeline receives a Config value and stays independently testable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Environment variables consumed by Load. They predate the config file
// and keep working alongside it.
const (
	EnvAuthor       = "LATEX_AUTOR"
	EnvTemplatesDir = "LATEX_TEMPLATES_DIR"
)

// DefaultAuthor is the placeholder used when no author is configured anywhere.
const DefaultAuthor = "Tu Nombre"

// Config holds the resolved scaffolder configuration.
type Config struct {
	// Author is the default document author ({{AUTOR}}) when the
	// command line doesn't supply one.
	Author string `yaml:"author"`

	// TemplatesDir overrides the template directory. When set, the
	// directory is authoritative: missing template files are an error
	// rather than a built-in fallback.
	TemplatesDir string `yaml:"templates_dir"`
}

// Dir returns the texgen configuration directory.
//
// Resolution:
//   - $TEXGEN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/texgen if set (respects XDG on any platform)
//   - %AppData%/texgen on Windows
//   - ~/.config/texgen on macOS and Linux
func Dir() string {
	if dir := os.Getenv("TEXGEN_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "texgen")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "texgen")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "texgen")
}

// Load builds the Config from <configdir>/config.yaml and the environment.
// Environment variables win over file values. A missing config file is
// fine; a malformed one is an error the user should see.
func Load() (Config, error) {
	var cfg Config

	if dir := Dir(); dir != "" {
		path := filepath.Join(dir, "config.yaml")
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if author := os.Getenv(EnvAuthor); author != "" {
		cfg.Author = author
	}
	if dir := os.Getenv(EnvTemplatesDir); dir != "" {
		cfg.TemplatesDir = dir
	}

	return cfg, nil
}
