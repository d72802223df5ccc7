package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // Set at compile time if needed
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads the first configuration file found, or returns defaults when
// there is none.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".simplepaintrc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	for _, name := range []string{"config.rc", "simplepaint.rc"} {
		p := filepath.Join(DefaultDir(), name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// SavePath is where `config save` writes: the file currently in use, or
// the primary location under DefaultDir.
func (l *Loader) SavePath() string {
	if p := l.GetConfigPath(); p != "" {
		return p
	}
	if l.OverridePath != "" {
		return l.OverridePath
	}
	return filepath.Join(DefaultDir(), "config.rc")
}

// Save writes cfg to SavePath, creating the directory when needed.
func (l *Loader) Save(cfg *Config) (string, error) {
	path := l.SavePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(cfg.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// DefaultDir is the per-user configuration directory.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "simplepaint")
}
