package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader finds themes by name or path.
type Loader struct {
	ConfigDir string
	SystemDir string
	// Custom holds themes defined inline in the configuration file. They
	// take precedence over every other source.
	Custom map[string]*Theme
}

// NewLoader creates a Loader with the standard search directories.
func NewLoader(custom map[string]*Theme) *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "simplepaint", "themes"),
		SystemDir: "/usr/share/simplepaint/themes",
		Custom:    custom,
	}
}

// Load resolves name in this order: configuration sections, an existing
// file path, the embedded themes, ConfigDir and finally SystemDir. An empty
// name yields Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if t, ok := l.Custom[name]; ok && t != nil {
		return t, nil
	}
	if st, err := os.Stat(name); err == nil && !st.IsDir() {
		return parseFile(name)
	}

	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}

	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}
	return nil, fmt.Errorf("theme %q not found", name)
}

// Names lists the embedded and configured theme names.
func (l *Loader) Names() []string {
	seen := map[string]bool{}
	entries, _ := fs.ReadDir(EmbeddedThemes, "defaults")
	for _, e := range entries {
		seen[strings.TrimSuffix(e.Name(), ".theme")] = true
	}
	for name := range l.Custom {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}
