package config

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/example/simplepaint/internal/colorspec"
	"github.com/example/simplepaint/internal/theme"
)

// Parse reads configuration from an io.Reader. Keys may be separated from
// their values by `=` or `:`; unknown keys are ignored.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			raw := strings.TrimSpace(line[1 : len(line)-1])
			currentSection = strings.ToLower(raw)
			currentTheme = nil
			if strings.HasPrefix(currentSection, "theme.") {
				name := raw[len("theme."):]
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = name
				cfg.Themes[name] = currentTheme
			}
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}

		var err error
		switch {
		case currentTheme != nil:
			err = theme.SetField(currentTheme, key, value)
		case currentSection == "":
			err = setRootField(cfg, key, value)
		case currentSection == "canvas":
			err = setCanvasField(&cfg.Canvas, key, value)
		case currentSection == "stroke":
			err = setStrokeField(&cfg.Stroke, key, value)
		case currentSection == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		}
		if err != nil {
			section := currentSection
			if section == "" {
				section = "root"
			}
			return nil, fmt.Errorf("line %d [%s]: %w", lineNo, section, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitKeyValue(line string) (string, string, bool) {
	sep := "="
	if !strings.Contains(line, "=") {
		sep = ":"
	}
	key, value, ok := strings.Cut(line, sep)
	if !ok {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		value = value[1 : len(value)-1]
	}
	return strings.TrimSpace(key), value, true
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	case "output":
		cfg.Output = value
	case "format":
		cfg.Format = strings.ToLower(value)
	case "antialias":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		cfg.Antialias = b
	}
	return nil
}

func setCanvasField(c *Canvas, key, value string) error {
	var err error
	switch strings.ToLower(key) {
	case "width":
		c.Width, err = parseInt(key, value)
	case "height":
		c.Height, err = parseInt(key, value)
	case "background":
		c.Background, err = parseColor(key, value)
	}
	return err
}

func setStrokeField(s *Stroke, key, value string) error {
	var err error
	switch strings.ToLower(key) {
	case "color":
		s.Color, err = parseColor(key, value)
	case "width":
		s.Width, err = parseInt(key, value)
	case "min_width":
		s.MinWidth, err = parseInt(key, value)
	case "max_width":
		s.MaxWidth, err = parseInt(key, value)
	}
	return err
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := parseBool(key, value)
	if err != nil {
		return err
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	return b, nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	return n, nil
}

// parseColor reads stroke and canvas colors, which are always opaque.
func parseColor(key, value string) (color.RGBA, error) {
	c, err := colorspec.ParseOpaque(value)
	if err != nil {
		return c, fmt.Errorf("invalid color for key %s: %w", key, err)
	}
	return c, nil
}
