package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/simplepaint/internal/canvas"
	"github.com/example/simplepaint/internal/config"
	"github.com/example/simplepaint/internal/notify"
	drawing "github.com/example/simplepaint/internal/paint"
	"github.com/example/simplepaint/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	out         io.Writer
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	copyAlerts  bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	if r == nil || r.program == "" {
		return "simplepaint"
	}
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	if r == nil {
		return nil
	}
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("simplepaint", flag.ExitOnError),
		program:  "simplepaint",
		out:      os.Stdout,
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving the drawing")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")

	// Precedence: CLI > Env > Config > Default, resolved in Run.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, or a theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "open":
		cmd, err = parseOpenCmd(subArgs, r)
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "formats":
		cmd, err = parseFormatsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("SIMPLEPAINT_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	loader := theme.NewLoader(r.config.Themes)
	t, err := loader.Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default. available: %s\n",
			name, err, strings.Join(loader.Names(), ", "))
		return theme.Default()
	}
	return t
}

// session builds the initial drawing settings from the configuration.
func (r *root) session() drawing.Session {
	s := drawing.NewSession()
	if r == nil || r.config == nil {
		return s
	}
	s.Color = r.config.Stroke.Color
	s.MinWidth = r.config.Stroke.MinWidth
	s.MaxWidth = r.config.Stroke.MaxWidth
	s.Width = s.ClampWidth(r.config.Stroke.Width)
	s.Background = r.config.Canvas.Background
	return s
}

func (r *root) canvasSize() (int, int) {
	if r == nil || r.config == nil {
		return canvas.DefaultSize.X, canvas.DefaultSize.Y
	}
	return r.config.Canvas.Width, r.config.Canvas.Height
}

// resolveOutput places relative output names in the configured save
// directory.
func (r *root) resolveOutput(name string) string {
	name = expandHome(name)
	if r == nil || r.config == nil || r.config.SaveDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(expandHome(r.config.SaveDir), name)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func (r *root) stdout() io.Writer {
	if r == nil || r.out == nil {
		return os.Stdout
	}
	return r.out
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
