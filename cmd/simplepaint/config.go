package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/simplepaint/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	action string
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
		c.action = "print"
	case 1:
		c.action = fs.Arg(0)
	default:
		return nil, &UsageError{of: c}
	}
	if c.action != "print" && c.action != "save" && c.action != "path" {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *configCmd) Run() error {
	cfg := config.New()
	if c.root != nil && c.root.config != nil {
		cfg = c.root.config
	}
	loader := config.NewLoader(version, configPathOverride)
	switch c.action {
	case "path":
		fmt.Fprintln(c.root.stdout(), loader.SavePath())
	case "save":
		p, err := loader.Save(cfg)
		if err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", p)
	default:
		fmt.Fprint(c.root.stdout(), cfg.String())
	}
	return nil
}
