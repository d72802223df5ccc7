package main

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/example/simplepaint/internal/appstate"
	"github.com/example/simplepaint/internal/canvas"
	"github.com/example/simplepaint/internal/colorspec"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	c := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

// Run prints the palette. The starting stroke color is marked with '*'.
func (c *colorsCmd) Run() error {
	current := c.root.session().Color
	tw := tabwriter.NewWriter(c.root.stdout(), 0, 4, 2, ' ', 0)
	for _, pc := range appstate.PaletteColors() {
		mark := " "
		if pc.Color == current {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, pc.Name, colorspec.Hex(pc.Color))
	}
	return tw.Flush()
}

type formatsCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *formatsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseFormatsCmd(args []string, r *root) (*formatsCmd, error) {
	fs := flag.NewFlagSet("formats", flag.ExitOnError)
	c := &formatsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *formatsCmd) Run() error {
	for _, f := range canvas.Formats() {
		fmt.Fprintln(c.root.stdout(), f)
	}
	return nil
}
