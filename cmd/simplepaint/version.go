package main

import (
	"flag"
	"fmt"
)

type versionCmd struct {
	r *root
}

func (v *versionCmd) Program() string {
	return v.r.Program()
}

func (v *versionCmd) FlagSet() *flag.FlagSet {
	return nil
}

func (v *versionCmd) Run() error {
	out := v.r.stdout()
	fmt.Fprintf(out, "%s %s\n", v.r.Program(), version)
	if commit != "" {
		fmt.Fprintf(out, "commit: %s\n", commit)
	}
	if date != "" {
		fmt.Fprintf(out, "built: %s\n", date)
	}
	return nil
}
