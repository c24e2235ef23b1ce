package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/brandsight"
)

// Run executes the sheet command.
func (c *SheetCmd) Run(deps *Dependencies) error {
	profile, sig, err := profileSite(deps, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brandsight.ErrorMessage(err))
		return err
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := deps.Renderer.Render(profile, sig, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "wrote %s\n", c.Out)
	return nil
}
