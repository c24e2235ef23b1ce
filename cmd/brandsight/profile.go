package main

import (
	"fmt"

	"github.com/fwojciec/brandsight"
)

// Run executes the profile command.
func (c *ProfileCmd) Run(deps *Dependencies) error {
	profile, _, err := profileSite(deps, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brandsight.ErrorMessage(err))
		return err
	}

	return printJSON(deps.Stdout, profile)
}
