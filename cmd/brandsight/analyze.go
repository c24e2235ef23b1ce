package main

import (
	"fmt"

	"github.com/fwojciec/brandsight"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	sig, _, err := analyzeSite(deps, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brandsight.ErrorMessage(err))
		return err
	}

	return printJSON(deps.Stdout, sig)
}
