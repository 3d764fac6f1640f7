package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/dealscope"
)

// Run executes the enrich command.
func (c *EnrichCmd) Run(deps *Dependencies) error {
	enrichment, err := deps.Enricher.EnrichURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dealscope.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(enrichment, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
