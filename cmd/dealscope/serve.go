package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	dealhttp "github.com/fwojciec/dealscope/http"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := dealhttp.NewServer()
	s.Addr = c.Addr
	s.Logger = deps.Logger
	s.CompanyService = deps.Companies
	s.ListService = deps.Lists
	s.SavedSearchService = deps.Searches
	s.EnrichmentService = deps.Enricher
	s.EnrichmentCache = deps.EnrichmentCache
	s.Chatter = deps.Chatter

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "dealscope listening on :%d\n", s.Port())

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "shutting down")
	return s.Close()
}
