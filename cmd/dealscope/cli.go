package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/dealscope"
	"github.com/fwojciec/dealscope/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB              *sqlite.DB
	Companies       dealscope.CompanyService
	Lists           dealscope.ListService
	Searches        dealscope.SavedSearchService
	EnrichmentCache dealscope.EnrichmentCacheService
	Enricher        dealscope.EnrichmentService
	Chatter         dealscope.Chatter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Run the dashboard API server"`
	Enrich EnrichCmd `cmd:"" help:"Enrich a single URL and print the result"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string  `default:":8080" env:"DEALSCOPE_ADDR" help:"HTTP bind address"`
	Seed      string  `env:"DEALSCOPE_SEED" help:"Path to a company directory JSON file (default: embedded directory)"`
	Extractor string  `default:"dom" enum:"dom,article" help:"Text extraction strategy (dom or article)"`
	Model     string  `default:"gemini-2.5-flash" env:"DEALSCOPE_MODEL" help:"Model used for enrichment"`
	ChatModel string  `default:"gemini-2.0-flash" env:"DEALSCOPE_CHAT_MODEL" help:"Model used for chat"`
	RPS       float64 `name:"rps" default:"1" help:"Max fetch requests per second per domain"`
}

// EnrichCmd is the "enrich" subcommand.
type EnrichCmd struct {
	URL string `arg:"" help:"Website URL to enrich"`
}
