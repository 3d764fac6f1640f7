package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dealscope"
	"github.com/fwojciec/dealscope/enrich"
	"github.com/fwojciec/dealscope/fs"
	"github.com/fwojciec/dealscope/gemini"
	"github.com/fwojciec/dealscope/goquery"
	dealhttp "github.com/fwojciec/dealscope/http"
	dealslog "github.com/fwojciec/dealscope/slog"
	"github.com/fwojciec/dealscope/sqlite"
	"github.com/fwojciec/dealscope/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Load environment from .env if present; real env vars take precedence.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dealscope"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dealscope --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Company directory. An empty seed path means the embedded directory.
	seed := ""
	if cmd == "serve" {
		seed = cli.Serve.Seed
	}
	companies, err := fs.NewCompanyService(seed)
	if err != nil {
		return fmt.Errorf("failed to load company directory: %w", err)
	}
	deps.Companies = companies

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DEALSCOPE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Lists = sqlite.NewListService(m.DB)
	deps.Searches = sqlite.NewSavedSearchService(m.DB)
	deps.EnrichmentCache = sqlite.NewEnrichmentCacheService(m.DB)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	fetcher := dealhttp.NewFetcher()
	defer fetcher.Close()

	var extractor dealscope.Extractor = goquery.NewExtractor()
	model := gemini.DefaultAnalyzerModel
	rps := 1.0
	if cmd == "serve" {
		if cli.Serve.Extractor == "article" {
			extractor = trafilatura.NewExtractor()
		}
		model = cli.Serve.Model
		rps = cli.Serve.RPS
	}

	enricher := &enrich.Service{
		Companies: companies,
		Fetcher:   dealslog.NewLoggingFetcher(fetcher, deps.Logger),
		Extractor: extractor,
		Analyzer:  gemini.NewAnalyzer(client, model),
		Cache:     deps.EnrichmentCache,
		Limiter:   enrich.NewDomainLimiter(rps),
	}
	deps.Enricher = dealslog.NewLoggingEnrichmentService(enricher, deps.Logger)

	if cmd == "serve" {
		deps.Chatter = gemini.NewChatter(client, companies, cli.Serve.ChatModel)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DEALSCOPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "dealscope.db"
	}
	dir := filepath.Join(home, ".dealscope")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "dealscope.db")
}
