package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/dealscope"
)

// DefaultChatTimeout bounds the total processing time of a chat relay
// before the server gives up on the upstream model.
const DefaultChatTimeout = 30 * time.Second

// ShutdownTimeout is the time allowed for graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// Server is the HTTP server for the dealscope API. It wraps a ServeMux and
// delegates all domain behavior to the injected services.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux

	// Bind address, e.g. ":8080". Set before calling Open.
	Addr string

	Logger *slog.Logger

	// Services used by the handlers.
	CompanyService     dealscope.CompanyService
	ListService        dealscope.ListService
	SavedSearchService dealscope.SavedSearchService
	EnrichmentService  dealscope.EnrichmentService
	EnrichmentCache    dealscope.EnrichmentCacheService
	Chatter            dealscope.Chatter

	// ChatTimeout overrides DefaultChatTimeout when positive.
	ChatTimeout time.Duration
}

// NewServer creates a new Server with all routes registered. Services must
// be assigned before the server starts handling requests.
func NewServer() *Server {
	s := &Server{
		mux:         http.NewServeMux(),
		Logger:      slog.Default(),
		ChatTimeout: DefaultChatTimeout,
	}
	s.server = &http.Server{Handler: s}

	s.mux.HandleFunc("GET /api/companies", s.handleCompanyIndex)
	s.mux.HandleFunc("GET /api/companies/facets", s.handleCompanyFacets)
	s.mux.HandleFunc("GET /api/companies/{id}", s.handleCompanyShow)
	s.mux.HandleFunc("POST /api/companies/{id}/enrich", s.handleCompanyEnrich)
	s.mux.HandleFunc("GET /api/companies/{id}/enrichment", s.handleCompanyEnrichment)

	s.mux.HandleFunc("POST /api/enrich", s.handleEnrichURL)
	s.mux.HandleFunc("POST /api/chat", s.handleChat)

	s.mux.HandleFunc("POST /api/lists", s.handleListCreate)
	s.mux.HandleFunc("GET /api/lists", s.handleListIndex)
	s.mux.HandleFunc("DELETE /api/lists/{id}", s.handleListDelete)
	s.mux.HandleFunc("GET /api/lists/{id}/companies", s.handleListCompanies)
	s.mux.HandleFunc("PUT /api/lists/{id}/companies/{companyID}", s.handleListAddCompany)
	s.mux.HandleFunc("DELETE /api/lists/{id}/companies/{companyID}", s.handleListRemoveCompany)
	s.mux.HandleFunc("GET /api/lists/{id}/export", s.handleListExport)

	s.mux.HandleFunc("POST /api/searches", s.handleSavedSearchCreate)
	s.mux.HandleFunc("GET /api/searches", s.handleSavedSearchIndex)
	s.mux.HandleFunc("DELETE /api/searches/{id}", s.handleSavedSearchDelete)

	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	return s
}

// ServeHTTP implements http.Handler with request logging around the mux.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()
	rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

	s.mux.ServeHTTP(rw, r)

	s.Logger.Info("http request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rw.status,
		"duration", time.Since(begin),
	)
}

// Open begins listening on the bind address. It returns immediately; the
// server runs in a background goroutine until Close is called.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server terminated", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Port returns the port the server is listening on. Only valid after Open.
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON encodes v as the response body with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encoding failed", "path", r.URL.Path, "error", err)
	}
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return dealscope.Errorf(dealscope.EINVALID, "invalid JSON body")
	}
	return nil
}

// statusWriter records the response status for logging. Flush is forwarded
// so streaming handlers keep working behind the wrapper.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
