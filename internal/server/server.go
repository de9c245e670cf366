package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/jobboard/internal/catalog"
	"github.com/jonathan/jobboard/internal/llm"
	"github.com/jonathan/jobboard/internal/server/middleware"
	"github.com/jonathan/jobboard/internal/sink"
	"github.com/jonathan/jobboard/internal/types"
	"golang.org/x/sync/errgroup"
)

// GatewayPath is the single AI proxy endpoint.
const GatewayPath = "/api/gemini"

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 30 * time.Second
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	gateway    *gateway
	catalog    *catalog.Catalog
}

// Config holds server configuration
type Config struct {
	Port int
	// Oracle is nil when no credential was configured; every gateway request then fails.
	Oracle        llm.Client
	Sink          sink.Sink
	Catalog       *catalog.Catalog
	OracleTimeout time.Duration
	AckDelay      time.Duration
}

// New creates a new server instance
func New(cfg Config) *Server {
	if cfg.Sink == nil {
		cfg.Sink = sink.NewLogSink(nil)
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}

	s := &Server{
		gateway: &gateway{
			oracle:        cfg.Oracle,
			sink:          cfg.Sink,
			oracleTimeout: cfg.OracleTimeout,
			ackDelay:      cfg.AckDelay,
		},
		catalog: cfg.Catalog,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.OracleTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(GatewayPath, s.handleGateway)
	mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	mux.HandleFunc("GET /api/jobs/{id}", s.handleGetJob)
	mux.HandleFunc("GET /health", s.handleHealth)

	return middleware.RequestID(s.withLogging(s.withCORS(mux)))
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("[server] starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("[server] shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.close()
	log.Println("[server] stopped")
	return err
}

func (s *Server) close() {
	if s.gateway.oracle != nil {
		if err := s.gateway.oracle.Close(); err != nil {
			log.Printf("[server] closing oracle client: %v", err)
		}
	}
	if err := s.gateway.sink.Close(); err != nil {
		log.Printf("[server] closing sink: %v", err)
	}
}

// withCORS adds CORS headers and answers pre-flight requests
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := middleware.GetRequestID(r.Context())
		log.Printf("[%s] %s %s %s", r.Method, r.URL.Path, r.RemoteAddr, id)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", r.Method, r.URL.Path, id, time.Since(start))
	})
}

// handleGateway validates and dispatches one AI proxy request.
// Checks run in order: method, credential, envelope, tag, payload.
func (s *Server) handleGateway(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.errorResponse(w, r, &ErrMethodNotAllowed{Method: r.Method, Allowed: http.MethodPost})
		return
	}

	if s.gateway.oracle == nil {
		s.errorResponse(w, r, &ErrServerConfiguration{})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, r, fmt.Errorf("failed to read request body: %w", err))
		return
	}

	req, err := types.DecodeRequest(body)
	if err != nil {
		s.errorResponse(w, r, classifyDecodeError(err))
		return
	}

	resp, err := req.Dispatch(r.Context(), s.gateway)
	if err != nil {
		s.errorResponse(w, r, fmt.Errorf("%s: %w", req.Type(), err))
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	oracle := "configured"
	if s.gateway.oracle == nil {
		oracle = "missing"
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "oracle": oracle})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse logs err and writes its client-safe form
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	log.Printf("[gateway] %s %s %s -> %d: %v", middleware.GetRequestID(r.Context()), r.Method, r.URL.Path, status, err)
	s.jsonResponse(w, status, types.ErrorResponse{Error: PublicMessage(err)})
}
