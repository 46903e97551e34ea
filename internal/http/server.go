// Package http exposes the JSON API: dashboard reads, month navigation,
// and the bill, todo, and paycheck mutations.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"billfold/internal/middleware/ratelimit"
	"billfold/internal/middleware/security"
	"billfold/internal/middleware/trace"
	"billfold/internal/planner"
)

type Server struct {
	http.Server
	planner *planner.Planner

	rateLimiter  *ratelimit.Limiter
	shutdownOnce sync.Once
}

// Config holds the server's tunables.
type Config struct {
	Addr              string
	RequestsPerMinute int
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(cfg Config, p *planner.Planner) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              cfg.Addr,
			Handler:           nil, // set below, after the middleware chain
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		planner: p,
		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: cfg.RequestsPerMinute,
		}),
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/view/prev", s.handleViewPrev)
	mux.HandleFunc("/api/view/next", s.handleViewNext)

	mux.HandleFunc("/api/bills", s.handleAddBill)
	mux.HandleFunc("/api/bills/update", s.handleUpdateBill)
	mux.HandleFunc("/api/bills/delete", s.handleDeleteBill)
	mux.HandleFunc("/api/bills/skip", s.handleSkipBill)
	mux.HandleFunc("/api/bills/paid", s.handleSetBillPaid)

	mux.HandleFunc("/api/todos", s.handleAddTodo)
	mux.HandleFunc("/api/todos/update", s.handleUpdateTodo)
	mux.HandleFunc("/api/todos/delete", s.handleDeleteTodo)

	mux.HandleFunc("/api/paychecks", s.handleAddPaycheck)
	mux.HandleFunc("/api/paychecks/delete", s.handleDeletePaycheck)

	chain := security.HeadersMiddleware(security.DefaultHeadersConfig())(
		trace.NewMiddleware(extractClientIP).Middleware(
			instrumentHandler(
				s.rateLimiter.Middleware(extractClientIP)(mux))))
	s.Server.Handler = chain

	return s
}

// Shutdown stops the server and its background routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.Shutdown()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// extractClientIP resolves the client address, considering proxy headers.
func extractClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		if i := strings.IndexByte(ip, ','); i >= 0 {
			ip = ip[:i]
		}
		return strings.TrimSpace(ip)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.planner == nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "reason", "planner not wired")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
