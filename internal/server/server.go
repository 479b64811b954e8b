package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/config"
	"github.com/jonathan/candidate-screener/internal/db"
	"github.com/jonathan/candidate-screener/internal/interview"
	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/jonathan/candidate-screener/internal/reporting"
	"github.com/jonathan/candidate-screener/internal/screening"
	"github.com/jonathan/candidate-screener/internal/server/middleware"
	"github.com/jonathan/candidate-screener/internal/server/ratelimit"
)

// Store persists screenings and evaluation reports. *db.DB implements it.
type Store interface {
	Ping(ctx context.Context) error
	SaveScreening(ctx context.Context, in db.ScreeningInput) (uuid.UUID, error)
	GetScreening(ctx context.Context, id uuid.UUID) (*db.Screening, error)
	ListScreenings(ctx context.Context, jobHash string, limit int) ([]db.Screening, error)
	SaveEvaluationReport(ctx context.Context, report *reporting.BatchReport, sessionID string) (uuid.UUID, error)
	GetEvaluationReport(ctx context.Context, id uuid.UUID) (*db.EvaluationReport, error)
}

var _ Store = (*db.DB)(nil)

// Config holds server configuration
type Config struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Engine serves every scoring route; required
	Engine *screening.Engine
	// Interviews holds text interview sessions; nil creates one bound to Engine
	Interviews *interview.Engine
	// SessionTTL applies to the interview engine created when Interviews is nil;
	// zero uses interview.DefaultSessionTTL
	SessionTTL time.Duration
	// Store enables persistence; nil disables the storage routes
	Store Store
	// RateLimit configures the limiter; nil uses ratelimit defaults
	RateLimit *ratelimit.Config
	// Auth enables bearer tokens on /v1 routes when its secret is set
	Auth   *config.JWTConfig
	Logger *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	engine      *screening.Engine
	interviews  *interview.Engine
	store       Store
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	log         *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Engine == nil {
		return nil, fmt.Errorf("server: engine is required")
	}
	s := &Server{
		engine:      cfg.Engine,
		interviews:  cfg.Interviews,
		store:       cfg.Store,
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		log:         logger.WithFields(cfg.Logger, zap.String("component", "server")),
	}
	if s.interviews == nil {
		s.interviews = interview.NewEngine(cfg.Engine.Vocabulary(), cfg.Engine.Evaluator(), nil)
		if cfg.SessionTTL > 0 {
			s.interviews.SetSessionTTL(cfg.SessionTTL)
		}
	}
	if cfg.Auth != nil && cfg.Auth.Enabled() {
		s.jwtService = NewJWTService(cfg.Auth)
	}

	v1 := http.NewServeMux()
	v1.HandleFunc("POST /v1/extract/skills", s.handleExtractSkills)
	v1.HandleFunc("POST /v1/extract/education", s.handleExtractEducation)
	v1.HandleFunc("POST /v1/extract/experience", s.handleExtractExperience)
	v1.HandleFunc("POST /v1/requirements", s.handleRequirements)
	v1.HandleFunc("POST /v1/match", s.handleMatch)
	v1.HandleFunc("POST /v1/rank", s.handleRank)
	v1.HandleFunc("POST /v1/evaluate", s.handleEvaluate)
	v1.HandleFunc("POST /v1/report", s.handleReport)
	v1.HandleFunc("POST /v1/batch", s.handleBatch)
	v1.HandleFunc("POST /v1/batch/stream", s.handleBatchStream)
	v1.HandleFunc("GET /v1/screenings", s.handleListScreenings)
	v1.HandleFunc("GET /v1/screenings/{id}", s.handleGetScreening)
	v1.HandleFunc("GET /v1/reports/{id}", s.handleGetReport)
	v1.HandleFunc("POST /v1/interviews", s.handleStartInterview)
	v1.HandleFunc("GET /v1/interviews/{id}", s.handleGetInterview)
	v1.HandleFunc("DELETE /v1/interviews/{id}", s.handleDeleteInterview)
	v1.HandleFunc("POST /v1/interviews/{id}/answers", s.handleSubmitAnswer)
	v1.HandleFunc("GET /v1/interviews/{id}/report", s.handleInterviewReport)

	var api http.Handler = v1
	if s.jwtService != nil {
		api = middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(v1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/v1/", api)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  durationOr(cfg.ReadTimeout, 30*time.Second),
		WriteTimeout: durationOr(cfg.WriteTimeout, 60*time.Second),
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is canceled or the process receives SIGINT or SIGTERM,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr), zap.Bool("auth", s.jwtService != nil), zap.Bool("persistence", s.store != nil))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.rateLimiter.Stop()
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.rateLimiter.Stop()
	s.log.Info("server stopped")
	return nil
}

// Close releases background resources without serving
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps SSE responses streaming through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "database": "disabled"}
	if s.store != nil {
		resp["database"] = "ok"
		if err := s.store.Ping(r.Context()); err != nil {
			s.log.Warn("database ping failed", zap.Error(err))
			resp["status"] = "degraded"
			resp["database"] = "unreachable"
			s.jsonResponse(w, http.StatusServiceUnavailable, resp)
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail maps err to a status and writes it. Server errors are logged.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	s.errorResponse(w, status, errorMessage(err))
}

// extractClientID returns the caller's IP from RemoteAddr.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		// whole seconds, rounded up
		secs := int((info.RetryAfter + time.Second - 1) / time.Second)
		response["retry_after"] = secs
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}
	s.log.Warn("rate limit exceeded",
		zap.String("client", extractClientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit))
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
