// Package server provides the HTTP REST API for portfolio management and the
// AI operations built on top of it.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-studio/internal/config"
	"github.com/jonathan/portfolio-studio/internal/db"
	"github.com/jonathan/portfolio-studio/internal/llm"
	"github.com/jonathan/portfolio-studio/internal/pipeline"
	"github.com/jonathan/portfolio-studio/internal/server/middleware"
	"github.com/jonathan/portfolio-studio/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	pipeline    *pipeline.Service
	llmClient   llm.Client
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	logger      *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	RedisAddr   string
	UseBrowser  bool
	Logger      *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmClient, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	s := &Server{
		db:        database,
		llmClient: llmClient,
		pipeline:  pipeline.NewService(database, llmClient, logger),
		logger:    logger,
	}

	// Counters go to Redis when an address is configured; a single instance
	// runs fine on the in-memory store.
	var limitStore ratelimit.Store
	if cfg.RedisAddr != "" {
		limitStore = ratelimit.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	} else {
		limitStore = ratelimit.NewMemoryStore()
	}
	s.rateLimiter = ratelimit.NewLimiter(limitStore, ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s)

	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /catalog/templates", s.handleListTemplates)
	mux.HandleFunc("GET /catalog/themes", s.handleListThemes)

	mux.Handle("POST /auth/register", s.withClassLimit(ratelimit.ClassAuth, http.HandlerFunc(s.authHandler.Register)))
	mux.Handle("POST /auth/login", s.withClassLimit(ratelimit.ClassAuth, http.HandlerFunc(s.authHandler.Login)))

	// Portfolio CRUD, authenticated.
	mux.Handle("GET /portfolio", requireAuth(http.HandlerFunc(s.handleGetPortfolio)))
	mux.Handle("PUT /portfolio", requireAuth(http.HandlerFunc(s.handlePutPortfolio)))
	mux.Handle("PUT /portfolio/appearance", requireAuth(http.HandlerFunc(s.handlePutAppearance)))

	// AI operations, authenticated and limited per user. The limit runs
	// after auth so the counter key is the user, not the IP.
	aiRoute := func(h http.HandlerFunc) http.Handler {
		return requireAuth(s.withClassLimit(ratelimit.ClassAI, h))
	}
	mux.Handle("POST /ai/analyze", aiRoute(s.handleAnalyze))
	mux.Handle("POST /ai/recommend-template", aiRoute(s.handleRecommend))
	mux.Handle("POST /ai/rewrite", aiRoute(s.handleRewrite))
	mux.Handle("POST /ai/optimize-for-job", aiRoute(s.handleOptimize))
	mux.Handle("POST /ai/generate-from-resume", aiRoute(s.handleGenerate))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // AI operations can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start listens for requests until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	_ = s.llmClient.Close()
	s.db.Close()
	s.logger.Info("server stopped")
	return err
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
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
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// withClassLimit applies the named rate limit class to a handler. Per-user
// classes key counters by the authenticated user and must run after the auth
// middleware; everything else keys by client IP.
func (s *Server) withClassLimit(class string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientIP(r)
		if s.rateLimiter.PerUser(class) {
			if userID, err := middleware.GetUserID(r); err == nil {
				clientID = userID.String()
			}
		}

		info := s.rateLimiter.Allow(r.Context(), class, clientID)
		s.setRateLimitHeaders(w, info)
		if !info.Allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// extractClientIP extracts the client IP from the request.
// X-Forwarded-For is deliberately ignored; it is spoofable without a trusted
// proxy in front.
func (s *Server) extractClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	retryAfter := int(info.RetryAfter.Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))

	s.logger.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Duration("retry_after", info.RetryAfter),
	)
	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate_limit_exceeded",
		"message":     "Rate limit exceeded. Please try again later.",
		"limit":       info.Limit,
		"retry_after": retryAfter,
	})
}
