package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/simstore/build-advisor/internal/auth"
	"github.com/simstore/build-advisor/internal/catalog"
	"github.com/simstore/build-advisor/internal/config"
	"github.com/simstore/build-advisor/internal/mail"
	"github.com/simstore/build-advisor/internal/otp"
	"github.com/simstore/build-advisor/internal/storage"
)

// Server represents the HTTP API server
type Server struct {
	config  config.ServerConfig
	router  *chi.Mux
	catalog *catalog.Store
	repo    storage.Repository
	auth    *auth.Service
	otp     *otp.Store
	mailer  mail.Sender
	static  string
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	parts *catalog.Store,
	repo storage.Repository,
	authService *auth.Service,
	otpStore *otp.Store,
	mailer mail.Sender,
	staticDir string,
) *Server {
	s := &Server{
		config:  cfg,
		catalog: parts,
		repo:    repo,
		auth:    authService,
		otp:     otpStore,
		mailer:  mailer,
		static:  staticDir,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration (the storefront runs on a different origin)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health checks
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	// Build advisor (public)
	r.Get("/api/ai-build", s.handleAIBuild)
	r.Post("/api/bottleneck", s.handleBottleneck)
	r.Get("/api/parts", s.handleListParts)
	r.Get("/api/components/{task}", s.handleSampleComponents)

	// Accounts
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.Post("/send-otp", s.handleSendOTP)
		r.Post("/verify-otp", s.handleVerifyOTP)
		r.Post("/reset-password", s.handleResetPassword)
	})

	// Products (public)
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", s.handleListProducts)
		r.Get("/categories/list", s.handleListCategories)
		r.Get("/category/{category}", s.handleProductsByCategory)
	})

	// Cart and orders require a logged-in user
	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Route("/api/cart", func(r chi.Router) {
			r.Post("/", s.handleAddCartItem)
			r.Get("/", s.handleGetCart)
			r.Delete("/item/{id}", s.handleDeleteCartItem)
		})

		r.Route("/api/orders", func(r chi.Router) {
			r.Post("/", s.handleCreateOrder)
			r.Get("/", s.handleListOrders)
		})
	})

	// Storefront bundle, when configured
	if s.static != "" {
		s.setupStatic(r)
	}

	s.router = r
}

// setupStatic serves the storefront bundle with an index.html fallback for
// client-side routes.
func (s *Server) setupStatic(r *chi.Mux) {
	fileServer := http.FileServer(http.Dir(s.static))
	index := filepath.Join(s.static, "index.html")

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}

		path := filepath.Join(s.static, filepath.Clean(req.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, req)
			return
		}

		http.ServeFile(w, req, index)
	})
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
