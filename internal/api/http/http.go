package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jekabolt/grbpwr-newsletter/internal/apisrv/frontend"
	"github.com/jekabolt/grbpwr-newsletter/internal/metrics"
	mw "github.com/jekabolt/grbpwr-newsletter/internal/middleware"
	"github.com/jekabolt/grbpwr-newsletter/log"
)

// Config is the configuration for the http server
type Config struct {
	Port              string        `mapstructure:"port"`
	Address           string        `mapstructure:"address"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	ln   net.Listener
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Listen binds the configured address. Port "0" picks a free ephemeral port.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", net.JoinHostPort(s.c.Address, s.c.Port))
	if err != nil {
		return fmt.Errorf("can't listen on %s:%s: %w", s.c.Address, s.c.Port, err)
	}
	s.ln = ln
	return nil
}

// Port returns the bound port, or 0 before Listen.
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Addr returns the base URL of the bound listener.
func (s *Server) Addr() string {
	host := s.c.Address
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, fmt.Sprint(s.Port())))
}

// NewRouter wires the public routes and the middleware stack.
func NewRouter(c *Config, fs *frontend.Server, m *metrics.Metrics, l *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(mw.ClientIdentifier)
	r.Use(log.RequestLogger(l))
	r.Use(m.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, c.AllowedOrigins)
		},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", mw.RequestIDHeader},
		ExposedHeaders: []string{mw.RequestIDHeader},
	}))

	r.Get("/health_check", fs.HealthCheck)
	r.Post("/subscriptions", fs.Subscribe)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}

// Start serves handler on the bound listener until Stop is called.
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	if s.ln == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.hs = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.c.ReadHeaderTimeout,
	}

	go func() {
		slog.Default().InfoContext(ctx, "newsletter new listener", slog.String("addr", s.Addr()))
		err := s.hs.Serve(s.ln)
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop drains in-flight requests within the shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		if s.ln != nil {
			return s.ln.Close()
		}
		return nil
	}
	timeout := s.c.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || origin == allowedOrigin {
			return true
		}
	}

	return false
}
