package log

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	mw "github.com/jekabolt/grbpwr-newsletter/internal/middleware"
)

type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}

var (
	initOnce sync.Once
	logger   *slog.Logger
)

// Init configures the process-wide slog default. It is the only place the
// default logger is replaced; calls after the first return the first logger.
func Init(c Config, w io.Writer) *slog.Logger {
	initOnce.Do(func() {
		logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     slog.Level(c.Level),
			AddSource: c.AddSource,
		}))
		slog.SetDefault(logger)
	})
	return logger
}

// RequestLogger logs one line per request with its correlation id.
func RequestLogger(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				l.InfoContext(r.Context(), "request handled",
					slog.String("request_id", mw.GetRequestID(r.Context())),
					slog.String("client_ip", mw.GetClientIP(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", status),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// RedactEmail masks the local part of an address for safe logging.
// "john.doe@example.com" -> "jo***@example.com"
func RedactEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***@***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + domain
	}
	return "***@" + domain
}
