package frontend

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/jekabolt/grbpwr-newsletter/internal/dependency"
	gerr "github.com/jekabolt/grbpwr-newsletter/internal/errors"
	"github.com/jekabolt/grbpwr-newsletter/internal/form"
	"github.com/jekabolt/grbpwr-newsletter/internal/metrics"
	"github.com/jekabolt/grbpwr-newsletter/internal/middleware"
	"github.com/jekabolt/grbpwr-newsletter/log"
)

// Server implements handlers for public requests.
type Server struct {
	repo        dependency.Repository
	mailer      dependency.Mailer
	metrics     *metrics.Metrics
	sendWelcome bool
}

// New creates a new server with public handlers. mailer may be nil when
// welcome emails are disabled.
func New(r dependency.Repository, m dependency.Mailer, mt *metrics.Metrics, sendWelcome bool) *Server {
	return &Server{
		repo:        r,
		mailer:      m,
		metrics:     mt,
		sendWelcome: sendWelcome && m != nil,
	}
}

// HealthCheck answers 200 with an empty body.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Subscribe stores a subscriber submitted as a urlencoded form.
func (s *Server) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, err := form.ParseSubscribeRequest(w, r)
	if err != nil {
		s.reject(w, r, err)
		return
	}
	ns, err := req.Validate()
	if err != nil {
		s.reject(w, r, err)
		return
	}

	if _, err := s.repo.Subscribers().InsertSubscriber(ctx, ns); err != nil {
		s.metrics.IncrementFailed()
		slog.Default().ErrorContext(ctx, "can't subscribe",
			slog.String("request_id", requestID),
			slog.Bool("duplicate", errors.Is(err, gerr.ErrDuplicateSubscriber)),
			slog.String("err", err.Error()),
		)
		http.Error(w, "can't subscribe", http.StatusInternalServerError)
		return
	}
	s.metrics.IncrementAccepted()

	if s.sendWelcome {
		if err := s.mailer.SendNewSubscriber(ctx, ns); err != nil {
			slog.Default().ErrorContext(ctx, "can't send welcome email",
				slog.String("request_id", requestID),
				slog.String("email", log.RedactEmail(ns.Email().String())),
				slog.String("err", err.Error()),
			)
		}
	}

	w.WriteHeader(http.StatusOK)
}

// reject answers any client fault with 400 and the fault text.
func (s *Server) reject(w http.ResponseWriter, r *http.Request, err error) {
	s.metrics.IncrementRejected()
	slog.Default().InfoContext(r.Context(), "subscription rejected",
		slog.String("request_id", middleware.GetRequestID(r.Context())),
		slog.String("err", err.Error()),
	)
	http.Error(w, err.Error(), http.StatusBadRequest)
}
