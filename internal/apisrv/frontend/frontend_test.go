package frontend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-newsletter/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-newsletter/internal/entity"
	gerr "github.com/jekabolt/grbpwr-newsletter/internal/errors"
	"github.com/jekabolt/grbpwr-newsletter/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SubscribeSuite struct {
	suite.Suite
	repo    *mocks.Repository
	subs    *mocks.Subscribers
	mailer  *mocks.Mailer
	metrics *metrics.Metrics
}

func (s *SubscribeSuite) SetupTest() {
	s.repo = mocks.NewRepository(s.T())
	s.subs = mocks.NewSubscribers(s.T())
	s.mailer = mocks.NewMailer(s.T())
	s.metrics = metrics.New()
}

func (s *SubscribeSuite) server(sendWelcome bool) *Server {
	return New(s.repo, s.mailer, s.metrics, sendWelcome)
}

func postForm(srv *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Subscribe(rec, req)
	return rec
}

func stored(ns entity.NewSubscriber) *entity.Subscription {
	return &entity.Subscription{
		ID:           uuid.New(),
		Email:        ns.Email().String(),
		Name:         ns.Name().String(),
		SubscribedAt: time.Now().UTC(),
	}
}

func (s *SubscribeSuite) TestValidForm() {
	s.repo.EXPECT().Subscribers().Return(s.subs)
	s.subs.EXPECT().InsertSubscriber(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ns entity.NewSubscriber) (*entity.Subscription, error) {
			s.Equal("le guin", ns.Name().String())
			s.Equal("ursula_le_guin@gmail.com", ns.Email().String())
			return stored(ns), nil
		})

	rec := postForm(s.server(false), "name=le%20guin&email=ursula_le_guin%40gmail.com")
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Subscriptions.WithLabelValues(metrics.OutcomeAccepted)))
}

func (s *SubscribeSuite) TestMissingOrInvalidFields() {
	cases := map[string]string{
		"missing email":      "name=le%20guin",
		"missing name":       "email=ursula_le_guin%40gmail.com",
		"missing both":       "",
		"empty name":         "name=&email=ursula_le_guin%40gmail.com",
		"empty email":        "name=Ursula&email=",
		"invalid email":      "name=Ursula&email=definitely-not-an-email",
		"forbidden name":     "name=%3Cscript%3E&email=ursula_le_guin%40gmail.com",
		"malformed encoding": "name=%zz&email=ursula_le_guin%40gmail.com",
	}
	srv := s.server(false)
	for name, body := range cases {
		rec := postForm(srv, body)
		s.Equal(http.StatusBadRequest, rec.Code, "%s should be rejected", name)
	}
	s.Equal(float64(len(cases)), testutil.ToFloat64(s.metrics.Subscriptions.WithLabelValues(metrics.OutcomeRejected)))
}

func (s *SubscribeSuite) TestRejectionExplainsFault() {
	srv := s.server(false)
	for body, want := range map[string]string{
		"name=le%20guin": gerr.ErrMissingField.Error(),
		"name=%zz&email=ursula_le_guin%40gmail.com": gerr.ErrMalformedForm.Error(),
		"name=Ursula&email=definitely-not-an-email": "invalid subscriber email",
	} {
		rec := postForm(srv, body)
		s.Equal(http.StatusBadRequest, rec.Code, body)
		s.Contains(rec.Body.String(), want, body)
	}
}

func (s *SubscribeSuite) TestPersistenceFailure() {
	s.repo.EXPECT().Subscribers().Return(s.subs)
	s.subs.EXPECT().InsertSubscriber(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: connection refused", gerr.ErrPersistence))

	rec := postForm(s.server(true), "name=le%20guin&email=ursula_le_guin%40gmail.com")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Subscriptions.WithLabelValues(metrics.OutcomeFailed)))
}

func (s *SubscribeSuite) TestDuplicateIsServerError() {
	s.repo.EXPECT().Subscribers().Return(s.subs)
	s.subs.EXPECT().InsertSubscriber(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", gerr.ErrPersistence, gerr.ErrDuplicateSubscriber))

	rec := postForm(s.server(false), "name=le%20guin&email=ursula_le_guin%40gmail.com")
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *SubscribeSuite) TestWelcomeEmail() {
	s.repo.EXPECT().Subscribers().Return(s.subs)
	s.subs.EXPECT().InsertSubscriber(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ns entity.NewSubscriber) (*entity.Subscription, error) {
			return stored(ns), nil
		})
	s.mailer.EXPECT().SendNewSubscriber(mock.Anything, mock.Anything).Return(nil).Once()

	rec := postForm(s.server(true), "name=le%20guin&email=ursula_le_guin%40gmail.com")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SubscribeSuite) TestWelcomeEmailFailureKeepsSuccess() {
	s.repo.EXPECT().Subscribers().Return(s.subs)
	s.subs.EXPECT().InsertSubscriber(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ns entity.NewSubscriber) (*entity.Subscription, error) {
			return stored(ns), nil
		})
	s.mailer.EXPECT().SendNewSubscriber(mock.Anything, mock.Anything).Return(errors.New("sendgrid down"))

	rec := postForm(s.server(true), url.Values{"name": {"le guin"}, "email": {"ursula_le_guin@gmail.com"}}.Encode())
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
}

func TestSubscribeSuite(t *testing.T) {
	suite.Run(t, new(SubscribeSuite))
}

func TestHealthCheck(t *testing.T) {
	srv := New(nil, nil, metrics.New(), true)
	rec := httptest.NewRecorder()
	srv.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health_check", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
	assert.False(t, srv.sendWelcome)
}
