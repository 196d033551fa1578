package store

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-newsletter/internal/dependency"
	"github.com/jekabolt/grbpwr-newsletter/internal/entity"
	gerr "github.com/jekabolt/grbpwr-newsletter/internal/errors"
	"github.com/jekabolt/grbpwr-newsletter/internal/middleware"
	"github.com/jekabolt/grbpwr-newsletter/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/jekabolt/grbpwr-newsletter/internal/store")

type subscribersStore struct {
	*PostgresStore
}

// Subscribers returns an object implementing Subscribers interface
func (ms *PostgresStore) Subscribers() dependency.Subscribers {
	return &subscribersStore{
		PostgresStore: ms,
	}
}

// InsertSubscriber appends one subscriptions row with a fresh id and timestamp.
func (ss *subscribersStore) InsertSubscriber(ctx context.Context, ns entity.NewSubscriber) (*entity.Subscription, error) {
	requestID := middleware.GetRequestID(ctx)
	ctx, span := tracer.Start(ctx, "store.InsertSubscriber")
	defer span.End()
	span.SetAttributes(attribute.String("request_id", requestID))

	sub := &entity.Subscription{
		ID:           uuid.New(),
		Email:        ns.Email().String(),
		Name:         ns.Name().String(),
		SubscribedAt: time.Now().UTC(),
	}

	err := ExecNamed(ctx, ss.DB(), `INSERT INTO subscriptions (id, email, name, subscribed_at) VALUES (:id, :email, :name, :subscribedAt)`, map[string]any{
		"id":           sub.ID.String(),
		"email":        sub.Email,
		"name":         sub.Name,
		"subscribedAt": sub.SubscribedAt,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert subscriber")
		slog.Default().ErrorContext(ctx, "can't insert subscriber",
			slog.String("request_id", requestID),
			slog.String("email", log.RedactEmail(sub.Email)),
			slog.String("err", err.Error()),
		)
		if ss.IsErrUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %w", gerr.ErrPersistence, gerr.ErrDuplicateSubscriber)
		}
		return nil, fmt.Errorf("%w: failed to add subscriber: %w", gerr.ErrPersistence, err)
	}

	span.SetAttributes(attribute.String("subscriber_id", sub.ID.String()))
	slog.Default().InfoContext(ctx, "new subscriber saved",
		slog.String("request_id", requestID),
		slog.String("subscriber_id", sub.ID.String()),
	)
	return sub, nil
}

func (ss *subscribersStore) ListSubscriptions(ctx context.Context) ([]entity.Subscription, error) {
	query := `SELECT id, email, name, subscribed_at FROM subscriptions ORDER BY subscribed_at`
	subs, err := QueryListNamed[entity.Subscription](ctx, ss.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list subscriptions: %w", gerr.ErrPersistence, err)
	}
	return subs, nil
}
