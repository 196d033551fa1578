package dependency

import (
	"context"
	"database/sql"

	"github.com/jekabolt/grbpwr-newsletter/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Subscribers interface {
		// InsertSubscriber stores a validated subscriber under a fresh id and timestamp.
		InsertSubscriber(ctx context.Context, ns entity.NewSubscriber) (*entity.Subscription, error)
		// ListSubscriptions returns every stored subscription ordered by subscription time.
		ListSubscriptions(ctx context.Context) ([]entity.Subscription, error)
	}

	Repository interface {
		Subscribers() Subscribers
		Ping(ctx context.Context) error
		Close()
		IsErrUniqueViolation(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
		Rebind(query string) string

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	Mailer interface {
		SendEmail(ctx context.Context, to entity.SubscriberEmail, subject, htmlContent, textContent string) error
		// SendNewSubscriber sends the welcome message to a freshly stored subscriber.
		SendNewSubscriber(ctx context.Context, ns entity.NewSubscriber) error
	}
)
