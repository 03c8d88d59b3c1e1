// Package postgres provides PostgreSQL implementation of subscriptions repository.
package postgres

import (
	"context"
	"time"

	"github.com/bissquit/newsletter/internal/domain"
	"github.com/bissquit/newsletter/internal/subscriptions"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/bissquit/newsletter/internal/subscriptions/postgres"

// DB is the subset of *pgxpool.Pool used by the repository.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository implements subscriptions.Repository using PostgreSQL.
type Repository struct {
	db    DB
	now   func() time.Time
	newID func() uuid.UUID
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db DB) *Repository {
	return &Repository{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.New,
	}
}

// InsertSubscriber stores a subscription record with a fresh ID and the current time.
func (r *Repository) InsertSubscriber(ctx context.Context, subscriber domain.NewSubscriber) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "save subscriber")
	defer span.End()

	id := r.newID()
	span.SetAttributes(attribute.String("subscription.id", id.String()))

	query := `
		INSERT INTO subscriptions (id, email, name, subscribed_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query,
		id,
		subscriber.Email.String(),
		subscriber.Name.String(),
		r.now(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return &subscriptions.PersistenceError{Err: err}
	}

	return nil
}
