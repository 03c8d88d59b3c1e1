package subscriptions

import (
	"context"
	"errors"
	"time"

	"github.com/bissquit/newsletter/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/bissquit/newsletter/internal/subscriptions"

// SubscribeInput holds raw subscription form values.
type SubscribeInput struct {
	Email string
	Name  string
}

// Service provides subscription business logic.
type Service struct {
	repo Repository
}

// NewService creates a new subscriptions service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Subscribe validates input and stores the subscriber.
//
// Returns domain.ErrInvalidEmail or domain.ErrInvalidName without touching the
// store when input is rejected, and a *PersistenceError when the store fails.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "subscribe")
	defer span.End()

	span.SetAttributes(
		attribute.String("request_id", middleware.GetReqID(ctx)),
		attribute.String("subscriber.email", input.Email),
		attribute.String("subscriber.name", input.Name),
	)

	subscriber, err := domain.ParseNewSubscriber(input.Email, input.Name)
	if err != nil {
		recordOutcome(outcomeRejected)
		span.SetStatus(codes.Error, "validation failed")
		return err
	}

	start := time.Now()
	err = s.repo.InsertSubscriber(ctx, subscriber)
	insertDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		var persistErr *PersistenceError
		if !errors.As(err, &persistErr) {
			err = &PersistenceError{Err: err}
		}
		recordOutcome(outcomeFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		return err
	}

	recordOutcome(outcomeAccepted)
	return nil
}
