// Package subscriptions accepts newsletter subscription requests and stores subscribers.
package subscriptions

import (
	"context"

	"github.com/bissquit/newsletter/internal/domain"
)

// Repository defines the interface for subscription data access.
type Repository interface {
	// InsertSubscriber stores a new subscription record. It is attempted once
	// and does not deduplicate by email.
	InsertSubscriber(ctx context.Context, subscriber domain.NewSubscriber) error
}
