//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type savedSubscription struct {
	ID           string
	Email        string
	Name         string
	SubscribedAt time.Time
}

// resetSubscriptions empties the subscriptions table.
func resetSubscriptions(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(context.Background(), `TRUNCATE subscriptions`)
	require.NoError(t, err)
}

// fetchSubscriptions returns all stored rows, oldest first.
func fetchSubscriptions(t *testing.T) []savedSubscription {
	t.Helper()

	rows, err := testDB.Query(context.Background(), `
		SELECT id::text, email, name, subscribed_at
		FROM subscriptions
		ORDER BY subscribed_at
	`)
	require.NoError(t, err)
	defer rows.Close()

	var out []savedSubscription
	for rows.Next() {
		var s savedSubscription
		require.NoError(t, rows.Scan(&s.ID, &s.Email, &s.Name, &s.SubscribedAt))
		out = append(out, s)
	}
	require.NoError(t, rows.Err())

	return out
}
