package httputil

import (
	"context"
	"errors"
	"net/http"

	"github.com/bissquit/newsletter/internal/pkg/ctxlog"
)

// ErrorMapping defines how a domain error maps to an HTTP status.
type ErrorMapping struct {
	Error  error
	Status int
}

// HandleError maps a domain error to an empty-bodied HTTP response using provided mappings.
// If no mapping matches, logs the error and returns 500 Internal Server Error.
func HandleError(ctx context.Context, w http.ResponseWriter, err error, mappings []ErrorMapping) {
	for _, m := range mappings {
		if errors.Is(err, m.Error) {
			Status(w, m.Status)
			return
		}
	}
	ctxlog.FromContext(ctx).Error("internal error", "error", err)
	Status(w, http.StatusInternalServerError)
}
