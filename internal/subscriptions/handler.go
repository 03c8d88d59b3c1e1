package subscriptions

import (
	"errors"
	"net/http"

	"github.com/bissquit/newsletter/internal/domain"
	"github.com/bissquit/newsletter/internal/pkg/ctxlog"
	"github.com/bissquit/newsletter/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

var errorMappings = []httputil.ErrorMapping{
	{Error: domain.ErrInvalidEmail, Status: http.StatusBadRequest},
	{Error: domain.ErrInvalidName, Status: http.StatusBadRequest},
}

// Handler handles HTTP requests for the subscriptions module.
type Handler struct {
	service *Service
}

// NewHandler creates a new subscriptions handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers subscription routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/subscriptions", h.Subscribe)
}

// Subscribe handles POST /subscriptions.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ctxlog.FromContext(r.Context()).Warn("subscription rejected", "reason", "malformed form", "error", err)
		httputil.Status(w, http.StatusBadRequest)
		return
	}

	input := SubscribeInput{
		Email: r.PostForm.Get("email"),
		Name:  r.PostForm.Get("name"),
	}
	ctx, logger := ctxlog.With(r.Context(),
		"subscriber_email", input.Email,
		"subscriber_name", input.Name,
	)

	if err := h.service.Subscribe(ctx, input); err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) || errors.Is(err, domain.ErrInvalidName) {
			logger.Warn("subscription rejected", "reason", err.Error())
		}
		httputil.HandleError(ctx, w, err, errorMappings)
		return
	}

	httputil.Status(w, http.StatusOK)
}
