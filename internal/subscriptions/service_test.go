package subscriptions

import (
	"context"
	"errors"
	"testing"

	"github.com/bissquit/newsletter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	inserted  []domain.NewSubscriber
	insertErr error
}

func (m *mockRepository) InsertSubscriber(_ context.Context, subscriber domain.NewSubscriber) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, subscriber)
	return nil
}

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("tracer provider shutdown: %v", err)
		}
	})
	return recorder
}

func TestService_Subscribe_Accepted(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo)

	err := service.Subscribe(context.Background(), SubscribeInput{
		Email: "ursula_le_guin@gmail.com",
		Name:  "le guin",
	})
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "ursula_le_guin@gmail.com", repo.inserted[0].Email.String())
	assert.Equal(t, "le guin", repo.inserted[0].Name.String())
}

func TestService_Subscribe_RejectedBeforePersistence(t *testing.T) {
	tests := []struct {
		name    string
		input   SubscribeInput
		wantErr error
	}{
		{name: "missing email", input: SubscribeInput{Name: "le guin"}, wantErr: domain.ErrInvalidEmail},
		{name: "missing name", input: SubscribeInput{Email: "ursula_le_guin@gmail.com"}, wantErr: domain.ErrInvalidName},
		{name: "missing both", input: SubscribeInput{}, wantErr: domain.ErrInvalidEmail},
		{name: "invalid email", input: SubscribeInput{Email: "definitely-not-an-email", Name: "le guin"}, wantErr: domain.ErrInvalidEmail},
		{name: "forbidden name", input: SubscribeInput{Email: "ursula_le_guin@gmail.com", Name: "<script>"}, wantErr: domain.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			service := NewService(repo)

			err := service.Subscribe(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.inserted)
		})
	}
}

func TestService_Subscribe_PersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	service := NewService(&mockRepository{insertErr: cause})

	err := service.Subscribe(context.Background(), SubscribeInput{
		Email: "ursula_le_guin@gmail.com",
		Name:  "le guin",
	})
	require.Error(t, err)

	var persistErr *PersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.ErrorIs(t, err, cause)
}

func TestService_Subscribe_KeepsRepositoryPersistenceError(t *testing.T) {
	original := &PersistenceError{Err: errors.New("timeout")}
	service := NewService(&mockRepository{insertErr: original})

	err := service.Subscribe(context.Background(), SubscribeInput{
		Email: "ursula_le_guin@gmail.com",
		Name:  "le guin",
	})
	assert.Same(t, original, err)
}

func TestService_Subscribe_Span(t *testing.T) {
	recorder := setupTestTracer(t)
	service := NewService(&mockRepository{})

	require.NoError(t, service.Subscribe(context.Background(), SubscribeInput{
		Email: "ursula_le_guin@gmail.com",
		Name:  "le guin",
	}))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "subscribe", spans[0].Name())

	attrs := make(map[string]string)
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "ursula_le_guin@gmail.com", attrs["subscriber.email"])
	assert.Equal(t, "le guin", attrs["subscriber.name"])
	assert.Contains(t, attrs, "request_id")
}

func TestService_Subscribe_SpanMarksFailure(t *testing.T) {
	recorder := setupTestTracer(t)
	service := NewService(&mockRepository{insertErr: errors.New("boom")})

	require.Error(t, service.Subscribe(context.Background(), SubscribeInput{
		Email: "ursula_le_guin@gmail.com",
		Name:  "le guin",
	}))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}
