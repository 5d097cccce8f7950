// Package v1handler serves the fortune HTTP API: the category listing and
// random fortunes.
package v1handler

import (
	"context"
	"errors"
	"fmt"
	"fortune/internal/fortune"
	"fortune/pkg/logger"
	"fortune/pkg/serrors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// CategoriesPath is the only path not answered with a fortune.
const CategoriesPath = "/categories"

// Error bodies. Clients only ever see one of these two messages.
const (
	MessageLoadFailed  = "Fail to load fortune"
	MessageParseFailed = "Fail to parse fortune"
)

// Deps are the collaborators of Handler.
type Deps struct {
	// Fortuner provides categories and fortunes.
	Fortuner fortune.Fortuner
	// MeterProvider records request counts. A no-op provider is used when nil.
	MeterProvider metric.MeterProvider
}

type Handler struct {
	deps     Deps
	requests metric.Int64Counter
}

// New creates a Handler and its instruments.
func New(deps Deps) (*Handler, error) {
	mp := deps.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}

	requests, err := mp.Meter("fortune/api/v1").Int64Counter("fortune.http.requests",
		metric.WithDescription("HTTP requests answered by the fortune API."),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	return &Handler{deps: deps, requests: requests}, nil
}

// Routes dispatches by exact path: CategoriesPath lists categories and every
// other path returns a fortune. Methods are not distinguished.
func (h *Handler) Routes() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == CategoriesPath {
			h.Categories(w, r)

			return
		}

		h.Fortune(w, r)
	})
}

// ErrorResponse is what a failed request is answered with.
type ErrorResponse struct {
	StatusCode int
	Message    string
}

// NewError maps err to the response body and status. Every failure is a 404;
// only the message tells decoding problems apart from everything else.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	fields := []zap.Field{zap.Error(err)}

	var serr *serrors.Error
	if errors.As(err, &serr) {
		fields = append(fields,
			zap.String("kind", serr.Kind().Error()),
			zap.String("detail", serr.Message()))
	}

	switch {
	case errors.Is(err, fortune.ErrUnknownCategory):
		logger.Info(ctx, "rejected fortune request", fields...)
	default:
		logger.Error(ctx, "fortune request failed", fields...)
	}

	msg := MessageLoadFailed
	if errors.Is(err, fortune.ErrDecodeFailed) {
		msg = MessageParseFailed
	}

	return &ErrorResponse{
		StatusCode: http.StatusNotFound,
		Message:    msg,
	}
}

// write sends body with status and counts the request.
func (h *Handler) write(ctx context.Context, w http.ResponseWriter, route string, status int, body []byte) {
	h.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("status", status)))

	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}
