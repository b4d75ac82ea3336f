// Package middleware provides helpers for using forms at HTTP JSON
// boundaries: stashing a submitted model in the request context and
// shaping submit failures into response payloads.
package middleware

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"

	formstate "github.com/reoring/formstate"
)

// ctxKeyModel is a typed context key for storing a submitted model.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyModel[T any] struct{}

// ContextWithModel attaches a submitted model to the context.
func ContextWithModel[T any](ctx context.Context, m T) context.Context {
	return context.WithValue(ctx, ctxKeyModel[T]{}, m)
}

// ModelFromContext retrieves a submitted model from the context.
func ModelFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyModel[T]{}).(T)
	return v, ok
}

// ErrorPayload shapes a submit error for JSON responses. FieldErrors
// render as a list of per-path entries; any other error renders as a
// single message.
func ErrorPayload(err error) map[string]any {
	if ferrs, ok := formstate.AsFieldErrors(err); ok {
		return map[string]any{"errors": ferrs}
	}
	return map[string]any{"errors": []map[string]any{{"message": err.Error()}}}
}

// WriteErrors writes a submit error as a 422 JSON response.
func WriteErrors(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(ErrorPayload(err))
}
