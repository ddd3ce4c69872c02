// Package ctxutil carries request-scoped values through a context and
// exposes them to structured logs.
package ctxutil

import (
	"context"
	"log/slog"
)

type ctxKey string

const (
	requestIDKey  ctxKey = "request_id"
	curriculumKey ctxKey = "curriculum"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithCurriculum stores the name of the curriculum a request works on.
func WithCurriculum(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, curriculumKey, name)
}

// CurriculumFromCtx returns the curriculum name, or "" if absent.
func CurriculumFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(curriculumKey).(string)
	return name
}

// LogHandler adds the request ID and curriculum found in the record's
// context to every log record that does not carry them already.
type LogHandler struct {
	slog.Handler
}

// NewLogHandler wraps next.
func NewLogHandler(next slog.Handler) *LogHandler {
	return &LogHandler{Handler: next}
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	id, name := RequestIDFromCtx(ctx), CurriculumFromCtx(ctx)
	if id == "" && name == "" {
		return h.Handler.Handle(ctx, r)
	}

	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			id = ""
		case "curriculum":
			name = ""
		}
		return true
	})
	if id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	if name != "" {
		r.AddAttrs(slog.String("curriculum", name))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{Handler: h.Handler.WithGroup(name)}
}
