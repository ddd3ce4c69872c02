package ctxutil

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Fatalf("expected %q, got %q", "req-123", got)
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestCurriculum_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithCurriculum(context.Background(), "English")
	if got := CurriculumFromCtx(ctx); got != "English" {
		t.Fatalf("expected %q, got %q", "English", got)
	}
	if got := CurriculumFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestLogHandler_AddsContextValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(slog.NewJSONHandler(&buf, nil))).With("service", "readers")

	ctx := WithCurriculum(WithRequestID(context.Background(), "req-1"), "English")
	logger.InfoContext(ctx, "snapshot built")

	out := buf.String()
	for _, want := range []string{`"request_id":"req-1"`, `"curriculum":"English"`, `"service":"readers"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q does not contain %s", out, want)
		}
	}
}

func TestLogHandler_NoContextValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(slog.NewJSONHandler(&buf, nil)))
	logger.Info("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id in %q", buf.String())
	}
}

func TestLogHandler_KeepsExplicitAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(slog.NewJSONHandler(&buf, nil)))

	ctx := WithCurriculum(WithRequestID(context.Background(), "req-1"), "en")
	logger.InfoContext(ctx, "http.request", slog.String("request_id", "req-1"))

	out := buf.String()
	if n := strings.Count(out, `"request_id"`); n != 1 {
		t.Errorf("request_id appears %d times in %q", n, out)
	}
	if !strings.Contains(out, `"curriculum":"en"`) {
		t.Errorf("log %q does not contain the curriculum", out)
	}
}
