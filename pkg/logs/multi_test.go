package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerFanOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	logger := slog.New(h)
	logger.Info("enrolled", slog.String("code", "ABC123"))

	if !strings.Contains(a.String(), "enrolled") {
		t.Errorf("text handler missing record, got %q", a.String())
	}
	if !strings.Contains(b.String(), `"code":"ABC123"`) {
		t.Errorf("json handler missing attr, got %q", b.String())
	}
}

func TestMultiHandlerLevelFiltering(t *testing.T) {
	var warn, debug bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}}

	ctx := context.Background()
	if !h.Enabled(ctx, slog.LevelDebug) {
		t.Error("expected Enabled to be true when any handler accepts the level")
	}

	slog.New(h).Debug("low level detail")

	if warn.Len() != 0 {
		t.Errorf("warn handler should skip debug records, got %q", warn.String())
	}
	if !strings.Contains(debug.String(), "low level detail") {
		t.Errorf("debug handler missing record, got %q", debug.String())
	}
}

func TestMultiHandlerWithAttrsAndGroup(t *testing.T) {
	var out bytes.Buffer
	base := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	h := base.WithAttrs([]slog.Attr{slog.String("service", "orienta")}).WithGroup("req")
	slog.New(h).Info("handled", slog.String("id", "42"))

	got := out.String()
	if !strings.Contains(got, `"service":"orienta"`) {
		t.Errorf("missing attr from WithAttrs, got %q", got)
	}
	if !strings.Contains(got, `"req":{"id":"42"}`) {
		t.Errorf("missing group from WithGroup, got %q", got)
	}
}
