package logging_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sqlcore-engine/sqlfront/internal/logging"
)

func TestNoopDiscardsEverything(t *testing.T) {
	// Nothing to assert beyond "does not panic" — Noop has no observable state.
	logging.Noop.Debugw("x", "k", "v")
	logging.Noop.Infow("x")
	logging.Noop.Errorw("x", "k", "v")
}

func TestZapLoggerForwardsToUnderlyingLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := logging.NewZap(zap.New(core))

	l.Debugw("parsed statement", "kind", "Select")
	l.Errorw("injected error", "line", 1, "column", 5)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Message != "parsed statement" {
		t.Errorf("unexpected first message: %q", entries[0].Message)
	}
	if entries[1].Message != "injected error" {
		t.Errorf("unexpected second message: %q", entries[1].Message)
	}
}
