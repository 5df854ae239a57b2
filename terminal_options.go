package tui

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"
)

// TerminalOption is a functional option for configuring a Terminal.
type TerminalOption func(*Terminal) error

// WithLayoutCache makes Frame.Split memoize layouts in cache.
func WithLayoutCache(cache *LayoutCache) TerminalOption {
	return func(t *Terminal) error {
		t.cache = cache
		return nil
	}
}

// WithTracer sets the tracer used for draw spans. The default is the
// tracer of the global OpenTelemetry provider.
func WithTracer(tracer trace.Tracer) TerminalOption {
	return func(t *Terminal) error {
		if tracer == nil {
			return fmt.Errorf("tracer must not be nil")
		}
		t.tracer = tracer
		return nil
	}
}

// WithViewport fixes the drawing area instead of following the backend
// size. The area must not be empty.
func WithViewport(area Rect) TerminalOption {
	return func(t *Terminal) error {
		if area.IsEmpty() {
			return fmt.Errorf("viewport %+v is empty", area)
		}
		t.viewport = area
		t.fixed = true
		return nil
	}
}

// WithDiffGapThreshold lets the diff rewrite up to n unchanged cells between
// two changes on a row to avoid cursor moves. See Differ.GapThreshold.
func WithDiffGapThreshold(n int) TerminalOption {
	return func(t *Terminal) error {
		if n < 0 {
			return fmt.Errorf("diff gap threshold must not be negative, got %d", n)
		}
		t.differ.GapThreshold = n
		return nil
	}
}
