package tui

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestTerminal(t *testing.T, width, height int, opts ...TerminalOption) (*Terminal, *TestBackend) {
	t.Helper()
	backend := NewTestBackend(width, height)
	term, err := NewTerminal(backend, opts...)
	if err != nil {
		t.Fatalf("NewTerminal() error = %v", err)
	}
	return term, backend
}

func drawString(s string) func(*Frame) {
	return func(f *Frame) {
		f.Buffer().SetString(f.Area().X, f.Area().Y, s, Style{})
	}
}

func TestNewTerminal_Errors(t *testing.T) {
	type tc struct {
		backend Backend
		opts    []TerminalOption
	}

	failing := NewTestBackend(3, 3)
	failing.FailSize(errors.New("no tty"))

	tests := map[string]tc{
		"nil backend":        {backend: nil},
		"size error":         {backend: failing},
		"empty viewport":     {backend: NewTestBackend(3, 3), opts: []TerminalOption{WithViewport(NewRect(0, 0, 0, 3))}},
		"negative threshold": {backend: NewTestBackend(3, 3), opts: []TerminalOption{WithDiffGapThreshold(-1)}},
		"nil tracer":         {backend: NewTestBackend(3, 3), opts: []TerminalOption{WithTracer(nil)}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewTerminal(tt.backend, tt.opts...); err == nil {
				t.Errorf("NewTerminal() error = nil, want error")
			}
		})
	}
}

func TestTerminal_Draw(t *testing.T) {
	term, backend := newTestTerminal(t, 5, 2)
	ctx := context.Background()

	first, err := term.Draw(ctx, drawString("hi"))
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if first.Updates != 2 {
		t.Errorf("first Draw() updates = %d, want 2", first.Updates)
	}
	if first.Count != 0 {
		t.Errorf("first Draw() count = %d, want 0", first.Count)
	}
	if err := backend.AssertLines("hi   ", "     "); err != nil {
		t.Error(err)
	}
	if got := first.Buffer.StringTrimmed(); got != "hi\n" {
		t.Errorf("CompletedFrame.Buffer = %q, want %q", got, "hi\n")
	}
	if got := term.CurrentBuffer().StringTrimmed(); got != "\n" {
		t.Errorf("CurrentBuffer() after Draw = %q, want blank", got)
	}

	second, err := term.Draw(ctx, drawString("hi"))
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if second.Updates != 0 {
		t.Errorf("identical Draw() updates = %d, want 0", second.Updates)
	}
	if backend.DrawCalls() != 1 {
		t.Errorf("DrawCalls() = %d, want 1", backend.DrawCalls())
	}
	if backend.FlushCount() != 2 {
		t.Errorf("FlushCount() = %d, want 2", backend.FlushCount())
	}

	third, err := term.Draw(ctx, drawString("ho"))
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if third.Updates != 1 {
		t.Errorf("changed Draw() updates = %d, want 1", third.Updates)
	}
	if got := backend.LastUpdates(); len(got) != 1 || got[0].X != 1 || got[0].Cell.Symbol != "o" {
		t.Errorf("LastUpdates() = %+v, want one update of 'o' at x=1", got)
	}
	if term.FrameCount() != 3 {
		t.Errorf("FrameCount() = %d, want 3", term.FrameCount())
	}
}

func TestTerminal_FrameCount(t *testing.T) {
	term, _ := newTestTerminal(t, 3, 1)

	for i := range 3 {
		var seen int
		completed, err := term.Draw(context.Background(), func(f *Frame) {
			seen = f.Count()
		})
		if err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		if seen != i || completed.Count != i {
			t.Errorf("frame %d: Frame.Count() = %d, CompletedFrame.Count = %d", i, seen, completed.Count)
		}
	}
}

func TestTerminal_Autoresize(t *testing.T) {
	term, backend := newTestTerminal(t, 4, 1)
	ctx := context.Background()

	if _, err := term.Draw(ctx, drawString("ab")); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	backend.Resize(6, 2)
	completed, err := term.Draw(ctx, drawString("ab"))
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if want := NewRect(0, 0, 6, 2); term.Viewport() != want || completed.Area != want {
		t.Errorf("Viewport() = %+v, CompletedFrame.Area = %+v, want %+v", term.Viewport(), completed.Area, want)
	}
	if backend.ClearCount() != 1 {
		t.Errorf("ClearCount() = %d, want 1", backend.ClearCount())
	}
	if completed.Updates != 2 {
		t.Errorf("Draw() after resize updates = %d, want 2", completed.Updates)
	}
	if err := backend.AssertLines("ab    ", "      "); err != nil {
		t.Error(err)
	}
}

func TestTerminal_FixedViewport(t *testing.T) {
	area := NewRect(1, 1, 3, 1)
	term, backend := newTestTerminal(t, 5, 3, WithViewport(area))

	var got Rect
	if _, err := term.Draw(context.Background(), func(f *Frame) {
		got = f.Area()
		f.Buffer().SetString(f.Area().X, f.Area().Y, "xyz", Style{})
	}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got != area {
		t.Errorf("Frame.Area() = %+v, want %+v", got, area)
	}
	if err := backend.AssertLines("     ", " xyz ", "     "); err != nil {
		t.Error(err)
	}

	backend.Resize(8, 8)
	if _, err := term.Draw(context.Background(), drawString("xyz")); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if term.Viewport() != area {
		t.Errorf("Viewport() = %+v, want fixed %+v", term.Viewport(), area)
	}
	if backend.ClearCount() != 0 {
		t.Errorf("ClearCount() = %d, want 0", backend.ClearCount())
	}
}

func TestTerminal_Cursor(t *testing.T) {
	term, backend := newTestTerminal(t, 5, 2)
	ctx := context.Background()

	if _, err := term.Draw(ctx, func(f *Frame) {}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if backend.IsCursorVisible() {
		t.Error("cursor should be hidden after a frame without SetCursor")
	}

	if _, err := term.Draw(ctx, func(f *Frame) { f.SetCursor(3, 1) }); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if !backend.IsCursorVisible() {
		t.Error("cursor should be visible after SetCursor")
	}
	if x, y := backend.Cursor(); x != 3 || y != 1 {
		t.Errorf("Cursor() = (%d, %d), want (3, 1)", x, y)
	}

	if err := term.HideCursor(); err != nil {
		t.Fatalf("HideCursor() error = %v", err)
	}
	if backend.IsCursorVisible() {
		t.Error("HideCursor() did not hide the cursor")
	}
	if err := term.ShowCursor(); err != nil {
		t.Fatalf("ShowCursor() error = %v", err)
	}
	if !backend.IsCursorVisible() {
		t.Error("ShowCursor() did not show the cursor")
	}
}

func TestTerminal_DrawErrors(t *testing.T) {
	type tc struct {
		setup   func(*TestBackend) context.Context
		wantErr error
	}

	tests := map[string]tc{
		"closed backend": {
			setup: func(b *TestBackend) context.Context {
				_ = b.Close()
				return context.Background()
			},
			wantErr: ErrBackendClosed,
		},
		"cancelled context": {
			setup: func(b *TestBackend) context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			wantErr: context.Canceled,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term, backend := newTestTerminal(t, 3, 1)
			ctx := tt.setup(backend)

			called := false
			_, err := term.Draw(ctx, func(f *Frame) { called = true })
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Draw() error = %v, want %v", err, tt.wantErr)
			}
			if called {
				t.Error("render should not run when Draw fails before rendering")
			}
			if term.FrameCount() != 0 {
				t.Errorf("FrameCount() = %d, want 0", term.FrameCount())
			}
		})
	}
}

func TestTerminal_Clear(t *testing.T) {
	term, backend := newTestTerminal(t, 3, 1)
	ctx := context.Background()

	if _, err := term.Draw(ctx, drawString("abc")); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if err := term.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	completed, err := term.Draw(ctx, drawString("abc"))
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if completed.Updates != 3 {
		t.Errorf("Draw() after Clear updates = %d, want 3", completed.Updates)
	}
	if err := backend.AssertLines("abc"); err != nil {
		t.Error(err)
	}
}

func TestTerminal_LayoutCache(t *testing.T) {
	cache := NewLayoutCache(8)
	term, _ := newTestTerminal(t, 10, 4, WithLayoutCache(cache))
	if term.LayoutCache() != cache {
		t.Fatalf("LayoutCache() = %p, want %p", term.LayoutCache(), cache)
	}

	l := Vertical(Length(1), Fill(1))
	var rects []Rect
	render := func(f *Frame) {
		rects = f.Split(f.Area(), l)
	}
	for range 3 {
		if _, err := term.Draw(context.Background(), render); err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
	}

	stats := cache.Stats()
	if stats.Misses != 1 || stats.Hits != 2 {
		t.Errorf("Stats() = %+v, want 1 miss and 2 hits", stats)
	}
	want := []Rect{NewRect(0, 0, 10, 1), NewRect(0, 1, 10, 3)}
	if len(rects) != len(want) || rects[0] != want[0] || rects[1] != want[1] {
		t.Errorf("Split() = %+v, want %+v", rects, want)
	}
}

type counterWidget struct{}

func (counterWidget) RenderStateful(area Rect, buf *Buffer, state *int) {
	*state++
	buf.SetString(area.X, area.Y, string(rune('0'+*state)), Style{})
}

func TestTerminal_RenderStatefulWidget(t *testing.T) {
	term, backend := newTestTerminal(t, 2, 1)
	state := 0

	for range 2 {
		if _, err := term.Draw(context.Background(), func(f *Frame) {
			RenderStatefulWidget(f, counterWidget{}, f.Area(), &state)
			RenderStatefulWidget(f, counterWidget{}, NewRect(5, 5, 1, 1), &state)
		}); err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
	}
	if state != 2 {
		t.Errorf("state = %d, want 2", state)
	}
	if err := backend.AssertLines("2 "); err != nil {
		t.Error(err)
	}
}

func TestTerminal_DiffGapThreshold(t *testing.T) {
	type tc struct {
		threshold   int
		wantUpdates int
	}

	tests := map[string]tc{
		"changed cells only": {threshold: 0, wantUpdates: 2},
		"gap bridged":        {threshold: 2, wantUpdates: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term, _ := newTestTerminal(t, 5, 1, WithDiffGapThreshold(tt.threshold))
			ctx := context.Background()

			if _, err := term.Draw(ctx, drawString("abcde")); err != nil {
				t.Fatalf("Draw() error = %v", err)
			}
			completed, err := term.Draw(ctx, drawString("xbcye"))
			if err != nil {
				t.Fatalf("Draw() error = %v", err)
			}
			if completed.Updates != tt.wantUpdates {
				t.Errorf("Draw() updates = %d, want %d", completed.Updates, tt.wantUpdates)
			}
		})
	}
}

func TestTerminal_Tracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	term, backend := newTestTerminal(t, 4, 2, WithTracer(provider.Tracer("test")))
	if _, err := term.Draw(context.Background(), drawString("ok")); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	_ = backend.Close()
	if _, err := term.Draw(context.Background(), drawString("ok")); err == nil {
		t.Fatal("Draw() on closed backend should fail")
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("recorded %d spans, want 2", len(spans))
	}

	attrs := map[attribute.Key]int64{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value.AsInt64()
	}
	want := map[attribute.Key]int64{
		"tui.frame":   0,
		"tui.updates": 2,
		"tui.width":   4,
		"tui.height":  2,
	}
	for k, v := range want {
		if attrs[k] != v {
			t.Errorf("span attribute %s = %d, want %d", k, attrs[k], v)
		}
	}
	if spans[0].Name() != "tui.draw" {
		t.Errorf("span name = %q, want %q", spans[0].Name(), "tui.draw")
	}
	if spans[1].Status().Code != codes.Error {
		t.Errorf("failed draw status = %v, want %v", spans[1].Status().Code, codes.Error)
	}
}

// flakyBackend fails the first call to the named method after letting the
// underlying backend apply it.
type flakyBackend struct {
	*TestBackend
	failOn string
}

var errFlaky = errors.New("flaky backend")

func (b *flakyBackend) fail(method string) error {
	if b.failOn != method {
		return nil
	}
	b.failOn = ""
	return errFlaky
}

func (b *flakyBackend) Draw(updates []CellUpdate) error {
	if err := b.TestBackend.Draw(updates); err != nil {
		return err
	}
	return b.fail("Draw")
}

func (b *flakyBackend) Flush() error {
	if err := b.TestBackend.Flush(); err != nil {
		return err
	}
	return b.fail("Flush")
}

func (b *flakyBackend) HideCursor() error {
	if err := b.TestBackend.HideCursor(); err != nil {
		return err
	}
	return b.fail("HideCursor")
}

func TestTerminal_FailedFrameDoesNotLeak(t *testing.T) {
	type tc struct {
		failOn string
	}

	tests := map[string]tc{
		"draw fails":        {failOn: "Draw"},
		"flush fails":       {failOn: "Flush"},
		"hide cursor fails": {failOn: "HideCursor"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			backend := &flakyBackend{TestBackend: NewTestBackend(5, 1), failOn: tt.failOn}
			term, err := NewTerminal(backend)
			if err != nil {
				t.Fatalf("NewTerminal() error = %v", err)
			}
			ctx := context.Background()

			if _, err := term.Draw(ctx, drawString("ERR")); !errors.Is(err, errFlaky) {
				t.Fatalf("first Draw() error = %v, want %v", err, errFlaky)
			}
			if got := term.CurrentBuffer().StringTrimmed(); got != "" {
				t.Errorf("CurrentBuffer() after failed Draw = %q, want blank", got)
			}
			if term.FrameCount() != 0 {
				t.Errorf("FrameCount() = %d, want 0", term.FrameCount())
			}

			completed, err := term.Draw(ctx, func(f *Frame) {
				f.Buffer().SetString(3, 0, "ok", Style{})
			})
			if err != nil {
				t.Fatalf("second Draw() error = %v", err)
			}
			if backend.ClearCount() != 1 {
				t.Errorf("ClearCount() = %d, want 1", backend.ClearCount())
			}
			if completed.Updates != 2 {
				t.Errorf("second Draw() updates = %d, want 2", completed.Updates)
			}
			if err := backend.AssertLines("   ok"); err != nil {
				t.Error(err)
			}

			if _, err := term.Draw(ctx, func(f *Frame) {
				f.Buffer().SetString(3, 0, "ok", Style{})
			}); err != nil {
				t.Fatalf("third Draw() error = %v", err)
			}
			if backend.ClearCount() != 1 {
				t.Errorf("ClearCount() after recovery = %d, want 1", backend.ClearCount())
			}
		})
	}
}
