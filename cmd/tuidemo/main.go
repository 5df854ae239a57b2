// Package main runs a small dashboard drawn with the rendering core.
//
// Usage:
//
//	tuidemo          Interactive dashboard; press any key to exit
//	tuidemo once     Print a single frame as ANSI to stdout and exit
//
// Configuration is read from the environment, optionally loaded from a
// .env file in the working directory:
//
//	TUI_DEMO_BORDER               border set name (default "rounded")
//	TUI_DEBUG                     debug log path
//	OTEL_EXPORTER_OTLP_ENDPOINT   enables span export
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	tui "github.com/grindlemire/go-tuicore"
	"github.com/grindlemire/go-tuicore/internal/debug"
	"github.com/grindlemire/go-tuicore/internal/telemetry"
	"github.com/grindlemire/go-tuicore/tcellbackend"
)

const version = "0.1.0"

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout))
}

// runMain holds everything main defers so the deferred cleanup has run by
// the time the exit code reaches os.Exit.
func runMain(args []string, stdout io.Writer) int {
	if err := godotenv.Load(); err != nil {
		debug.Log("tuidemo: .env not loaded: %v", err)
	}
	defer debug.Close()

	ctx := context.Background()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, "tuidemo", version)
		if err != nil {
			log.Printf("telemetry disabled: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("telemetry shutdown: %v", err)
				}
			}()
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Print(err)
		return 1
	}

	if len(args) > 0 && args[0] == "once" {
		err = runOnce(ctx, cfg, stdout)
	} else {
		err = run(ctx, cfg)
	}
	if err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

// runOnce prints one frame through the ANSI backend.
func runOnce(ctx context.Context, cfg config, stdout io.Writer) error {
	backend := tui.NewANSIBackend(stdout)
	defer backend.Close()

	term, err := newTerminal(backend)
	if err != nil {
		return err
	}
	if _, err := term.Draw(ctx, newDashboard(cfg).render); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	return nil
}

// run draws the dashboard on a tcell screen until a key is pressed.
func run(ctx context.Context, cfg config) error {
	backend, err := tcellbackend.Open()
	if err != nil {
		return err
	}
	defer backend.Close()

	term, err := newTerminal(backend)
	if err != nil {
		return err
	}

	dash := newDashboard(cfg)
	screen := backend.Screen()
	for {
		if _, err := term.Draw(ctx, dash.render); err != nil {
			return err
		}
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			debug.Log("tuidemo: exit on key %v", ev.Name())
			return nil
		case nil:
			return nil
		}
	}
}

func newTerminal(backend tui.Backend) (*tui.Terminal, error) {
	return tui.NewTerminal(backend,
		tui.WithLayoutCache(tui.NewLayoutCache(0)),
		tui.WithTracer(telemetry.Tracer("terminal")),
		tui.WithDiffGapThreshold(2),
	)
}
