package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/google/uuid"

	"term-snake/config"
	"term-snake/game"
	"term-snake/game/manager"
	"term-snake/sound"
	"term-snake/spectate"
	"term-snake/ui"
)

// raylib must be driven from the main OS thread.
func init() {
	runtime.LockOSThread()
}

// restoreTerminal is replaced once a display is open so a crash can hand the
// terminal back before printing.
var restoreTerminal = func() {}

func main() {
	defer func() {
		if r := recover(); r != nil {
			restoreTerminal()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	session := uuid.NewString()
	log.SetPrefix("[" + session[:8] + "] ")
	log.Printf("session %s: %dx%d renderer=%s food=%s", session, cfg.Height, cfg.Width, cfg.Renderer, cfg.Food)

	latch := game.NewHeadingLatch()
	g, err := game.NewGame(game.Options{
		Height:         cfg.Height,
		Width:          cfg.Width,
		Spawner:        newSpawner(cfg),
		RejectReversal: cfg.RejectReversal,
		Input:          latch,
	})
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	quit := func() { cancel(nil) }
	fail := func(err error) {
		log.Printf("input failed: %v", err)
		cancel(err)
	}

	display, closeDisplay, err := openDisplay(cfg, g.Grid(), latch, quit, fail)
	if err != nil {
		return err
	}
	restoreTerminal = closeDisplay
	renderers := ui.Multi{display}

	opts := []game.RunOption{game.WithInterval(cfg.Interval())}
	if cfg.Speedup > 0 {
		opts = append(opts, game.WithSpeedup(cfg.Speedup, 10*time.Millisecond, 40*time.Millisecond))
	}

	if cfg.Sound {
		player := sound.NewPlayer()
		if err := player.Start(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer player.Stop()
			opts = append(opts, game.WithListener(player))
		}
	}

	if cfg.Spectate != "" {
		hub := spectate.NewHub(session)
		srv := &http.Server{Addr: cfg.Spectate, Handler: hub.Router()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("spectate server: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
		renderers = append(renderers, hub)
	}

	res, err := g.Run(ctx, renderers, opts...)
	closeDisplay()
	restoreTerminal = func() {}

	log.Printf("finished: score=%d length=%d ticks=%d cause=%s err=%v", res.Score, res.Length, res.Ticks, res.Cause, err)

	if err := runError(ctx, err); err != nil {
		return err
	}

	if g.IsOver() {
		fmt.Println(gameOverLine(res.Score))
	}
	return nil
}

func gameOverLine(score int) string {
	return fmt.Sprintf("Game over!\tYou died with a score of %d", score)
}

// runError decides what the loop's error means for the process. Quitting by
// key, window close or signal is not an error; an input failure is.
func runError(ctx context.Context, err error) error {
	switch {
	case err == nil, errors.Is(err, ui.ErrClosed):
		return nil
	case errors.Is(err, context.Canceled):
		if cause := context.Cause(ctx); !errors.Is(cause, context.Canceled) {
			return cause
		}
		return nil
	}
	return err
}

// newSpawner picks the food policy. A zero seed is drawn from the clock.
func newSpawner(cfg config.Config) manager.Spawner {
	if cfg.Food == config.FoodFixed {
		return manager.NoSpawner{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("food seed %d", seed)
	return manager.NewRandomSpawner(seed)
}
