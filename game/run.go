package game

import (
	"context"
	"fmt"
	"time"

	"term-snake/game/types"
)

const DefaultInterval = 150 * time.Millisecond

// Renderer draws a snapshot. It must not keep or modify the snapshot past
// the call unless it copies it.
type Renderer interface {
	Present(Snapshot) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot) error

func (f RendererFunc) Present(s Snapshot) error { return f(s) }

// Listener is told about every executed tick, after the frame is presented.
type Listener interface {
	OnTick(TickResult)
}

// Result is reported when the run loop ends with the game over.
type Result struct {
	Score  int
	Length int
	Ticks  int
	Cause  types.CollisionType

	// Interval is the tick period the loop ended on, after any speedup.
	Interval time.Duration
}

type runConfig struct {
	interval     time.Duration
	listeners    []Listener
	speedupEvery int
	speedupStep  time.Duration
	minInterval  time.Duration
}

type RunOption func(*runConfig)

func WithInterval(d time.Duration) RunOption {
	return func(rc *runConfig) {
		if d > 0 {
			rc.interval = d
		}
	}
}

func WithListener(l Listener) RunOption {
	return func(rc *runConfig) {
		if l != nil {
			rc.listeners = append(rc.listeners, l)
		}
	}
}

// WithSpeedup shortens the tick interval by step after every `every` foods,
// never going below floor.
func WithSpeedup(every int, step, floor time.Duration) RunOption {
	return func(rc *runConfig) {
		rc.speedupEvery = every
		rc.speedupStep = step
		rc.minInterval = floor
	}
}

// Run presents the starting board, then ticks at the configured interval
// until the game is over or ctx is cancelled. A renderer error stops the loop
// and is returned.
func (g *Game) Run(ctx context.Context, r Renderer, opts ...RunOption) (Result, error) {
	rc := runConfig{interval: DefaultInterval}
	for _, opt := range opts {
		opt(&rc)
	}

	if err := r.Present(g.Snapshot()); err != nil {
		return g.result(rc.interval), fmt.Errorf("present initial frame: %w", err)
	}

	interval := rc.interval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eaten := 0
	for !g.IsOver() {
		select {
		case <-ctx.Done():
			return g.result(interval), ctx.Err()
		case <-ticker.C:
		}

		res := g.Tick()
		if err := r.Present(g.Snapshot()); err != nil {
			return g.result(interval), fmt.Errorf("present tick %d: %w", res.Tick, err)
		}
		for _, l := range rc.listeners {
			l.OnTick(res)
		}

		if res.Ate && rc.speedupEvery > 0 {
			eaten++
			if eaten%rc.speedupEvery == 0 && interval-rc.speedupStep >= rc.minInterval {
				interval -= rc.speedupStep
				ticker.Reset(interval)
			}
		}
	}
	return g.result(interval), nil
}

func (g *Game) result(interval time.Duration) Result {
	return Result{
		Score:    g.snake.Score(),
		Length:   g.snake.Len(),
		Ticks:    g.state.Ticks(),
		Cause:    g.state.Cause(),
		Interval: interval,
	}
}
