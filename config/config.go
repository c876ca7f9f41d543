// Package config turns command-line flags into a validated game setup.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"term-snake/game/types"
)

// Renderer backends.
const (
	RendererTcell   = "tcell"
	RendererTermbox = "termbox"
	RendererWindow  = "window"
	RendererText    = "text"
)

// Food policies.
const (
	FoodRandom = "random"
	FoodFixed  = "fixed"
)

type Config struct {
	Height         int    `validate:"min=3,max=200"`
	Width          int    `validate:"min=3,max=200"`
	Speed          int    `validate:"min=10,max=5000"` // ms per tick
	Speedup        int    `validate:"min=0,max=100"`   // foods per speed step, 0 keeps the pace
	Seed           uint64
	Renderer       string `validate:"oneof=tcell termbox window text"`
	Food           string `validate:"oneof=random fixed"`
	RejectReversal bool
	Sound          bool
	Spectate       string `validate:"omitempty,hostname_port"`
	CellSize       int    `validate:"min=4,max=64"`
	Debug          bool
}

// Default matches the classic 10x10 game.
func Default() Config {
	return Config{
		Height:   types.DefaultHeight,
		Width:    types.DefaultWidth,
		Speed:    150,
		Renderer: RendererTcell,
		Food:     FoodRandom,
		CellSize: 30,
	}
}

// Interval is the tick period.
func (c Config) Interval() time.Duration {
	return time.Duration(c.Speed) * time.Millisecond
}

// flagNames maps struct fields to the flag that sets them.
var flagNames = map[string]string{
	"Height":   "height",
	"Width":    "width",
	"Speed":    "speed",
	"Speedup":  "speedup",
	"Renderer": "renderer",
	"Food":     "food",
	"Spectate": "spectate",
	"CellSize": "cell",
}

var validate = validator.New()

// Validate reports every bad field under its flag name.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := flagNames[fe.Field()]
		if name == "" {
			name = strings.ToLower(fe.Field())
		}
		msgs = append(msgs, fmt.Sprintf("-%s=%v fails %s", name, fe.Value(), describe(fe)))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "minimum " + fe.Param()
	case "max":
		return "maximum " + fe.Param()
	case "oneof":
		return "one of [" + fe.Param() + "]"
	case "hostname_port":
		return "host:port"
	default:
		return fe.Tag()
	}
}

// Parse reads args (without the program name) into a Config.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Board rows")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Board columns")
	fs.IntVar(&cfg.Speed, "speed", cfg.Speed, "Game speed in milliseconds (lower = faster)")
	fs.IntVar(&cfg.Speedup, "speedup", cfg.Speedup, "Tick faster after this many foods (0 = never)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed (0 picks one from the clock)")
	fs.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "Display: tcell, termbox, window or text")
	fs.StringVar(&cfg.Food, "food", cfg.Food, "Food after eating: random or fixed (no respawn)")
	fs.BoolVar(&cfg.RejectReversal, "reject-reversal", cfg.RejectReversal, "Ignore turns straight back into the body")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play tones on eat and game over")
	fs.StringVar(&cfg.Spectate, "spectate", cfg.Spectate, "Serve a spectator stream on host:port")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels for the window renderer")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write a debug log under logs/")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
