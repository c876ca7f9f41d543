// Package sound plays short tones when the snake eats and when it dies.
package sound

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"term-snake/game"
)

const sampleRate = beep.SampleRate(44100)

// note is one step of a tone.
type note struct {
	freq     float64
	duration time.Duration
}

var (
	eatNotes  = []note{{660, 50 * time.Millisecond}, {990, 70 * time.Millisecond}}
	overNotes = []note{{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 250 * time.Millisecond}}
)

// Tone builds a streamer that plays notes back to back.
func Tone(sr beep.SampleRate, notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.duration), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -2,
	}, nil
}

// Player is a game.Listener that mixes tones into the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Start opens the audio device.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Stop silences pending tones and closes the device.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

func (p *Player) OnTick(res game.TickResult) {
	switch {
	case res.Over:
		p.play(overNotes)
	case res.Ate:
		p.play(eatNotes)
	}
}

func (p *Player) play(notes []note) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, err := Tone(sampleRate, notes)
	if err != nil {
		log.Printf("sound: %v", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}
