package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"term-snake/game"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	notes := []note{{440, 10 * time.Millisecond}, {880, 25 * time.Millisecond}}

	tone, err := Tone(sr, notes)
	if err != nil {
		t.Fatal(err)
	}
	want := sr.N(10*time.Millisecond) + sr.N(25*time.Millisecond)
	if got := drain(tone); got != want {
		t.Errorf("tone streamed %d samples, want %d", got, want)
	}
}

func TestToneRejectsBadFrequency(t *testing.T) {
	sr := beep.SampleRate(8000)
	if _, err := Tone(sr, []note{{float64(sr), time.Millisecond}}); err == nil {
		t.Error("a tone at the sample rate should be rejected")
	}
}

func TestPlayerIgnoresTicksBeforeStart(t *testing.T) {
	p := NewPlayer()
	p.OnTick(game.TickResult{Ate: true})
	p.OnTick(game.TickResult{Over: true})
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Start", p.mixer.Len())
	}
	p.Stop()
}
