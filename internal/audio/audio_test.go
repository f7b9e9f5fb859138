package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/runaway/internal/core"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = append(out, smp[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestOscillatorLengthAndRange(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"triangle", WaveTriangle},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(t, NewOscillator(440, 100*time.Millisecond, tt.wave, testRate))
			if want := testRate.N(100 * time.Millisecond); len(samples) != want {
				t.Errorf("len = %d, want %d", len(samples), want)
			}
			for i, v := range samples {
				if v < -1 || v > 1 {
					t.Fatalf("sample %d = %v out of range", i, v)
				}
			}
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	for i, v := range drain(t, NewOscillator(220, 20*time.Millisecond, WaveSquare, testRate)) {
		if v != 1 && v != -1 {
			t.Fatalf("sample %d = %v, want +-1", i, v)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	samples := drain(t, NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate))

	if samples[0] != 0 {
		t.Errorf("first sample = %v, want 0 at the start of the attack", samples[0])
	}
	mid := samples[len(samples)/2]
	if math.Abs(mid) != 1 {
		t.Errorf("sustain sample = %v, want full volume", mid)
	}
	last := samples[len(samples)-1]
	if math.Abs(last) > 0.01 {
		t.Errorf("last sample = %v, want near silence", last)
	}
}

func TestEffectForEveryCue(t *testing.T) {
	cues := []core.Cue{
		core.CueJump,
		core.CueDoubleJump,
		core.CueFootstep,
		core.CueCoin,
		core.CueHeart,
		core.CueHurt,
		core.CueGameOver,
		core.CueStart,
	}

	for _, c := range cues {
		s := Effect(c, testRate, 1)
		if s == nil {
			t.Errorf("Effect(%v) = nil", c)
			continue
		}
		samples := drain(t, s)
		if len(samples) == 0 {
			t.Errorf("Effect(%v) produced no samples", c)
		}
		if len(samples) > testRate.N(time.Second) {
			t.Errorf("Effect(%v) lasts %d samples, want under a second", c, len(samples))
		}
		for _, v := range samples {
			if math.Abs(v) > 1 {
				t.Fatalf("Effect(%v) clips: %v", c, v)
			}
		}
	}

	if Effect(core.CueNone, testRate, 1) != nil {
		t.Error("CueNone should have no sound")
	}
}

func TestEffectSilentAtZeroVolume(t *testing.T) {
	for _, v := range drain(t, Effect(core.CueCoin, testRate, 0)) {
		if v != 0 {
			t.Fatalf("sample = %v, want silence", v)
		}
	}
}

func TestOpenDisabledIsSilent(t *testing.T) {
	p, err := Open(false)
	if err != nil {
		t.Fatalf("Open(false): %v", err)
	}
	if _, ok := p.(*Silent); !ok {
		t.Fatalf("Open(false) = %T, want *Silent", p)
	}

	p.Play(core.CueJump, core.CueCoin)
	if !p.ToggleMute() || !p.Muted() {
		t.Error("first toggle should mute")
	}
	if p.ToggleMute() {
		t.Error("second toggle should unmute")
	}
	p.Close()
}
