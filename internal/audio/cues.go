package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/runaway/internal/core"
)

// Effect synthesizes the sound of a cue at the given volume (0..1).
// It returns nil for cues without a sound.
func Effect(cue core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer

	switch cue {
	case core.CueJump:
		d := 120 * time.Millisecond
		s = NewEnvelope(NewSweep(330, 660, d, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate)
	case core.CueDoubleJump:
		d := 110 * time.Millisecond
		s = NewEnvelope(NewSweep(520, 990, d, rate), d, 5*time.Millisecond, 50*time.Millisecond, rate)
	case core.CueFootstep:
		s = newVolume(tone(0, 30*time.Millisecond, WaveNoise, rate), 0.25)
	case core.CueCoin:
		// B5 then E6
		s = beep.Seq(
			tone(987.77, 60*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 140*time.Millisecond, WaveSquare, rate),
		)
		s = newVolume(s, 0.5)
	case core.CueHeart:
		s = beep.Seq(
			tone(523.25, 90*time.Millisecond, WaveTriangle, rate),
			tone(659.25, 90*time.Millisecond, WaveTriangle, rate),
			tone(783.99, 160*time.Millisecond, WaveTriangle, rate),
		)
	case core.CueHurt:
		d := 180 * time.Millisecond
		s = beep.Mix(
			newVolume(tone(110, d, WaveSquare, rate), 0.6),
			newVolume(tone(0, d, WaveNoise, rate), 0.3),
		)
	case core.CueGameOver:
		d := 700 * time.Millisecond
		s = NewEnvelope(NewSweep(440, 110, d, rate), d, 10*time.Millisecond, 300*time.Millisecond, rate)
	case core.CueStart:
		s = beep.Seq(
			tone(440, 80*time.Millisecond, WaveSquare, rate),
			tone(880, 120*time.Millisecond, WaveSquare, rate),
		)
		s = newVolume(s, 0.5)
	default:
		return nil
	}

	return newVolume(s, volume)
}
