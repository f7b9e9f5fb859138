// Package audio plays the game's sound cues through the system speaker.
// Every cue is synthesized; there are no sample files.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/runaway/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultVolume is the master volume of a new speaker.
	DefaultVolume = 0.6
)

// Player plays cues. Implementations must be safe for concurrent use.
type Player interface {
	Play(cues ...core.Cue)
	ToggleMute() bool
	Muted() bool
	Close()
}

// Silent is a Player that drops every cue.
type Silent struct {
	mu    sync.Mutex
	muted bool
}

func (s *Silent) Play(...core.Cue) {}

// ToggleMute flips the mute flag and returns the new state.
func (s *Silent) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

func (s *Silent) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

func (s *Silent) Close() {}

// Speaker plays cues through the default audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	muted  bool
	closed bool
}

// speakerOnce guards speaker.Init, which may only run once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// NewSpeaker initializes the audio device and starts the mixer.
func NewSpeaker(volume float64) (*Speaker, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", speakerErr)
	}

	s := &Speaker{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the cues on the mixer. Muted or closed speakers drop them.
func (s *Speaker) Play(cues ...core.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted || s.closed {
		return
	}

	var streams []beep.Streamer
	for _, c := range cues {
		if st := Effect(c, sampleRate, s.volume); st != nil {
			streams = append(streams, st)
		}
	}
	if len(streams) == 0 {
		return
	}

	speaker.Lock()
	s.mixer.Add(streams...)
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new state.
func (s *Speaker) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	if s.muted {
		speaker.Lock()
		s.mixer.Clear()
		speaker.Unlock()
	}
	return s.muted
}

func (s *Speaker) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Close stops all sounds. The device stays initialized for later speakers.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Open returns a speaker when enabled, falling back to Silent when sound is
// off or the device cannot be opened. The error reports why it fell back.
func Open(enabled bool) (Player, error) {
	if !enabled {
		return &Silent{}, nil
	}
	s, err := NewSpeaker(DefaultVolume)
	if err != nil {
		return &Silent{}, err
	}
	return s, nil
}
