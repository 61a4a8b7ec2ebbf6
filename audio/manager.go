// Package audio synthesizes the game's sound cues through beep.
// Every cue is generated, not sampled, so the binary ships no assets.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/mkotake/sushi-survivor/event"
)

const (
	sampleRate  = beep.SampleRate(48000)
	millisecond = time.Millisecond
)

// SoundManager owns the speaker and mixes one-shot cue streamers.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized manager. Call Initialize
// before playing; a muted manager never touches the speaker.
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. beep has no speaker close; clearing
// the mixer is enough to stop output.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted toggles output. Cues requested while muted are dropped.
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = m
}

// Play queues one cue.
func (sm *SoundManager) Play(cue event.SoundCue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := cueStreamer(cue)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// cueStreamer builds the one-shot streamer for a cue.
func cueStreamer(cue event.SoundCue) beep.Streamer {
	n := func(d time.Duration) int { return sampleRate.N(d) }

	switch cue {
	case event.CueEat:
		return NewToneGenerator(sampleRate, 880, n(80*millisecond), 0.25)
	case event.CueRareEat:
		return beep.Seq(
			NewToneGenerator(sampleRate, 880, n(70*millisecond), 0.25),
			NewToneGenerator(sampleRate, 1320, n(90*millisecond), 0.25),
		)
	case event.CueWasabi:
		return NewSweepGenerator(sampleRate, 400, 150, n(250*millisecond), 0.3)
	case event.CueOneMore:
		return NewSweepGenerator(sampleRate, 600, 1200, n(200*millisecond), 0.3)
	case event.CueRoundComplete:
		return beep.Seq(
			NewToneGenerator(sampleRate, 660, n(90*millisecond), 0.3),
			NewToneGenerator(sampleRate, 880, n(90*millisecond), 0.3),
			NewToneGenerator(sampleRate, 1100, n(140*millisecond), 0.3),
		)
	case event.CueDayChange:
		return beep.Seq(
			NewToneGenerator(sampleRate, 523, n(120*millisecond), 0.3),
			NewToneGenerator(sampleRate, 659, n(120*millisecond), 0.3),
			NewToneGenerator(sampleRate, 784, n(200*millisecond), 0.3),
		)
	case event.CueBonusApplied:
		return NewSweepGenerator(sampleRate, 500, 1000, n(150*millisecond), 0.25)
	case event.CueHorn:
		return NewToneGenerator(sampleRate, 220, n(180*millisecond), 0.3)
	case event.CueExplosion:
		return NewNoiseGenerator(sampleRate, n(350*millisecond), 0.4)
	case event.CueGameOver:
		return NewSweepGenerator(sampleRate, 800, 120, n(700*millisecond), 0.35)
	default:
		return nil
	}
}

// Handler routes game events into cues. Register it on the router;
// it listens to explicit sound requests plus the lifecycle events
// that always carry a cue.
type Handler struct {
	manager *SoundManager
}

// NewHandler wraps a manager for event routing.
func NewHandler(manager *SoundManager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventOneMore,
		event.EventRoundComplete,
		event.EventDayChanged,
		event.EventBonusApplied,
		event.EventGameOver,
	}
}

func (h *Handler) HandleEvent(e event.GameEvent) {
	switch e.Type {
	case event.EventSoundRequest:
		if p, ok := e.Payload.(event.SoundRequestPayload); ok {
			h.manager.Play(p.Cue)
		}
	case event.EventOneMore:
		h.manager.Play(event.CueOneMore)
	case event.EventRoundComplete:
		h.manager.Play(event.CueRoundComplete)
	case event.EventDayChanged:
		h.manager.Play(event.CueDayChange)
	case event.EventBonusApplied:
		h.manager.Play(event.CueBonusApplied)
	case event.EventGameOver:
		h.manager.Play(event.CueGameOver)
	}
}
