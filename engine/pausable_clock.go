package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable game time with pause duration tracking
// Spawn scheduling and entity lifetimes run on game time, so pausing the
// clock freezes them without touching their own state
type PausableClock struct {
	mu sync.RWMutex

	// Base time tracking
	realStartTime time.Time // When clock was created (real time)
	gameStartTime time.Time // Game time epoch (adjusted for pauses)

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration

	// Real time source, injected so tests can drive the clock
	real TimeProvider
}

// NewPausableClock creates a new pausable clock over the given real-time source
func NewPausableClock(real TimeProvider) *PausableClock {
	now := real.Now()
	return &PausableClock{
		realStartTime: now,
		gameStartTime: now,
		real:          real,
	}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// During pause: return frozen time at pause point
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	// Game elapsed = real elapsed - total paused time
	realElapsed := pc.real.Now().Sub(pc.realStartTime)
	gameElapsed := realElapsed - pc.totalPausedTime
	return pc.gameStartTime.Add(gameElapsed)
}

// RealTime returns wall clock time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.real.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()

		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.real.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.real.Now().Sub(pc.pauseStartTime)
	}
	return total
}
