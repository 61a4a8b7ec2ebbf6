package parameter

import "time"

// Game Loop
const (
	// GameTickInterval is the fixed logic tick driven by the main loop
	GameTickInterval = 50 * time.Millisecond

	// RenderInterval caps the redraw rate of the terminal frontend
	RenderInterval = 33 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the ring buffer capacity, must be a power of two
	EventQueueSize = 256

	// EventBufferMask converts a monotonically increasing index into a slot
	EventBufferMask = EventQueueSize - 1
)
