package parameter

import "time"

// Player Movement
const (
	// PlayerMoveSpeed is the base movement speed in cells per second
	PlayerMoveSpeed = 10.0

	// PlayerDashSpeed is the movement speed while a dash is active
	PlayerDashSpeed = 25.0

	// PlayerDashDelay is the wind-up before a dash begins moving
	PlayerDashDelay = 300 * time.Millisecond

	// PlayerDashDuration is how long a dash lasts once moving
	PlayerDashDuration = 500 * time.Millisecond

	// PlayerDashCooldown is the minimum gap between dash activations
	PlayerDashCooldown = 2 * time.Second
)

// Player Effects
const (
	// PlayerShockwaveRadius is the base radius of the dash shockwave
	PlayerShockwaveRadius = 2.0

	// PlayerSensorRange is the base radius of the sushi sensor that pulls
	// nearby sushi toward the player
	PlayerSensorRange = 3.0

	// PlayerSensorPullSpeed is how fast attracted sushi moves, cells per second
	PlayerSensorPullSpeed = 5.0

	// WasabiStunDuration is how long movement is locked after eating wasabi
	WasabiStunDuration = 1500 * time.Millisecond
)

// Car Behavior
const (
	// CarMoveSpeed is the base car speed in cells per second
	CarMoveSpeed = 8.0

	// CarExplosionRadius is the base blast radius when a car explodes
	CarExplosionRadius = 2.0

	// CarFollowDistance is the gap a car holds behind the traffic ahead
	CarFollowDistance = 2.0

	// CarWreckLifetime is how long a wreck stays on the board before cleanup
	CarWreckLifetime = 3 * time.Second
)

// Scoring
const (
	// SushiPointsNormal is the score for a normal sushi
	SushiPointsNormal = 1

	// SushiPointsRare is the score for a rare sushi
	SushiPointsRare = 3
)
