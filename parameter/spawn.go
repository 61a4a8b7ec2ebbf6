package parameter

// Sushi Spawner
const (
	// SushiFixedInterval is the deterministic minimum gap between sushi spawns
	SushiFixedInterval = 0.0

	// SushiMeanInterval is the mean of the exponential tail added on top of
	// the fixed gap (Poisson inter-arrival)
	SushiMeanInterval = 2.0

	// SushiRareProbability is the base chance a spawn is a rare sushi
	SushiRareProbability = 0.1

	// SushiWasabiProbability is the base chance a spawn is a wasabi hazard
	SushiWasabiProbability = 0.05

	// SushiDespawnTime is the base lifetime of a sushi in seconds
	SushiDespawnTime = 10.0
)

// Car Spawner
const (
	// CarFixedInterval keeps consecutive cars from spawning on top of each other
	CarFixedInterval = 2.0

	// CarMeanInterval is the mean of the exponential tail for car arrivals
	CarMeanInterval = 3.0

	// CarRareProbability is the base chance a spawned car is a rare car
	CarRareProbability = 0.1
)

// Spawn Sampling
const (
	// UnitIntervalEpsilonSubstitute replaces a uniform sample that rounds to
	// 1.0 before the -ln(1-u) draw, avoiding the logarithm singularity
	UnitIntervalEpsilonSubstitute = 0.999999

	// MinMeanInterval is the floor applied to the effective mean interval so
	// a huge rate multiplier cannot collapse it to zero
	MinMeanInterval = 0.0001
)
