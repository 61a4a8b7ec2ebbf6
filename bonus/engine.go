package bonus

import (
	"math/rand"
	"sync"
)

// Setter applies a multiplier to the gameplay parameter owned by a subsystem
// Exactly one setter is bound per category
type Setter func(multiplier float64)

// Description is the current-vs-next magnitude pair shown when presenting an
// upgrade. It follows the original display convention: Current is Values[0]
// at level 0, otherwise Values[min(level, max)]; Max is set when no further
// level exists and Next is meaningless
type Description struct {
	Current float64
	Next    float64
	Max     bool
}

// Engine tracks per-upgrade pick counts, draws option subsets for day-end
// selection, and dispatches level-up multipliers to the bound subsystems.
// State lives for the whole process and is cleared only by Reset
type Engine struct {
	mu      sync.Mutex
	catalog *Catalog
	rng     *rand.Rand
	picks   map[Category]int
	setters map[Category]Setter
}

// NewEngine creates a bonus engine over the given catalog
// The random source drives option draws and is injected for deterministic tests
func NewEngine(catalog *Catalog, rng *rand.Rand) *Engine {
	return &Engine{
		catalog: catalog,
		rng:     rng,
		picks:   make(map[Category]int),
		setters: make(map[Category]Setter),
	}
}

// Bind registers the multiplier setter owning a category
// Rebinding replaces the previous setter
func (e *Engine) Bind(cat Category, set Setter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setters[cat] = set
}

// Level returns the current pick count for a category, 0 if never picked
func (e *Engine) Level(cat Category) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.picks[cat]
}

// DrawOptions samples up to n distinct upgrades uniformly at random from the
// full catalog, without replacement. The result order is stable for the
// duration of one presentation; callers index into it when choosing
func (e *Engine) DrawOptions(n int) []Definition {
	e.mu.Lock()
	defer e.mu.Unlock()

	pool := make([]Definition, len(e.catalog.defs))
	copy(pool, e.catalog.defs)

	result := make([]Definition, 0, n)
	for i := 0; i < n && len(pool) > 0; i++ {
		idx := e.rng.Intn(len(pool))
		result = append(result, pool[idx])
		pool[idx] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return result
}

// Describe returns the current and next magnitude for an upgrade at its
// present level, flagging Max when the top level has been reached
func (e *Engine) Describe(def Definition) Description {
	if len(def.Values) == 0 {
		return Description{Max: true}
	}

	level := e.Level(def.Category)
	current := def.Values[0]
	if level > 0 {
		idx := min(level, def.MaxLevel())
		current = def.Values[idx]
	}

	if level >= def.MaxLevel() {
		return Description{Current: current, Max: true}
	}
	return Description{Current: current, Next: def.Values[level+1]}
}

// Apply levels up an upgrade: it computes the multiplier for the next level
// relative to baseline, dispatches it to the bound setter, and increments the
// pick count. An empty magnitude sequence is a no-op, not an error, and an
// upgrade already at its top level stays there with multiplier unchanged
// Returns the dispatched multiplier and whether the application took effect
func (e *Engine) Apply(def Definition) (float64, bool) {
	if len(def.Values) == 0 {
		return 0, false
	}

	e.mu.Lock()
	level := e.picks[def.Category]
	if level >= def.MaxLevel() {
		e.mu.Unlock()
		return 0, false
	}

	nextIndex := min(level+1, def.MaxLevel())
	multiplier := def.Values[nextIndex] / def.Values[0]
	set := e.setters[def.Category]
	e.picks[def.Category] = level + 1
	e.mu.Unlock()

	if set != nil {
		set(multiplier)
	}
	return multiplier, true
}

// Reset clears all pick counts for a new session
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.picks = make(map[Category]int)
}
