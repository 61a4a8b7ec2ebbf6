package bonus

import "fmt"

// Category identifies the gameplay parameter an upgrade modifies
// Each category is bound to exactly one setter on its owning subsystem
type Category int

const (
	MoveSpeed Category = iota
	DashCooldown
	DashSpeed
	DashDuration
	ShockwaveSize
	SushiSensorRange
	SushiSpawnRate
	SushiDuration
	RareSushiSpawnRate
	WasabiSpawnRate
	CarSpawnRate
	RareCarSpawnRate
	CarExplosionRange

	categoryCount
)

var categoryNames = map[Category]string{
	MoveSpeed:          "move_speed",
	DashCooldown:       "dash_cooldown",
	DashSpeed:          "dash_speed",
	DashDuration:       "dash_duration",
	ShockwaveSize:      "shockwave_size",
	SushiSensorRange:   "sushi_sensor_range",
	SushiSpawnRate:     "sushi_spawn_rate",
	SushiDuration:      "sushi_duration",
	RareSushiSpawnRate: "rare_sushi_spawn_rate",
	WasabiSpawnRate:    "wasabi_spawn_rate",
	CarSpawnRate:       "car_spawn_rate",
	RareCarSpawnRate:   "rare_car_spawn_rate",
	CarExplosionRange:  "car_explosion_range",
}

// String returns the config identifier of the category
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCategory resolves a config identifier into a Category
func ParseCategory(name string) (Category, error) {
	for cat, n := range categoryNames {
		if n == name {
			return cat, nil
		}
	}
	return 0, fmt.Errorf("unknown bonus category %q", name)
}

// Definition describes a single upgrade: its category, display text, and the
// ordered magnitude sequence. Values[0] is the baseline; later indices are
// successive levels. The maximum valid level index is len(Values)-1
type Definition struct {
	Category    Category
	Name        string
	Description string
	Values      []float64
}

// MaxLevel returns the highest reachable level for this upgrade
// An empty magnitude sequence has no levels at all
func (d Definition) MaxLevel() int {
	if len(d.Values) == 0 {
		return 0
	}
	return len(d.Values) - 1
}

// Catalog is the ordered, read-only list of upgrade definitions loaded at
// startup from the balance config
type Catalog struct {
	defs []Definition
}

// NewCatalog builds a catalog from definitions, preserving order
func NewCatalog(defs []Definition) *Catalog {
	return &Catalog{defs: defs}
}

// Definitions returns the full ordered definition list
func (c *Catalog) Definitions() []Definition {
	return c.defs
}

// Len returns the number of upgrades in the catalog
func (c *Catalog) Len() int {
	return len(c.defs)
}
