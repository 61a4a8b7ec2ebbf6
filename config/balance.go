// Package config loads the balance sheet (progression tables, spawn
// rates, player tuning, upgrade catalog) from YAML, with compiled-in
// defaults so the game runs without any file present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkotake/sushi-survivor/bonus"
	"github.com/mkotake/sushi-survivor/parameter"
)

// Balance is the full tuning sheet. YAML fields overlay the defaults,
// so a partial file only overrides what it names.
type Balance struct {
	Session  SessionBalance  `yaml:"session"`
	Sushi    SpawnBalance    `yaml:"sushi"`
	Cars     SpawnBalance    `yaml:"cars"`
	Player   PlayerBalance   `yaml:"player"`
	Upgrades []UpgradeRecord `yaml:"upgrades"`
}

// SessionBalance tunes run progression.
type SessionBalance struct {
	InitialRoundTime   float64   `yaml:"initial_round_time"`
	TargetScorePerDay  []int     `yaml:"target_score_per_day"`
	TimeIncreasePerDay []float64 `yaml:"time_increase_per_day"`
}

// SpawnBalance tunes one spawn stream. Secondary is the wasabi
// probability for sushi and unused for cars.
type SpawnBalance struct {
	FixedInterval        float64 `yaml:"fixed_interval"`
	MeanInterval         float64 `yaml:"mean_interval"`
	RareProbability      float64 `yaml:"rare_probability"`
	SecondaryProbability float64 `yaml:"secondary_probability"`
	Lifetime             float64 `yaml:"lifetime"`
}

// PlayerBalance tunes the player actor. Durations are in seconds.
type PlayerBalance struct {
	MoveSpeed       float64 `yaml:"move_speed"`
	DashSpeed       float64 `yaml:"dash_speed"`
	DashDuration    float64 `yaml:"dash_duration"`
	DashCooldown    float64 `yaml:"dash_cooldown"`
	ShockwaveRadius float64 `yaml:"shockwave_radius"`
	SensorRange     float64 `yaml:"sensor_range"`
}

// UpgradeRecord is one catalog entry as written in YAML. Category is
// the snake_case identifier the bonus package defines.
type UpgradeRecord struct {
	Category    string    `yaml:"category"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Values      []float64 `yaml:"values"`
}

// DefaultBalance returns the compiled-in tuning sheet.
func DefaultBalance() Balance {
	return Balance{
		Session: SessionBalance{
			InitialRoundTime:   parameter.InitialRoundTime,
			TargetScorePerDay:  append([]int(nil), parameter.DefaultTargetScorePerDay...),
			TimeIncreasePerDay: append([]float64(nil), parameter.DefaultTimeIncreasePerDay...),
		},
		Sushi: SpawnBalance{
			FixedInterval:        parameter.SushiFixedInterval,
			MeanInterval:         parameter.SushiMeanInterval,
			RareProbability:      parameter.SushiRareProbability,
			SecondaryProbability: parameter.SushiWasabiProbability,
			Lifetime:             parameter.SushiDespawnTime,
		},
		Cars: SpawnBalance{
			FixedInterval:   parameter.CarFixedInterval,
			MeanInterval:    parameter.CarMeanInterval,
			RareProbability: parameter.CarRareProbability,
		},
		Player: PlayerBalance{
			MoveSpeed:       parameter.PlayerMoveSpeed,
			DashSpeed:       parameter.PlayerDashSpeed,
			DashDuration:    parameter.PlayerDashDuration.Seconds(),
			DashCooldown:    parameter.PlayerDashCooldown.Seconds(),
			ShockwaveRadius: parameter.PlayerShockwaveRadius,
			SensorRange:     parameter.PlayerSensorRange,
		},
		Upgrades: defaultUpgrades(),
	}
}

func defaultUpgrades() []UpgradeRecord {
	return []UpgradeRecord{
		{Category: "move_speed", Name: "Quick Paws", Description: "Run faster", Values: []float64{10, 11.5, 13, 14.5, 16}},
		{Category: "dash_cooldown", Name: "Short Breath", Description: "Dash more often", Values: []float64{2, 1.7, 1.45, 1.25}},
		{Category: "dash_speed", Name: "Lunge", Description: "Dash further", Values: []float64{25, 29, 33, 37}},
		{Category: "dash_duration", Name: "Long Stride", Description: "Dash lasts longer", Values: []float64{0.5, 0.6, 0.7}},
		{Category: "shockwave_size", Name: "Big Stomp", Description: "Wider dash shockwave", Values: []float64{2, 2.5, 3, 3.5}},
		{Category: "sushi_sensor_range", Name: "Keen Nose", Description: "Pull sushi from further away", Values: []float64{3, 4, 5, 6}},
		{Category: "sushi_spawn_rate", Name: "Busy Kitchen", Description: "Sushi appears more often", Values: []float64{1, 1.25, 1.5, 1.75, 2}},
		{Category: "sushi_duration", Name: "Fresh Wrap", Description: "Sushi stays longer", Values: []float64{10, 12.5, 15, 17.5}},
		{Category: "rare_sushi_spawn_rate", Name: "Golden Roll", Description: "Rare sushi more likely", Values: []float64{1, 1.5, 2, 2.5}},
		{Category: "wasabi_spawn_rate", Name: "Mild Menu", Description: "Less wasabi", Values: []float64{1, 0.8, 0.6, 0.4}},
		{Category: "car_spawn_rate", Name: "Quiet Streets", Description: "Fewer cars", Values: []float64{1, 0.85, 0.7, 0.55}},
		{Category: "rare_car_spawn_rate", Name: "No Deliveries", Description: "Fewer rare cars", Values: []float64{1, 0.75, 0.5}},
		{Category: "car_explosion_range", Name: "Soft Crash", Description: "Smaller car explosions", Values: []float64{2, 1.7, 1.4}},
	}
}

// LoadBalance reads a YAML balance file over the defaults. An empty
// path returns the defaults unchanged.
func LoadBalance(path string) (Balance, error) {
	balance := DefaultBalance()
	if path == "" {
		return balance, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return balance, fmt.Errorf("read balance file: %w", err)
	}
	if err := yaml.Unmarshal(data, &balance); err != nil {
		return balance, fmt.Errorf("parse balance file %s: %w", path, err)
	}
	if err := balance.Validate(); err != nil {
		return balance, fmt.Errorf("balance file %s: %w", path, err)
	}
	return balance, nil
}

// Validate checks the sheet for entries the game cannot run with.
// Short tables and empty magnitude lists are legal (they clamp or
// no-op downstream); unknown categories are not.
func (b Balance) Validate() error {
	if b.Session.InitialRoundTime <= 0 {
		return fmt.Errorf("initial_round_time must be positive, got %v", b.Session.InitialRoundTime)
	}
	for _, u := range b.Upgrades {
		if _, err := bonus.ParseCategory(u.Category); err != nil {
			return err
		}
	}
	return nil
}

// Catalog builds the upgrade catalog from the sheet. Records keep
// file order so draws present consistently across runs.
func (b Balance) Catalog() (*bonus.Catalog, error) {
	defs := make([]bonus.Definition, 0, len(b.Upgrades))
	for _, u := range b.Upgrades {
		cat, err := bonus.ParseCategory(u.Category)
		if err != nil {
			return nil, err
		}
		defs = append(defs, bonus.Definition{
			Category:    cat,
			Name:        u.Name,
			Description: u.Description,
			Values:      append([]float64(nil), u.Values...),
		})
	}
	return bonus.NewCatalog(defs), nil
}
