// Package player holds the tunable movement parameters the bonus
// system mutates. The world reads effective values every tick; the
// bonus engine writes multipliers through the setter surface.
package player

import (
	"time"

	"github.com/mkotake/sushi-survivor/parameter"
)

// Parameters is the live parameter set for the player actor. Base
// values come from the balance config; multipliers compose against
// the base so repeated upgrades never compound incorrectly.
type Parameters struct {
	baseMoveSpeed    float64
	baseDashSpeed    float64
	baseDashDuration time.Duration
	baseDashCooldown time.Duration
	baseShockwave    float64
	baseSensorRange  float64

	moveSpeedMult    float64
	dashSpeedMult    float64
	dashDurationMult float64
	dashCooldownMult float64
	shockwaveMult    float64
	sensorRangeMult  float64
}

// NewParameters returns parameters at built-in base values with all
// multipliers at 1.
func NewParameters() *Parameters {
	return &Parameters{
		baseMoveSpeed:    parameter.PlayerMoveSpeed,
		baseDashSpeed:    parameter.PlayerDashSpeed,
		baseDashDuration: parameter.PlayerDashDuration,
		baseDashCooldown: parameter.PlayerDashCooldown,
		baseShockwave:    parameter.PlayerShockwaveRadius,
		baseSensorRange:  parameter.PlayerSensorRange,
		moveSpeedMult:    1,
		dashSpeedMult:    1,
		dashDurationMult: 1,
		dashCooldownMult: 1,
		shockwaveMult:    1,
		sensorRangeMult:  1,
	}
}

// SetBases overrides the built-in base values from the balance config.
func (p *Parameters) SetBases(moveSpeed, dashSpeed float64, dashDuration, dashCooldown time.Duration, shockwave, sensorRange float64) {
	p.baseMoveSpeed = moveSpeed
	p.baseDashSpeed = dashSpeed
	p.baseDashDuration = dashDuration
	p.baseDashCooldown = dashCooldown
	p.baseShockwave = shockwave
	p.baseSensorRange = sensorRange
}

// Multiplier setters, one per upgrade category the player owns.
// Cooldown tables descend, so their multipliers land below 1.

func (p *Parameters) SetMoveSpeedMultiplier(m float64)    { p.moveSpeedMult = m }
func (p *Parameters) SetDashSpeedMultiplier(m float64)    { p.dashSpeedMult = m }
func (p *Parameters) SetDashDurationMultiplier(m float64) { p.dashDurationMult = m }
func (p *Parameters) SetDashCooldownMultiplier(m float64) { p.dashCooldownMult = m }
func (p *Parameters) SetShockwaveMultiplier(m float64)    { p.shockwaveMult = m }
func (p *Parameters) SetSensorRangeMultiplier(m float64)  { p.sensorRangeMult = m }

// Effective values.

func (p *Parameters) MoveSpeed() float64 { return p.baseMoveSpeed * p.moveSpeedMult }
func (p *Parameters) DashSpeed() float64 { return p.baseDashSpeed * p.dashSpeedMult }

func (p *Parameters) DashDuration() time.Duration {
	return time.Duration(float64(p.baseDashDuration) * p.dashDurationMult)
}

func (p *Parameters) DashCooldown() time.Duration {
	return time.Duration(float64(p.baseDashCooldown) * p.dashCooldownMult)
}

func (p *Parameters) ShockwaveRadius() float64 { return p.baseShockwave * p.shockwaveMult }
func (p *Parameters) SensorRange() float64     { return p.baseSensorRange * p.sensorRangeMult }

// Reset restores all multipliers to 1 for a new session.
func (p *Parameters) Reset() {
	p.moveSpeedMult = 1
	p.dashSpeedMult = 1
	p.dashDurationMult = 1
	p.dashCooldownMult = 1
	p.shockwaveMult = 1
	p.sensorRangeMult = 1
}
