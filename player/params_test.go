package player

import (
	"testing"
	"time"
)

func TestMultipliersComposeAgainstBase(t *testing.T) {
	p := NewParameters()
	p.SetBases(10, 25, 500*time.Millisecond, 2*time.Second, 2, 3)

	p.SetMoveSpeedMultiplier(1.2)
	if got := p.MoveSpeed(); got != 12 {
		t.Errorf("MoveSpeed = %v, want 12", got)
	}

	// A later multiplier replaces the earlier one, it does not stack.
	p.SetMoveSpeedMultiplier(1.5)
	if got := p.MoveSpeed(); got != 15 {
		t.Errorf("MoveSpeed = %v, want 15", got)
	}
}

func TestCooldownMultiplierShortens(t *testing.T) {
	p := NewParameters()
	p.SetBases(10, 25, 500*time.Millisecond, 2*time.Second, 2, 3)

	p.SetDashCooldownMultiplier(0.8)
	if got, want := p.DashCooldown(), 1600*time.Millisecond; got != want {
		t.Errorf("DashCooldown = %v, want %v", got, want)
	}

	p.SetDashDurationMultiplier(1.5)
	if got, want := p.DashDuration(), 750*time.Millisecond; got != want {
		t.Errorf("DashDuration = %v, want %v", got, want)
	}
}

func TestResetRestoresBaselines(t *testing.T) {
	p := NewParameters()
	p.SetBases(10, 25, 500*time.Millisecond, 2*time.Second, 2, 3)
	p.SetMoveSpeedMultiplier(2)
	p.SetShockwaveMultiplier(3)
	p.SetSensorRangeMultiplier(2)

	p.Reset()

	if p.MoveSpeed() != 10 || p.ShockwaveRadius() != 2 || p.SensorRange() != 3 {
		t.Errorf("values after reset = %v/%v/%v, want bases 10/2/3",
			p.MoveSpeed(), p.ShockwaveRadius(), p.SensorRange())
	}
}
