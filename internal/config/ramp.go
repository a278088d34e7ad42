package config

import "math"

// RampConfig defines a linear speed ramp.
type RampConfig struct {
	Base  float64 `yaml:"base"`  // Starting speed
	Accel float64 `yaml:"accel"` // Speed gained per second
	Max   float64 `yaml:"max"`   // Cap
}

// Ramp tracks a speed that grows linearly over time up to a cap.
// It is the only difficulty progression in the runner.
type Ramp struct {
	cfg   RampConfig
	speed float64
}

// NewRamp creates a ramp at its base speed.
func NewRamp(cfg RampConfig) *Ramp {
	r := &Ramp{cfg: cfg}
	r.Reset()
	return r
}

// Reset puts the ramp back to its base speed.
func (r *Ramp) Reset() {
	r.speed = clampF(r.cfg.Base, 0, r.max())
}

// Speed returns the current speed.
func (r *Ramp) Speed() float64 {
	return r.speed
}

// Advance accelerates by dt seconds and returns the new speed.
// The speed never decreases.
func (r *Ramp) Advance(dt float64) float64 {
	if dt > 0 && r.cfg.Accel > 0 {
		r.speed = clampF(r.speed+r.cfg.Accel*dt, r.speed, r.max())
	}
	return r.speed
}

func (r *Ramp) max() float64 {
	if r.cfg.Max <= 0 {
		return math.Inf(1)
	}
	return r.cfg.Max
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
