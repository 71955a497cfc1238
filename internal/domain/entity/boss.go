package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Boss represents the boss of the final encounter.
// Its attack phase is derived from the current health fraction each
// frame rather than stored.
type Boss struct {
	Pos mgl64.Vec3

	Health    int
	MaxHealth int

	Yaw        float64
	LastAttack float64
}

// NewBoss creates a boss at the given position
func NewBoss(pos mgl64.Vec3, maxHealth int) *Boss {
	return &Boss{
		Pos:       pos,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		// The first attack is gated only by proximity
		LastAttack: math.Inf(-1),
	}
}

// Alive returns true if health > 0
func (b *Boss) Alive() bool {
	return b.Health > 0
}

// TakeDamage reduces health, clamped at 0
func (b *Boss) TakeDamage(amount int) {
	b.Health -= amount
	if b.Health < 0 {
		b.Health = 0
	}
}

// HealthFraction returns health / maxHealth
func (b *Boss) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}
