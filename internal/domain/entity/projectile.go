package entity

import "github.com/go-gl/mathgl/mgl64"

// Owner tags who fired a projectile
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a moving combat entity. It is removed exactly once,
// either on its first hit or on lifetime expiry.
type Projectile struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3

	Owner  Owner
	Damage int

	SpawnedAt float64 // clock seconds
	Lifetime  float64 // seconds

	Active bool
}

// NewProjectile creates an active projectile
func NewProjectile(pos, vel mgl64.Vec3, owner Owner, damage int, now, lifetime float64) *Projectile {
	return &Projectile{
		Pos:       pos,
		Vel:       vel,
		Owner:     owner,
		Damage:    damage,
		SpawnedAt: now,
		Lifetime:  lifetime,
		Active:    true,
	}
}

// Advance integrates position over dt
func (p *Projectile) Advance(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
}

// Expired returns true when the projectile has outlived its lifetime
func (p *Projectile) Expired(now float64) bool {
	return now-p.SpawnedAt > p.Lifetime
}

// Deactivate marks the projectile for removal
func (p *Projectile) Deactivate() {
	p.Active = false
}
