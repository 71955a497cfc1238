package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/gatefall/internal/application/state"
	"github.com/younwookim/gatefall/internal/domain/entity"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

// CombatSystem manages shooting, projectile integration and hit
// resolution. Combat uses cheap sphere proximity tests on purpose;
// only platform collision is shape-aware.
type CombatSystem struct {
	physics  *config.PhysicsConfig
	entities *config.EntitiesConfig
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(physics *config.PhysicsConfig, entities *config.EntitiesConfig) *CombatSystem {
	return &CombatSystem{
		physics:  physics,
		entities: entities,
	}
}

// TryFire spawns a player projectile when the cooldown has elapsed and
// ammo remains. Firing with ammo = 0 is a no-op and leaves ammo
// unchanged. Returns true when a projectile was spawned.
func (s *CombatSystem) TryFire(sim *state.Sim, in InputSnapshot, now float64) bool {
	p := sim.Player
	if p == nil {
		return false
	}
	cfg := s.physics.Combat

	if now-p.LastShot < cfg.FireCooldown {
		return false
	}
	if p.Ammo <= 0 {
		return false
	}

	p.Ammo--
	p.LastShot = now

	dir := aimDirection(in.Yaw, in.Pitch)
	pos := p.Pos.Add(mgl64.Vec3{0, cfg.MuzzleHeight, 0})
	vel := dir.Mul(cfg.MuzzleSpeed)

	sim.Reg.AddProjectile(entity.NewProjectile(
		pos, vel, entity.OwnerPlayer, cfg.PlayerDamage, now, cfg.PlayerLifetime,
	))
	return true
}

// SpawnNamed spawns a projectile from the named entities.yaml entry in
// the given direction. Unknown names are a no-op.
func (s *CombatSystem) SpawnNamed(sim *state.Sim, name string, pos, dir mgl64.Vec3, owner entity.Owner, now float64) {
	spec, ok := s.entities.Projectiles[name]
	if !ok {
		return
	}
	if dir.Len() == 0 {
		return
	}
	vel := dir.Normalize().Mul(spec.Speed)
	sim.Reg.AddProjectile(entity.NewProjectile(pos, vel, owner, spec.Damage, now, spec.Lifetime))
}

// Update integrates all projectiles and resolves hits. Each projectile
// is removed exactly once, on expiry or on its first hit.
func (s *CombatSystem) Update(sim *state.Sim, now, dt float64) {
	for _, proj := range sim.Reg.Projectiles {
		if !proj.Active {
			continue
		}

		proj.Advance(dt)

		if proj.Expired(now) {
			proj.Deactivate()
			continue
		}

		s.resolveHit(sim, proj)
	}

	sim.Reg.CompactProjectiles()
}

// resolveHit applies at most one hit per projectile per frame. Player
// projectiles check enemies before the boss; an enemy match skips the
// boss check for that frame.
func (s *CombatSystem) resolveHit(sim *state.Sim, proj *entity.Projectile) {
	cfg := s.physics.Combat

	if proj.Owner == entity.OwnerEnemy {
		p := sim.Player
		if p == nil {
			return
		}
		if proj.Pos.Sub(p.Pos).Len() < cfg.HitRadiusPlayer {
			p.TakeDamage(proj.Damage)
			proj.Deactivate()
		}
		return
	}

	for _, e := range sim.Reg.Enemies {
		if !e.Alive() {
			continue
		}
		if proj.Pos.Sub(e.Pos).Len() < cfg.HitRadiusEnemy {
			e.TakeDamage(proj.Damage)
			proj.Deactivate()
			return
		}
	}

	if b := sim.Reg.Boss; b != nil && b.Alive() {
		if proj.Pos.Sub(b.Pos).Len() < cfg.HitRadiusBoss {
			b.TakeDamage(proj.Damage)
			proj.Deactivate()
		}
	}
}

// aimDirection applies camera pitch and yaw to the forward unit vector
func aimDirection(yaw, pitch float64) mgl64.Vec3 {
	forward := mgl64.Vec3{0, 0, -1}
	dir := mgl64.Rotate3DX(pitch).Mul3x1(forward)
	return mgl64.Rotate3DY(yaw).Mul3x1(dir)
}
