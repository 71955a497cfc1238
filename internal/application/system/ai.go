package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/gatefall/internal/application/state"
	"github.com/younwookim/gatefall/internal/domain/entity"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

// EnemyAI drives per-enemy aggro and attack decisions. Aggro is
// recomputed from distance every frame with no hysteresis band, so
// attack cadence can flicker exactly at a range boundary; that
// behavior is kept intentionally.
type EnemyAI struct {
	entities *config.EntitiesConfig
	combat   *CombatSystem
}

// NewEnemyAI creates a new enemy AI controller
func NewEnemyAI(entities *config.EntitiesConfig, combat *CombatSystem) *EnemyAI {
	return &EnemyAI{
		entities: entities,
		combat:   combat,
	}
}

// Update runs one AI pass. Dead enemies are removed before any aggro
// logic runs.
func (s *EnemyAI) Update(sim *state.Sim, now, dt float64) {
	sim.Reg.RemoveDeadEnemies()

	p := sim.Player
	if p == nil {
		return
	}

	for _, e := range sim.Reg.Enemies {
		cfg := s.entities.Enemies[e.Kind.String()]

		to := p.Pos.Sub(e.Pos)
		dist := to.Len()

		if dist < e.AggroRange {
			if dist > e.AttackRange {
				s.pursue(e, to, dist, dt)
			} else {
				s.attack(sim, e, p, cfg, now)
			}
		}

		// Cosmetic vertical bob, independent of AI state
		if e.Kind == entity.EnemySpirit {
			e.Pos[1] = e.BaseY + cfg.BobAmplitude*math.Sin(now*cfg.BobRate)
		}
	}
}

// pursue moves the enemy straight toward the player, renormalized each
// frame, and updates facing
func (s *EnemyAI) pursue(e *entity.Enemy, to mgl64.Vec3, dist, dt float64) {
	if dist == 0 {
		return
	}
	step := to.Mul(e.Speed * dt / dist)
	e.Pos = e.Pos.Add(step)
	e.BaseY += step.Y()
	e.Yaw = math.Atan2(to.X(), to.Z())
}

// attack dispatches by enemy variant: wolves hit the player directly,
// spirits fire a projectile through the combat system
func (s *EnemyAI) attack(sim *state.Sim, e *entity.Enemy, p *entity.Player, cfg config.EnemyConfig, now float64) {
	switch e.Kind {
	case entity.EnemyWolf:
		if now-e.LastAttack < cfg.AttackCooldown {
			return
		}
		e.LastAttack = now
		p.TakeDamage(e.Damage)
	case entity.EnemySpirit:
		if now-e.LastShot < cfg.ShotCooldown {
			return
		}
		e.LastShot = now
		s.combat.SpawnNamed(sim, cfg.Projectile, e.Pos, p.Pos.Sub(e.Pos), entity.OwnerEnemy, now)
	}
}
