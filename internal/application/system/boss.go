package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/gatefall/internal/application/state"
	"github.com/younwookim/gatefall/internal/domain/entity"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

// BossFight drives the boss encounter. Phase is derived from the
// current health fraction each frame; attack type is selected by
// distance when the cooldown expires.
type BossFight struct {
	boss   *config.BossConfig
	combat *CombatSystem
}

// NewBossFight creates the boss encounter controller
func NewBossFight(boss *config.BossConfig, combat *CombatSystem) *BossFight {
	return &BossFight{
		boss:   boss,
		combat: combat,
	}
}

// Update runs one boss frame. On health <= 0 the boss is removed and
// the victory terminal state is entered immediately.
func (s *BossFight) Update(sim *state.Sim, now, dt float64) {
	b := sim.Reg.Boss
	p := sim.Player
	if b == nil || p == nil {
		return
	}

	if !b.Alive() {
		sim.Reg.Boss = nil
		sim.State = state.StateVictory
		return
	}

	to := p.Pos.Sub(b.Pos)
	dist := to.Len()

	// Facing always tracks the player
	b.Yaw = math.Atan2(to.X(), to.Z())

	if dist > s.boss.HoldDistance && dist > 0 {
		b.Pos = b.Pos.Add(to.Mul(s.boss.Speed * dt / dist))
	}

	if now-b.LastAttack < s.cooldown(b) {
		return
	}
	b.LastAttack = now

	if dist < s.boss.SlamRange {
		s.groundSlam(sim, b, p, now)
	} else {
		s.rangedSpread(sim, b, p, now)
	}
}

// cooldown selects the attack interval by health fraction; exactly at
// the threshold the low-health interval applies
func (s *BossFight) cooldown(b *entity.Boss) float64 {
	if b.HealthFraction() > s.boss.PhaseThreshold {
		return s.boss.CooldownHigh
	}
	return s.boss.CooldownLow
}

// groundSlam applies area damage once, immediately, when the player is
// inside the slam radius. The shockwave effect is presentation-only.
func (s *BossFight) groundSlam(sim *state.Sim, b *entity.Boss, p *entity.Player, now float64) {
	sim.Reg.AddEffect(&entity.Effect{
		Kind:     entity.EffectShockwave,
		Pos:      b.Pos,
		Radius:   s.boss.SlamRadius,
		Start:    now,
		Duration: s.boss.SlamDuration,
	})

	if p.Pos.Sub(b.Pos).Len() < s.boss.SlamRadius {
		p.TakeDamage(s.boss.SlamDamage)
	}
}

// rangedSpread fires three projectiles: the center ray plus two rays
// rotated by the spread offset, each through the standard pipeline
func (s *BossFight) rangedSpread(sim *state.Sim, b *entity.Boss, p *entity.Player, now float64) {
	center := p.Pos.Sub(b.Pos)
	if center.Len() == 0 {
		return
	}

	for _, off := range []float64{-s.boss.SpreadRad, 0, s.boss.SpreadRad} {
		dir := mgl64.Rotate3DY(off).Mul3x1(center)
		s.combat.SpawnNamed(sim, s.boss.Projectile, b.Pos, dir, entity.OwnerEnemy, now)
	}
}
