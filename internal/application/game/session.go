// Package game provides the session that advances the simulation once
// per frame and the loop manager that handles scene transitions.
package game

import (
	"fmt"

	"github.com/younwookim/gatefall/internal/application/state"
	"github.com/younwookim/gatefall/internal/application/system"
	"github.com/younwookim/gatefall/internal/domain/entity"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

// LevelSource supplies level definitions by index
type LevelSource interface {
	LoadLevel(index int) (*config.LevelConfig, error)
	CountLevels() int
}

// Session owns the simulation state and advances it in the fixed tick
// order: player integration, platform collision, enemy AI, boss, combat
// projectiles, progression. The ordering is a design invariant: a
// same-frame landing must be visible to the same-frame completion check.
type Session struct {
	cfg    *config.GameConfig
	levels LevelSource

	sim   *state.Sim
	clock *system.Clock

	player      *system.PlayerController
	collision   *system.CollisionSystem
	combat      *system.CombatSystem
	ai          *system.EnemyAI
	boss        *system.BossFight
	progression *system.Progression

	// Advisory event callbacks for the UI collaborator
	OnNotice       func(msg string)
	OnGateOpened   func(level int)
	OnPuzzleStart  func()
	OnLevelAdvance func(level int)
	OnVictory      func()
	OnGameOver     func()
}

// NewSession creates a session and loads the first level
func NewSession(cfg *config.GameConfig, levels LevelSource) (*Session, error) {
	combat := system.NewCombatSystem(cfg.Physics, cfg.Entities)
	clock := system.NewClock(cfg.Physics.Physics.MaxDelta)

	s := &Session{
		cfg:         cfg,
		levels:      levels,
		sim:         state.NewSim(),
		clock:       clock,
		player:      system.NewPlayerController(cfg.Physics),
		collision:   system.NewCollisionSystem(cfg.Physics),
		combat:      combat,
		ai:          system.NewEnemyAI(cfg.Entities, combat),
		boss:        system.NewBossFight(&cfg.Entities.Boss, combat),
		progression: system.NewProgression(cfg.Physics, clock),
	}

	s.progression.OnNotice = func(msg string) { s.notify(msg) }
	s.progression.OnGateOpened = func(level int) {
		if s.OnGateOpened != nil {
			s.OnGateOpened(level)
		}
	}
	s.progression.OnPuzzleStart = func() {
		if s.OnPuzzleStart != nil {
			s.OnPuzzleStart()
		}
	}
	s.progression.OnComplete = s.advance

	if err := s.LoadLevel(1); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadLevel replaces all level-scoped state atomically between ticks
func (s *Session) LoadLevel(index int) error {
	levelCfg, err := s.levels.LoadLevel(index)
	if err != nil {
		return fmt.Errorf("load level %d: %w", index, err)
	}

	reg, player, err := system.BuildLevel(levelCfg, s.cfg.Entities)
	if err != nil {
		return fmt.Errorf("build level %d: %w", index, err)
	}

	s.sim.ResetForLevel(index, player, reg)
	return nil
}

// Reload restarts the current level
func (s *Session) Reload() error {
	return s.LoadLevel(s.sim.Level)
}

// advance moves to the next level, or enters victory when none remains
func (s *Session) advance() {
	next := s.sim.Level + 1
	if next > s.levels.CountLevels() {
		s.sim.State = state.StateVictory
		if s.OnVictory != nil {
			s.OnVictory()
		}
		return
	}

	if err := s.LoadLevel(next); err != nil {
		s.notify(fmt.Sprintf("failed to load level %d", next))
		return
	}
	if s.OnLevelAdvance != nil {
		s.OnLevelAdvance(next)
	}
}

// Tick advances the simulation by one frame. dt is the raw elapsed
// time in seconds; the clock clamps it.
func (s *Session) Tick(in system.InputSnapshot, dt float64) {
	dt = s.clock.Tick(dt)
	now := s.clock.Now()

	if s.sim.State == state.StatePlaying {
		s.player.Update(s.sim, in, dt)
		s.collision.Resolve(s.sim)
		s.ai.Update(s.sim, now, dt)

		wasVictory := s.sim.State == state.StateVictory
		s.boss.Update(s.sim, now, dt)
		if !wasVictory && s.sim.State == state.StateVictory && s.OnVictory != nil {
			s.OnVictory()
		}

		if in.Fire {
			s.combat.TryFire(s.sim, in, now)
		}
		s.combat.Update(s.sim, now, dt)

		s.progression.Update(s.sim, in, now)

		if p := s.sim.Player; p != nil && p.Health == 0 && s.sim.State == state.StatePlaying {
			s.sim.State = state.StateGameOver
			if s.OnGameOver != nil {
				s.OnGameOver()
			}
		}
	}

	s.sim.Reg.PruneEffects(now)
	s.clock.RunDue(s.sim.Generation)
}

// SetPuzzleSolved records the puzzle collaborator's result. It is
// consumed on the next gate evaluation, never reset by it.
func (s *Session) SetPuzzleSolved(solved bool) {
	s.sim.PuzzleSolved = solved
}

// Sim exposes the simulation state for the presentation layer.
// Read-only by convention.
func (s *Session) Sim() *state.Sim {
	return s.sim
}

// Now returns the simulation clock's elapsed seconds
func (s *Session) Now() float64 {
	return s.clock.Now()
}

// HUD is the read-only per-frame snapshot for the UI collaborator
type HUD struct {
	Health    int
	MaxHealth int
	Ammo      int
	MaxAmmo   int
	Level     int
	Inventory []entity.ItemKind

	BossPresent   bool
	BossHealth    int
	BossMaxHealth int
}

// HUD builds the UI snapshot for the current frame
func (s *Session) HUD() HUD {
	h := HUD{Level: s.sim.Level}

	if p := s.sim.Player; p != nil {
		h.Health = p.Health
		h.MaxHealth = p.MaxHealth
		h.Ammo = p.Ammo
		h.MaxAmmo = p.MaxAmmo
		for _, it := range p.Inventory {
			if it != nil {
				h.Inventory = append(h.Inventory, it.Kind)
			}
		}
	}

	if b := s.sim.Reg.Boss; b != nil {
		h.BossPresent = true
		h.BossHealth = b.Health
		h.BossMaxHealth = b.MaxHealth
	}

	return h
}

func (s *Session) notify(msg string) {
	if s.OnNotice != nil {
		s.OnNotice(msg)
	}
}
