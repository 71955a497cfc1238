package system

import (
	"github.com/younwookim/gatefall/internal/application/state"
	"github.com/younwookim/gatefall/internal/domain/entity"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

// Progression tracks inventory and puzzle flags, gates exit unlocking
// and triggers level transitions. Gate and puzzle state live on the
// Sim and reset on every level load.
type Progression struct {
	physics *config.PhysicsConfig
	clock   *Clock

	// Advisory event callbacks, read-only for the UI collaborator.
	// None of them mutates gameplay state.
	OnNotice      func(msg string)
	OnGateOpened  func(level int)
	OnPuzzleStart func()

	// OnComplete fires after the transition delay to advance to the
	// next level (or victory). Wired by the session.
	OnComplete func()
}

// NewProgression creates the progression manager
func NewProgression(physics *config.PhysicsConfig, clock *Clock) *Progression {
	return &Progression{
		physics: physics,
		clock:   clock,
	}
}

// Update runs one progression pass: collectible pickup, interaction,
// and the level completion check.
func (s *Progression) Update(sim *state.Sim, in InputSnapshot, now float64) {
	p := sim.Player
	if p == nil || sim.State != state.StatePlaying {
		return
	}

	s.collectPickups(sim, p)

	if in.Interact {
		s.interact(sim, p, now)
	}

	s.checkCompletion(sim, p)
}

// collectPickups applies and removes collectibles in range. A key that
// finds no free inventory slot is rejected: it stays in the world.
func (s *Progression) collectPickups(sim *state.Sim, p *entity.Player) {
	var picked []*entity.Collectible
	for _, c := range sim.Reg.Collectibles {
		if c.Pos.Sub(p.Pos).Len() >= s.physics.Pickup.Radius {
			continue
		}

		switch c.Kind {
		case entity.PickupHealth:
			p.Heal(c.Amount)
		case entity.PickupAmmo:
			p.AddAmmo(c.Amount)
		case entity.PickupKey:
			if !p.AddItem(&entity.Item{Kind: entity.ItemKey}) {
				s.notice("packs are full")
				continue
			}
		}
		picked = append(picked, c)
	}

	for _, c := range picked {
		sim.Reg.RemoveCollectible(c)
	}
}

// interact activates the first interactable zone containing the player
func (s *Progression) interact(sim *state.Sim, p *entity.Player, now float64) {
	for _, zone := range sim.Reg.Interactables {
		if !zone.InRange(p.Pos) {
			continue
		}

		switch zone.Kind {
		case entity.InteractGate:
			s.tryUnlockGate(sim, p, now)
		case entity.InteractPuzzle:
			if s.OnPuzzleStart != nil {
				s.OnPuzzleStart()
			}
		}
		return
	}
}

// tryUnlockGate checks the level-specific unlock condition. Levels
// without a defined condition fail closed.
func (s *Progression) tryUnlockGate(sim *state.Sim, p *entity.Player, now float64) {
	if sim.GateOpen {
		return
	}

	switch sim.Level {
	case 1:
		if !p.HasItem(entity.ItemKey) {
			s.notice("need the key")
			return
		}
		p.RemoveItem(entity.ItemKey)
	case 2:
		if !sim.PuzzleSolved {
			s.notice("the gate is sealed by the puzzle")
			return
		}
	default:
		s.notice("the gate will not open")
		return
	}

	sim.GateOpen = true

	if gate := sim.Reg.ExitGate; gate != nil {
		sim.Reg.AddEffect(&entity.Effect{
			Kind:     entity.EffectGateOpen,
			Pos:      gate.Pos,
			Start:    now,
			Duration: s.physics.Progression.GateOpenDuration,
		})
	}

	if s.OnGateOpened != nil {
		s.OnGateOpened(sim.Level)
	}
}

// checkCompletion advances when an open exit gate exists and the
// player stands within the exit radius. The actual advance is a
// deferred callback guarded by the level generation token.
func (s *Progression) checkCompletion(sim *state.Sim, p *entity.Player) {
	gate := sim.Reg.ExitGate
	if gate == nil || !sim.GateOpen {
		return
	}
	if gate.Pos.Sub(p.Pos).Len() >= s.physics.Progression.ExitRadius {
		return
	}

	sim.State = state.StateTransition
	s.clock.Schedule(s.physics.Progression.TransitionDelay, sim.Generation, func() {
		if s.OnComplete != nil {
			s.OnComplete()
		}
	})
}

func (s *Progression) notice(msg string) {
	if s.OnNotice != nil {
		s.OnNotice(msg)
	}
}
