package state

import (
	"github.com/google/uuid"

	"github.com/younwookim/gatefall/internal/domain/entity"
)

// Sim is the authoritative simulation state for the loaded level.
// It is passed by reference into each system's update; systems mutate
// only the fields they own. There is no ambient global state.
type Sim struct {
	State GameState

	// Level is the 1-based index of the current level
	Level int

	Player *entity.Player
	Reg    *entity.Registry

	// Progression flags, reset on every level load
	GateOpen     bool
	PuzzleSolved bool

	// Generation identifies the current level load. Deferred callbacks
	// capture it; a mismatch at fire time makes them no-ops.
	Generation uuid.UUID
}

// NewSim creates an empty simulation state
func NewSim() *Sim {
	return &Sim{
		State:      StatePlaying,
		Reg:        entity.NewRegistry(),
		Generation: uuid.New(),
	}
}

// ResetForLevel atomically replaces all level-scoped state and rotates
// the generation token, invalidating pending deferred callbacks.
func (s *Sim) ResetForLevel(level int, player *entity.Player, reg *entity.Registry) {
	s.State = StatePlaying
	s.Level = level
	s.Player = player
	s.Reg = reg
	s.GateOpen = false
	s.PuzzleSolved = false
	s.Generation = uuid.New()
}
