package entity

import "github.com/go-gl/mathgl/mgl64"

// InteractableKind identifies what an interactable trigger does
type InteractableKind int

const (
	// InteractGate is a level-exit gate that must be unlocked
	InteractGate InteractableKind = iota
	// InteractPuzzle launches the external puzzle mini-game
	InteractPuzzle
)

// String returns the string representation of the interactable kind
func (k InteractableKind) String() string {
	switch k {
	case InteractGate:
		return "gate"
	case InteractPuzzle:
		return "puzzle"
	default:
		return "unknown"
	}
}

// Interactable is a positioned, radius-bounded trigger zone activated
// by explicit player interaction. Immutable for the level's lifetime.
type Interactable struct {
	Kind   InteractableKind
	Pos    mgl64.Vec3
	Radius float64
}

// InRange reports whether the given point is inside the trigger radius
func (i *Interactable) InRange(p mgl64.Vec3) bool {
	return p.Sub(i.Pos).Len() < i.Radius
}
