package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// EnemyKind identifies the enemy behavior variant
type EnemyKind int

const (
	// EnemyWolf is a melee attacker
	EnemyWolf EnemyKind = iota
	// EnemySpirit is a ranged attacker with a cosmetic vertical bob
	EnemySpirit
)

// String returns the string representation of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case EnemyWolf:
		return "wolf"
	case EnemySpirit:
		return "spirit"
	default:
		return "unknown"
	}
}

// Enemy represents a hostile creature
type Enemy struct {
	Kind EnemyKind
	Pos  mgl64.Vec3

	// BaseY anchors the spirit bob; pursuit moves it, the bob
	// oscillates around it.
	BaseY float64

	Health    int
	MaxHealth int

	Speed       float64
	Damage      int
	AttackRange float64
	AggroRange  float64

	Yaw float64

	// Behavior timestamps (clock seconds)
	LastAttack float64
	LastShot   float64
}

// NewEnemy creates an enemy at the given position
func NewEnemy(kind EnemyKind, pos mgl64.Vec3) *Enemy {
	return &Enemy{
		Kind:  kind,
		Pos:   pos,
		BaseY: pos.Y(),
		// The first attack is gated only by proximity
		LastAttack: math.Inf(-1),
		LastShot:   math.Inf(-1),
	}
}

// Alive returns true if health > 0
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// TakeDamage reduces health, clamped at 0
func (e *Enemy) TakeDamage(amount int) {
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
}
