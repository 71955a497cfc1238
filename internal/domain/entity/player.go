package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AnimState is the discrete animation state consumed by the presentation layer
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
)

// String returns the string representation of the animation state
func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// InventorySize is the number of inventory slots
const InventorySize = 3

// Player represents the player character
type Player struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3

	Grounded bool

	Health    int
	MaxHealth int
	Ammo      int
	MaxAmmo   int

	Inventory [InventorySize]*Item

	Anim     AnimState
	AnimTime float64 // advances only while walking
	Yaw      float64 // facing, radians

	LastShot float64 // clock time of last fired projectile
}

// NewPlayer creates a player at the given spawn position
func NewPlayer(spawn mgl64.Vec3, maxHealth, maxAmmo int) *Player {
	return &Player{
		Pos:       spawn,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Ammo:      maxAmmo,
		MaxAmmo:   maxAmmo,
		// The first shot is never cooldown-gated
		LastShot: math.Inf(-1),
	}
}

// TakeDamage reduces health, clamped at 0. Returns true if the player died.
func (p *Player) TakeDamage(amount int) bool {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health == 0
}

// Heal restores health up to max
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// AddAmmo adds ammo up to max
func (p *Player) AddAmmo(amount int) {
	p.Ammo += amount
	if p.Ammo > p.MaxAmmo {
		p.Ammo = p.MaxAmmo
	}
}

// AddItem places an item in the first free inventory slot.
// Returns false when every slot is occupied.
func (p *Player) AddItem(item *Item) bool {
	for i := range p.Inventory {
		if p.Inventory[i] == nil {
			p.Inventory[i] = item
			return true
		}
	}
	return false
}

// HasItem reports whether the inventory contains an item of the given kind
func (p *Player) HasItem(kind ItemKind) bool {
	for _, it := range p.Inventory {
		if it != nil && it.Kind == kind {
			return true
		}
	}
	return false
}

// RemoveItem removes the first item of the given kind.
// Returns false when no such item is held.
func (p *Player) RemoveItem(kind ItemKind) bool {
	for i, it := range p.Inventory {
		if it != nil && it.Kind == kind {
			p.Inventory[i] = nil
			return true
		}
	}
	return false
}

// ItemCount returns the number of occupied inventory slots
func (p *Player) ItemCount() int {
	n := 0
	for _, it := range p.Inventory {
		if it != nil {
			n++
		}
	}
	return n
}

// Swing returns the continuous limb-swing value for the walk animation
func (p *Player) Swing(rate float64) float64 {
	return math.Sin(p.AnimTime * rate)
}
