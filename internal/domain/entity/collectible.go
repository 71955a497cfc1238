package entity

import "github.com/go-gl/mathgl/mgl64"

// CollectibleKind identifies the pickup effect
type CollectibleKind int

const (
	PickupHealth CollectibleKind = iota
	PickupAmmo
	PickupKey
)

// String returns the string representation of the collectible kind
func (k CollectibleKind) String() string {
	switch k {
	case PickupHealth:
		return "health"
	case PickupAmmo:
		return "ammo"
	case PickupKey:
		return "key"
	default:
		return "unknown"
	}
}

// Collectible is a pickup placed in the level. Its effect is applied
// immediately on pickup and the collectible is removed.
type Collectible struct {
	Kind CollectibleKind
	Pos  mgl64.Vec3

	// Amount restored for health/ammo pickups
	Amount int
}
