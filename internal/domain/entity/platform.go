package entity

import "github.com/go-gl/mathgl/mgl64"

// PlatformKind identifies the platform shape variant
type PlatformKind int

const (
	// PlatformBox is an axis-aligned box platform
	PlatformBox PlatformKind = iota
	// PlatformArena is a circular ring floor (boss arena)
	PlatformArena
)

// Platform is a static piece of walkable level geometry.
// Immutable once registered; the registration order is the collision
// resolution order.
type Platform struct {
	Kind PlatformKind
	Pos  mgl64.Vec3 // center

	// Box dimensions
	Width  float64
	Height float64
	Depth  float64

	// Arena radii
	InnerRadius float64
	OuterRadius float64
}

// NewBoxPlatform creates an axis-aligned box platform centered at pos
func NewBoxPlatform(pos mgl64.Vec3, width, height, depth float64) *Platform {
	return &Platform{
		Kind:   PlatformBox,
		Pos:    pos,
		Width:  width,
		Height: height,
		Depth:  depth,
	}
}

// NewArenaPlatform creates a circular ring platform centered at pos
func NewArenaPlatform(pos mgl64.Vec3, innerRadius, outerRadius float64) *Platform {
	return &Platform{
		Kind:        PlatformArena,
		Pos:         pos,
		InnerRadius: innerRadius,
		OuterRadius: outerRadius,
	}
}

// Top returns the y coordinate of the walkable top surface
func (p *Platform) Top() float64 {
	if p.Kind == PlatformBox {
		return p.Pos.Y() + p.Height/2
	}
	return p.Pos.Y()
}
