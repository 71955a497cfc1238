package system

import (
	"math"

	"github.com/younwookim/gatefall/internal/application/state"
	"github.com/younwookim/gatefall/internal/domain/entity"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

// playerCapsuleHeight is the offset between a platform's top surface
// and the player position resting on it.
const playerCapsuleHeight = 1.0

// landingBandBelow extends the landing band below the platform top so
// a fast frame cannot tunnel past the surface.
const landingBandBelow = 0.5

// CollisionSystem resolves vertical penetration against platforms and
// clamps to the world floor, after player integration.
type CollisionSystem struct {
	config *config.PhysicsConfig
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg *config.PhysicsConfig) *CollisionSystem {
	return &CollisionSystem{config: cfg}
}

// Resolve clamps the player against platforms and the world floor.
// Platforms are checked in registration order and the first valid
// landing resolves the frame; registration order is the tie-break,
// not the closest platform.
func (s *CollisionSystem) Resolve(sim *state.Sim) {
	p := sim.Player
	if p == nil {
		return
	}

	p.Grounded = false

	for _, plat := range sim.Reg.Platforms {
		if s.lands(p, plat) {
			p.Pos[1] = plat.Top() + playerCapsuleHeight
			p.Vel[1] = 0
			p.Grounded = true
			return
		}
	}

	// World floor clamp; a player falling in a gap between platforms
	// keeps falling until it reaches this.
	if p.Pos.Y() < s.config.Physics.WorldFloor {
		p.Pos[1] = s.config.Physics.WorldFloor
		p.Vel[1] = 0
		p.Grounded = true
	}
}

// lands checks if the player is landing on the platform this frame:
// downward motion, horizontal bounds overlap, and y inside the landing
// band [top-0.5, top+1).
func (s *CollisionSystem) lands(p *entity.Player, plat *entity.Platform) bool {
	if p.Vel.Y() >= 0 {
		return false
	}

	top := plat.Top()
	if p.Pos.Y() < top-landingBandBelow || p.Pos.Y() >= top+playerCapsuleHeight {
		return false
	}

	switch plat.Kind {
	case entity.PlatformBox:
		dx := math.Abs(p.Pos.X() - plat.Pos.X())
		dz := math.Abs(p.Pos.Z() - plat.Pos.Z())
		return dx <= plat.Width/2 && dz <= plat.Depth/2
	case entity.PlatformArena:
		dx := p.Pos.X() - plat.Pos.X()
		dz := p.Pos.Z() - plat.Pos.Z()
		r := math.Hypot(dx, dz)
		return r >= plat.InnerRadius && r <= plat.OuterRadius
	default:
		return false
	}
}
