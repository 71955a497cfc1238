package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/gatefall/internal/application/state"
	"github.com/younwookim/gatefall/internal/domain/entity"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

// PlayerController integrates player velocity and position from input
// and gravity, tracks grounded state and the discrete animation state.
type PlayerController struct {
	config *config.PhysicsConfig
}

// NewPlayerController creates a new player controller
func NewPlayerController(cfg *config.PhysicsConfig) *PlayerController {
	return &PlayerController{config: cfg}
}

// Update applies one frame of movement. dt is already clamped by the clock.
func (s *PlayerController) Update(sim *state.Sim, in InputSnapshot, dt float64) {
	p := sim.Player
	if p == nil {
		return
	}

	s.applyMovement(p, in, dt)

	// Gravity before the ground clamp
	p.Vel[1] -= s.config.Physics.Gravity * dt

	if in.Jump && p.Grounded {
		p.Vel[1] = s.config.Jump.Impulse
		p.Grounded = false
	}

	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
}

// applyMovement resolves the horizontal velocity from held keys
func (s *PlayerController) applyMovement(p *entity.Player, in InputSnapshot, dt float64) {
	if !in.HasMovement() {
		// Multiplicative decay toward zero
		p.Vel[0] *= s.config.Movement.Decay
		p.Vel[2] *= s.config.Movement.Decay
		p.Anim = entity.AnimIdle
		return
	}

	// Camera-space direction: forward is -Z
	var dir mgl64.Vec3
	if in.Forward {
		dir[2]--
	}
	if in.Back {
		dir[2]++
	}
	if in.Left {
		dir[0]--
	}
	if in.Right {
		dir[0]++
	}

	// Rotate into world space by camera yaw
	dir = mgl64.Rotate3DY(in.Yaw).Mul3x1(dir)

	if dir.Len() == 0 {
		// Opposed keys cancel out
		p.Vel[0] *= s.config.Movement.Decay
		p.Vel[2] *= s.config.Movement.Decay
		p.Anim = entity.AnimIdle
		return
	}
	dir = dir.Normalize()

	speed := s.config.Movement.BaseSpeed
	if in.Run {
		speed *= s.config.Movement.RunMultiplier
	}

	p.Vel[0] = dir[0] * speed
	p.Vel[2] = dir[2] * speed

	p.Yaw = math.Atan2(dir[0], dir[2])
	p.Anim = entity.AnimWalk
	p.AnimTime += dt
}
