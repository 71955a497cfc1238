package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/gatefall/internal/domain/entity"
)

func TestPlayerControllerMovement(t *testing.T) {
	cfg := testPhysicsConfig()
	ctrl := NewPlayerController(cfg)

	t.Run("forward moves along camera -Z", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		sim.Player.Grounded = true

		ctrl.Update(sim, InputSnapshot{Forward: true}, 0.016)

		assert.InDelta(t, -cfg.Movement.BaseSpeed, sim.Player.Vel.Z(), 1e-9)
		assert.InDelta(t, 0.0, sim.Player.Vel.X(), 1e-9)
		assert.Less(t, sim.Player.Pos.Z(), 0.0)
		assert.Equal(t, entity.AnimWalk, sim.Player.Anim)
	})

	t.Run("yaw rotates movement into world space", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		sim.Player.Grounded = true

		// Camera turned 90 degrees: forward becomes world -X
		ctrl.Update(sim, InputSnapshot{Forward: true, Yaw: math.Pi / 2}, 0.016)

		assert.InDelta(t, -cfg.Movement.BaseSpeed, sim.Player.Vel.X(), 1e-9)
		assert.InDelta(t, 0.0, sim.Player.Vel.Z(), 1e-9)
	})

	t.Run("diagonal input is normalized", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})

		ctrl.Update(sim, InputSnapshot{Forward: true, Right: true}, 0.016)

		horizontal := math.Hypot(sim.Player.Vel.X(), sim.Player.Vel.Z())
		assert.InDelta(t, cfg.Movement.BaseSpeed, horizontal, 1e-9)
	})

	t.Run("run multiplies speed", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})

		ctrl.Update(sim, InputSnapshot{Forward: true, Run: true}, 0.016)

		want := cfg.Movement.BaseSpeed * cfg.Movement.RunMultiplier
		assert.InDelta(t, want, math.Abs(sim.Player.Vel.Z()), 1e-9)
	})

	t.Run("opposed keys cancel and decay", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		sim.Player.Vel = mgl64.Vec3{5, 0, 0}

		ctrl.Update(sim, InputSnapshot{Forward: true, Back: true}, 0.016)

		assert.InDelta(t, 5*cfg.Movement.Decay, sim.Player.Vel.X(), 1e-9)
		assert.Equal(t, entity.AnimIdle, sim.Player.Anim)
	})
}

func TestPlayerControllerDecay(t *testing.T) {
	cfg := testPhysicsConfig()
	ctrl := NewPlayerController(cfg)

	sim := newTestSim(mgl64.Vec3{0, 1, 0})
	sim.Player.Vel = mgl64.Vec3{10, 0, -10}
	sim.Player.Anim = entity.AnimWalk

	ctrl.Update(sim, InputSnapshot{}, 0.016)

	assert.InDelta(t, 8.0, sim.Player.Vel.X(), 1e-9)
	assert.InDelta(t, -8.0, sim.Player.Vel.Z(), 1e-9)
	assert.Equal(t, entity.AnimIdle, sim.Player.Anim)

	// Repeated frames converge toward rest
	for i := 0; i < 60; i++ {
		ctrl.Update(sim, InputSnapshot{}, 0.016)
	}
	assert.Less(t, math.Abs(sim.Player.Vel.X()), 0.01)
}

func TestPlayerControllerJump(t *testing.T) {
	cfg := testPhysicsConfig()
	ctrl := NewPlayerController(cfg)

	t.Run("grounded jump applies impulse", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		sim.Player.Grounded = true

		ctrl.Update(sim, InputSnapshot{Jump: true}, 0.016)

		assert.InDelta(t, cfg.Jump.Impulse, sim.Player.Vel.Y(), 1e-9)
		assert.False(t, sim.Player.Grounded)
	})

	t.Run("airborne jump is ignored", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 5, 0})
		sim.Player.Grounded = false

		ctrl.Update(sim, InputSnapshot{Jump: true}, 0.016)

		// Only gravity acted on the velocity
		assert.InDelta(t, -cfg.Physics.Gravity*0.016, sim.Player.Vel.Y(), 1e-9)
	})
}

func TestPlayerControllerGravity(t *testing.T) {
	cfg := testPhysicsConfig()
	ctrl := NewPlayerController(cfg)

	sim := newTestSim(mgl64.Vec3{0, 10, 0})
	sim.Player.Grounded = false

	ctrl.Update(sim, InputSnapshot{}, 0.1)

	assert.InDelta(t, -cfg.Physics.Gravity*0.1, sim.Player.Vel.Y(), 1e-9)
	assert.Less(t, sim.Player.Pos.Y(), 10.0)
}

func TestPlayerControllerNilPlayer(t *testing.T) {
	ctrl := NewPlayerController(testPhysicsConfig())
	sim := newTestSim(mgl64.Vec3{})
	sim.Player = nil

	assert.NotPanics(t, func() {
		ctrl.Update(sim, InputSnapshot{Forward: true, Jump: true}, 0.016)
	})
}
