package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gatefall/internal/domain/entity"
)

func TestTryFire(t *testing.T) {
	combat := NewCombatSystem(testPhysicsConfig(), testEntitiesConfig())

	t.Run("spawns projectile and spends ammo", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		sim.Player.Ammo = 5
		sim.Player.LastShot = -10

		ok := combat.TryFire(sim, InputSnapshot{}, 1.0)

		require.True(t, ok)
		assert.Equal(t, 4, sim.Player.Ammo)
		require.Len(t, sim.Reg.Projectiles, 1)

		proj := sim.Reg.Projectiles[0]
		assert.Equal(t, entity.OwnerPlayer, proj.Owner)
		assert.InDelta(t, 2.5, proj.Pos.Y(), 1e-9, "spawned at muzzle height")
		assert.InDelta(t, -25.0, proj.Vel.Z(), 1e-9, "flies along camera forward")
	})

	t.Run("respects cooldown", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		sim.Player.Ammo = 5
		sim.Player.LastShot = -10

		require.True(t, combat.TryFire(sim, InputSnapshot{}, 1.0))
		assert.False(t, combat.TryFire(sim, InputSnapshot{}, 1.2), "within 0.3s cooldown")
		assert.True(t, combat.TryFire(sim, InputSnapshot{}, 1.3))
		assert.Equal(t, 3, sim.Player.Ammo)
	})

	t.Run("no ammo is a no-op", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		sim.Player.Ammo = 0
		sim.Player.LastShot = -10

		assert.False(t, combat.TryFire(sim, InputSnapshot{}, 1.0))
		assert.Equal(t, 0, sim.Player.Ammo)
		assert.Empty(t, sim.Reg.Projectiles)
	})

	t.Run("aim follows yaw", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		sim.Player.Ammo = 5
		sim.Player.LastShot = -10

		require.True(t, combat.TryFire(sim, InputSnapshot{Yaw: 3.14159265}, 1.0))
		proj := sim.Reg.Projectiles[0]
		assert.InDelta(t, 25.0, proj.Vel.Z(), 1e-6, "half turn flips forward")
	})
}

func TestSpawnNamed(t *testing.T) {
	combat := NewCombatSystem(testPhysicsConfig(), testEntitiesConfig())

	t.Run("known projectile", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})

		combat.SpawnNamed(sim, "spiritBolt", mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 0, 2}, entity.OwnerEnemy, 1.0)

		require.Len(t, sim.Reg.Projectiles, 1)
		proj := sim.Reg.Projectiles[0]
		assert.Equal(t, entity.OwnerEnemy, proj.Owner)
		assert.Equal(t, 8, proj.Damage)
		assert.InDelta(t, 12.0, proj.Vel.Len(), 1e-9, "direction is normalized before scaling")
	})

	t.Run("unknown name is a no-op", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})

		combat.SpawnNamed(sim, "fireball", mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, entity.OwnerEnemy, 1.0)

		assert.Empty(t, sim.Reg.Projectiles)
	})

	t.Run("zero direction is a no-op", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})

		combat.SpawnNamed(sim, "spiritBolt", mgl64.Vec3{}, mgl64.Vec3{}, entity.OwnerEnemy, 1.0)

		assert.Empty(t, sim.Reg.Projectiles)
	})
}

func TestCombatUpdateHits(t *testing.T) {
	combat := NewCombatSystem(testPhysicsConfig(), testEntitiesConfig())

	t.Run("player projectile hits enemy", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		wolf := testWolf(mgl64.Vec3{0, 1, -5})
		sim.Reg.AddEnemy(wolf)
		sim.Reg.AddProjectile(entity.NewProjectile(
			mgl64.Vec3{0, 1, -4.5}, mgl64.Vec3{0, 0, -1}, entity.OwnerPlayer, 10, 0, 2.0,
		))

		combat.Update(sim, 0.016, 0.016)

		assert.Equal(t, 20, wolf.Health)
		assert.Empty(t, sim.Reg.Projectiles, "hit projectiles are compacted away")
	})

	t.Run("enemies are checked before the boss", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		wolf := testWolf(mgl64.Vec3{0, 1, -5})
		sim.Reg.AddEnemy(wolf)
		sim.Reg.Boss = entity.NewBoss(mgl64.Vec3{0, 1, -5.5}, 300)
		sim.Reg.AddProjectile(entity.NewProjectile(
			mgl64.Vec3{0, 1, -5}, mgl64.Vec3{}, entity.OwnerPlayer, 10, 0, 2.0,
		))

		combat.Update(sim, 0.016, 0.016)

		assert.Equal(t, 20, wolf.Health)
		assert.Equal(t, 300, sim.Reg.Boss.Health, "one hit per projectile per frame")
	})

	t.Run("dead enemies are skipped", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		corpse := testWolf(mgl64.Vec3{0, 1, -5})
		corpse.Health = 0
		sim.Reg.AddEnemy(corpse)
		sim.Reg.Boss = entity.NewBoss(mgl64.Vec3{0, 1, -5.5}, 300)
		sim.Reg.AddProjectile(entity.NewProjectile(
			mgl64.Vec3{0, 1, -5}, mgl64.Vec3{}, entity.OwnerPlayer, 10, 0, 2.0,
		))

		combat.Update(sim, 0.016, 0.016)

		assert.Equal(t, 0, corpse.Health)
		assert.Equal(t, 290, sim.Reg.Boss.Health)
	})

	t.Run("enemy projectile hits only the player", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		wolf := testWolf(mgl64.Vec3{0, 1, 0.4})
		sim.Reg.AddEnemy(wolf)
		sim.Reg.AddProjectile(entity.NewProjectile(
			mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{}, entity.OwnerEnemy, 8, 0, 2.0,
		))

		combat.Update(sim, 0.016, 0.016)

		assert.Equal(t, 92, sim.Player.Health)
		assert.Equal(t, 30, wolf.Health, "enemies never friendly-fire")
	})

	t.Run("miss leaves projectile in flight", func(t *testing.T) {
		sim := newTestSim(mgl64.Vec3{0, 1, 0})
		sim.Reg.AddEnemy(testWolf(mgl64.Vec3{0, 1, -50}))
		sim.Reg.AddProjectile(entity.NewProjectile(
			mgl64.Vec3{0, 1, -5}, mgl64.Vec3{0, 0, -10}, entity.OwnerPlayer, 10, 0, 2.0,
		))

		combat.Update(sim, 0.016, 0.016)

		require.Len(t, sim.Reg.Projectiles, 1)
		assert.InDelta(t, -5.16, sim.Reg.Projectiles[0].Pos.Z(), 1e-9)
	})
}

func TestCombatUpdateExpiry(t *testing.T) {
	combat := NewCombatSystem(testPhysicsConfig(), testEntitiesConfig())

	sim := newTestSim(mgl64.Vec3{0, 1, 0})
	sim.Reg.AddProjectile(entity.NewProjectile(
		mgl64.Vec3{0, 1, -50}, mgl64.Vec3{0, 0, -1}, entity.OwnerPlayer, 10, 0, 2.0,
	))

	combat.Update(sim, 1.9, 0.016)
	assert.Len(t, sim.Reg.Projectiles, 1, "still within lifetime")

	combat.Update(sim, 2.1, 0.016)
	assert.Empty(t, sim.Reg.Projectiles, "expired past lifetime")
}
