package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/gatefall/internal/application/state"
	"github.com/younwookim/gatefall/internal/domain/entity"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

func testPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Physics: config.PhysicsSettings{
			Gravity:    20.0,
			MaxDelta:   0.1,
			WorldFloor: 1.0,
		},
		Movement: config.MovementConfig{
			BaseSpeed:     6.0,
			RunMultiplier: 1.8,
			Decay:         0.8,
		},
		Jump: config.JumpConfig{
			Impulse: 8.0,
		},
		Combat: config.CombatConfig{
			FireCooldown:    0.3,
			MuzzleSpeed:     25.0,
			MuzzleHeight:    1.5,
			PlayerDamage:    10,
			PlayerLifetime:  2.0,
			HitRadiusEnemy:  1.5,
			HitRadiusBoss:   3.0,
			HitRadiusPlayer: 1.0,
		},
		Pickup: config.PickupConfig{
			Radius: 1.5,
		},
		Progression: config.ProgressionConfig{
			ExitRadius:       3.0,
			TransitionDelay:  1.0,
			GateOpenDuration: 1.5,
		},
		Animation: config.AnimationConfig{
			SwingRate: 10.0,
		},
	}
}

func testEntitiesConfig() *config.EntitiesConfig {
	return &config.EntitiesConfig{
		Player: config.PlayerConfig{
			MaxHealth: 100,
			MaxAmmo:   30,
		},
		Enemies: map[string]config.EnemyConfig{
			"wolf": {
				Behavior:       "melee",
				MaxHealth:      30,
				Speed:          4.0,
				Damage:         10,
				AttackRange:    2.0,
				AggroRange:     12.0,
				AttackCooldown: 1.0,
			},
			"spirit": {
				Behavior:     "ranged",
				MaxHealth:    20,
				Speed:        2.5,
				Damage:       8,
				AttackRange:  10.0,
				AggroRange:   16.0,
				ShotCooldown: 2.0,
				Projectile:   "spiritBolt",
				BobAmplitude: 0.3,
				BobRate:      2.0,
			},
		},
		Boss: config.BossConfig{
			MaxHealth:      300,
			Speed:          3.5,
			HoldDistance:   8.0,
			CooldownHigh:   2.0,
			CooldownLow:    1.0,
			PhaseThreshold: 0.5,
			SlamRange:      5.0,
			SlamRadius:     8.0,
			SlamDamage:     20,
			SlamDuration:   0.4,
			Projectile:     "bossBolt",
			SpreadRad:      0.2,
		},
		Projectiles: map[string]config.ProjectileConfig{
			"spiritBolt": {Speed: 12.0, Damage: 8, Lifetime: 3.0},
			"bossBolt":   {Speed: 15.0, Damage: 12, Lifetime: 4.0},
		},
	}
}

// newTestSim creates a sim with a player at the given position
func newTestSim(playerPos mgl64.Vec3) *state.Sim {
	sim := state.NewSim()
	sim.Level = 1
	sim.Player = entity.NewPlayer(playerPos, 100, 30)
	return sim
}

// testWolf creates a wolf with the stats of testEntitiesConfig
func testWolf(pos mgl64.Vec3) *entity.Enemy {
	e := entity.NewEnemy(entity.EnemyWolf, pos)
	e.MaxHealth = 30
	e.Health = 30
	e.Speed = 4.0
	e.Damage = 10
	e.AttackRange = 2.0
	e.AggroRange = 12.0
	return e
}

// testSpirit creates a spirit with the stats of testEntitiesConfig
func testSpirit(pos mgl64.Vec3) *entity.Enemy {
	e := entity.NewEnemy(entity.EnemySpirit, pos)
	e.MaxHealth = 20
	e.Health = 20
	e.Speed = 2.5
	e.Damage = 8
	e.AttackRange = 10.0
	e.AggroRange = 16.0
	return e
}
