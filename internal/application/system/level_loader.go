package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/gatefall/internal/domain/entity"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

// BuildLevel converts a LevelConfig into a populated registry and a
// freshly created player. Unknown entity references fail the load.
func BuildLevel(cfg *config.LevelConfig, entities *config.EntitiesConfig) (*entity.Registry, *entity.Player, error) {
	reg := entity.NewRegistry()

	for i, def := range cfg.Platforms {
		plat, err := buildPlatform(def)
		if err != nil {
			return nil, nil, fmt.Errorf("platform %d: %w", i, err)
		}
		reg.AddPlatform(plat)
	}

	for i, def := range cfg.Collectibles {
		kind, err := collectibleKind(def.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("collectible %d: %w", i, err)
		}
		reg.AddCollectible(&entity.Collectible{
			Kind:   kind,
			Pos:    vec3(def.Position),
			Amount: def.Amount,
		})
	}

	for i, def := range cfg.Enemies {
		e, err := buildEnemy(def, entities)
		if err != nil {
			return nil, nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		reg.AddEnemy(e)
	}

	for i, def := range cfg.Interactables {
		zone, err := buildInteractable(def)
		if err != nil {
			return nil, nil, fmt.Errorf("interactable %d: %w", i, err)
		}
		reg.AddInteractable(zone)
		if zone.Kind == entity.InteractGate && def.Exit {
			if reg.ExitGate != nil {
				return nil, nil, fmt.Errorf("interactable %d: level already has an exit gate", i)
			}
			reg.ExitGate = zone
		}
	}

	if cfg.Boss != nil {
		reg.Boss = entity.NewBoss(vec3(cfg.Boss.Position), entities.Boss.MaxHealth)
	}

	player := entity.NewPlayer(vec3(cfg.Spawn), entities.Player.MaxHealth, entities.Player.MaxAmmo)

	return reg, player, nil
}

func buildPlatform(def config.PlatformDef) (*entity.Platform, error) {
	switch def.Shape {
	case "box":
		return entity.NewBoxPlatform(vec3(def.Position), def.Width, def.Height, def.Depth), nil
	case "arena":
		return entity.NewArenaPlatform(vec3(def.Position), def.Inner, def.Outer), nil
	default:
		return nil, fmt.Errorf("unknown platform shape %q", def.Shape)
	}
}

func buildEnemy(def config.EnemySpawnDef, entities *config.EntitiesConfig) (*entity.Enemy, error) {
	stats, ok := entities.Enemies[def.Type]
	if !ok {
		return nil, fmt.Errorf("unknown enemy type %q", def.Type)
	}

	var kind entity.EnemyKind
	switch def.Type {
	case "wolf":
		kind = entity.EnemyWolf
	case "spirit":
		kind = entity.EnemySpirit
	default:
		// Unknown kinds default by declared behavior
		if stats.Behavior == "ranged" {
			kind = entity.EnemySpirit
		} else {
			kind = entity.EnemyWolf
		}
	}

	e := entity.NewEnemy(kind, vec3(def.Position))
	e.MaxHealth = stats.MaxHealth
	e.Health = stats.MaxHealth
	e.Speed = stats.Speed
	e.Damage = stats.Damage
	e.AttackRange = stats.AttackRange
	e.AggroRange = stats.AggroRange
	return e, nil
}

func collectibleKind(name string) (entity.CollectibleKind, error) {
	switch name {
	case "health":
		return entity.PickupHealth, nil
	case "ammo":
		return entity.PickupAmmo, nil
	case "key":
		return entity.PickupKey, nil
	default:
		return 0, fmt.Errorf("unknown collectible type %q", name)
	}
}

func buildInteractable(def config.InteractableDef) (*entity.Interactable, error) {
	var kind entity.InteractableKind
	switch def.Type {
	case "gate":
		kind = entity.InteractGate
	case "puzzle":
		kind = entity.InteractPuzzle
	default:
		return nil, fmt.Errorf("unknown interactable type %q", def.Type)
	}

	return &entity.Interactable{
		Kind:   kind,
		Pos:    vec3(def.Position),
		Radius: def.Radius,
	}, nil
}

func vec3(v config.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
