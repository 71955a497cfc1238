package config

// LevelConfig is the declarative description of one level, loaded from
// levels/levelN.yaml
type LevelConfig struct {
	Name  string `yaml:"name"`
	Spawn Vec3   `yaml:"spawn"`

	Platforms     []PlatformDef     `yaml:"platforms"`
	Collectibles  []CollectibleDef  `yaml:"collectibles"`
	Enemies       []EnemySpawnDef   `yaml:"enemies"`
	Interactables []InteractableDef `yaml:"interactables"`

	// Boss is present only for the encounter level
	Boss *BossSpawnDef `yaml:"boss"`
}

// Vec3 is a position in level data
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// PlatformDef describes one platform placement
type PlatformDef struct {
	// Shape is "box" or "arena"
	Shape    string  `yaml:"shape"`
	Position Vec3    `yaml:"position"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Depth    float64 `yaml:"depth"`
	Inner    float64 `yaml:"inner"`
	Outer    float64 `yaml:"outer"`
}

// CollectibleDef describes one collectible placement
type CollectibleDef struct {
	// Type is "health", "ammo" or "key"
	Type     string `yaml:"type"`
	Position Vec3   `yaml:"position"`
	Amount   int    `yaml:"amount"`
}

// EnemySpawnDef describes one enemy placement
type EnemySpawnDef struct {
	// Type names an entry of entities.yaml enemies
	Type     string `yaml:"type"`
	Position Vec3   `yaml:"position"`
}

// InteractableDef describes one trigger zone
type InteractableDef struct {
	// Type is "gate" or "puzzle"
	Type     string  `yaml:"type"`
	Position Vec3    `yaml:"position"`
	Radius   float64 `yaml:"radius"`
	// Exit marks the gate as the level's exit gate (at most one)
	Exit bool `yaml:"exit"`
}

// BossSpawnDef describes the boss placement
type BossSpawnDef struct {
	Position Vec3 `yaml:"position"`
}
