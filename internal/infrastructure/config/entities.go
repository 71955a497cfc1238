package config

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Player      PlayerConfig                `yaml:"player"`
	Enemies     map[string]EnemyConfig      `yaml:"enemies"`
	Boss        BossConfig                  `yaml:"boss"`
	Projectiles map[string]ProjectileConfig `yaml:"projectiles"`
}

// PlayerConfig holds player stats
type PlayerConfig struct {
	MaxHealth int `yaml:"maxHealth"`
	MaxAmmo   int `yaml:"maxAmmo"`
}

// EnemyConfig holds stats for one enemy kind
type EnemyConfig struct {
	// Behavior is "melee" or "ranged"
	Behavior string `yaml:"behavior"`

	MaxHealth   int     `yaml:"maxHealth"`
	Speed       float64 `yaml:"speed"`
	Damage      int     `yaml:"damage"`
	AttackRange float64 `yaml:"attackRange"`
	AggroRange  float64 `yaml:"aggroRange"`

	// AttackCooldown gates melee hits, ShotCooldown ranged shots
	AttackCooldown float64 `yaml:"attackCooldown"`
	ShotCooldown   float64 `yaml:"shotCooldown"`

	// Projectile names the projectiles entry used by ranged enemies
	Projectile string `yaml:"projectile"`

	// Cosmetic vertical bob (spirits)
	BobAmplitude float64 `yaml:"bobAmplitude"`
	BobRate      float64 `yaml:"bobRate"`
}

// BossConfig holds boss encounter stats
type BossConfig struct {
	MaxHealth int     `yaml:"maxHealth"`
	Speed     float64 `yaml:"speed"`

	// HoldDistance is the distance under which the boss stops pursuing
	HoldDistance float64 `yaml:"holdDistance"`

	// Cooldown by health-fraction phase; the boundary at exactly
	// PhaseThreshold resolves to the low-health cooldown
	CooldownHigh   float64 `yaml:"cooldownHigh"`
	CooldownLow    float64 `yaml:"cooldownLow"`
	PhaseThreshold float64 `yaml:"phaseThreshold"`

	SlamRange    float64 `yaml:"slamRange"`
	SlamRadius   float64 `yaml:"slamRadius"`
	SlamDamage   int     `yaml:"slamDamage"`
	SlamDuration float64 `yaml:"slamDuration"`

	Projectile string  `yaml:"projectile"`
	SpreadRad  float64 `yaml:"spreadRad"`
}

// ProjectileConfig holds stats for one projectile kind
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`
	Damage   int     `yaml:"damage"`
	Lifetime float64 `yaml:"lifetime"`
}
