package config

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Physics     PhysicsSettings   `yaml:"physics"`
	Movement    MovementConfig    `yaml:"movement"`
	Jump        JumpConfig        `yaml:"jump"`
	Combat      CombatConfig      `yaml:"combat"`
	Pickup      PickupConfig      `yaml:"pickup"`
	Progression ProgressionConfig `yaml:"progression"`
	Animation   AnimationConfig   `yaml:"animation"`
}

// PhysicsSettings holds integration constants
type PhysicsSettings struct {
	Gravity float64 `yaml:"gravity"`
	// MaxDelta bounds a single integration step (seconds)
	MaxDelta float64 `yaml:"maxDelta"`
	// WorldFloor is the y the player is clamped to with no platform below
	WorldFloor float64 `yaml:"worldFloor"`
}

// MovementConfig holds player locomotion constants
type MovementConfig struct {
	BaseSpeed     float64 `yaml:"baseSpeed"`
	RunMultiplier float64 `yaml:"runMultiplier"`
	// Decay is the per-frame multiplicative horizontal velocity decay
	// applied when no movement input is held
	Decay float64 `yaml:"decay"`
}

// JumpConfig holds jump constants
type JumpConfig struct {
	Impulse float64 `yaml:"impulse"`
}

// CombatConfig holds shooting and hit-test constants
type CombatConfig struct {
	FireCooldown   float64 `yaml:"fireCooldown"`
	MuzzleSpeed    float64 `yaml:"muzzleSpeed"`
	MuzzleHeight   float64 `yaml:"muzzleHeight"`
	PlayerDamage   int     `yaml:"playerDamage"`
	PlayerLifetime float64 `yaml:"playerLifetime"`

	// Sphere-test thresholds. Combat intentionally uses cheap proximity
	// tests while platform collision is shape-aware.
	HitRadiusEnemy  float64 `yaml:"hitRadiusEnemy"`
	HitRadiusBoss   float64 `yaml:"hitRadiusBoss"`
	HitRadiusPlayer float64 `yaml:"hitRadiusPlayer"`
}

// PickupConfig holds collectible constants
type PickupConfig struct {
	Radius float64 `yaml:"radius"`
}

// ProgressionConfig holds gate and level-transition constants
type ProgressionConfig struct {
	ExitRadius       float64 `yaml:"exitRadius"`
	TransitionDelay  float64 `yaml:"transitionDelay"`
	GateOpenDuration float64 `yaml:"gateOpenDuration"`
}

// AnimationConfig holds presentation-facing animation constants
type AnimationConfig struct {
	SwingRate float64 `yaml:"swingRate"`
}
