package entity

// Registry owns the authoritative entity collections for the currently
// loaded level. Platforms keep their registration order; collision
// resolution depends on it.
type Registry struct {
	Platforms     []*Platform
	Collectibles  []*Collectible
	Enemies       []*Enemy
	Projectiles   []*Projectile
	Interactables []*Interactable
	Effects       []*Effect

	Boss *Boss

	// ExitGate references the single active exit gate, nil when the
	// level has none. At most one per level.
	ExitGate *Interactable
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Platforms:     make([]*Platform, 0, 16),
		Collectibles:  make([]*Collectible, 0, 16),
		Enemies:       make([]*Enemy, 0, 16),
		Projectiles:   make([]*Projectile, 0, 32),
		Interactables: make([]*Interactable, 0, 4),
		Effects:       make([]*Effect, 0, 8),
	}
}

// AddPlatform appends a platform; order is the collision tie-break order
func (r *Registry) AddPlatform(p *Platform) {
	r.Platforms = append(r.Platforms, p)
}

// AddCollectible appends a collectible
func (r *Registry) AddCollectible(c *Collectible) {
	r.Collectibles = append(r.Collectibles, c)
}

// RemoveCollectible removes a collectible, preserving order
func (r *Registry) RemoveCollectible(c *Collectible) {
	for i, cur := range r.Collectibles {
		if cur == c {
			r.Collectibles = append(r.Collectibles[:i], r.Collectibles[i+1:]...)
			return
		}
	}
}

// AddEnemy appends an enemy
func (r *Registry) AddEnemy(e *Enemy) {
	r.Enemies = append(r.Enemies, e)
}

// RemoveDeadEnemies removes enemies with health <= 0, preserving order.
// Returns the removed enemies.
func (r *Registry) RemoveDeadEnemies() []*Enemy {
	var dead []*Enemy
	live := r.Enemies[:0]
	for _, e := range r.Enemies {
		if e.Alive() {
			live = append(live, e)
		} else {
			dead = append(dead, e)
		}
	}
	r.Enemies = live
	return dead
}

// AddProjectile appends a projectile
func (r *Registry) AddProjectile(p *Projectile) {
	r.Projectiles = append(r.Projectiles, p)
}

// CompactProjectiles drops inactive projectiles, preserving order
func (r *Registry) CompactProjectiles() {
	live := r.Projectiles[:0]
	for _, p := range r.Projectiles {
		if p.Active {
			live = append(live, p)
		}
	}
	r.Projectiles = live
}

// AddInteractable appends an interactable zone
func (r *Registry) AddInteractable(i *Interactable) {
	r.Interactables = append(r.Interactables, i)
}

// AddEffect appends a timed effect
func (r *Registry) AddEffect(e *Effect) {
	r.Effects = append(r.Effects, e)
}

// PruneEffects drops effects that have completed at the given time
func (r *Registry) PruneEffects(now float64) {
	live := r.Effects[:0]
	for _, e := range r.Effects {
		if !e.Done(now) {
			live = append(live, e)
		}
	}
	r.Effects = live
}

// CountEnemies returns the number of registered enemies
func (r *Registry) CountEnemies() int {
	return len(r.Enemies)
}
