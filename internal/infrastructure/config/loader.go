package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from YAML files using fs.FS
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.yaml: %w", err)
	}

	var cfg PhysicsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadEntities loads entities.yaml
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.yaml: %w", err)
	}

	var cfg EntitiesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads levels/level<index>.yaml
func (l *Loader) LoadLevel(index int) (*LevelConfig, error) {
	path := fmt.Sprintf("levels/level%d.yaml", index)
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %d: %w", index, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %d: %w", index, err)
	}

	return &cfg, nil
}

// CountLevels returns the number of consecutive level files starting at 1
func (l *Loader) CountLevels() int {
	n := 0
	for {
		path := fmt.Sprintf("levels/level%d.yaml", n+1)
		if _, err := fs.Stat(l.fsys, path); err != nil {
			return n
		}
		n++
	}
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}
