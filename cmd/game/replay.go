package main

import (
	"fmt"
	"log"

	"github.com/younwookim/gatefall/internal/application/game"
	"github.com/younwookim/gatefall/internal/application/replay"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

// replayDT is the fixed frame delta recorded sessions were captured at
const replayDT = 1.0 / 60.0

// runReplay plays a recorded input stream through a headless session
// and prints the resulting end state. The simulation is deterministic
// given the same configs and inputs.
func runReplay(configsPath, replayFile string) error {
	data, err := replay.LoadReplay(replayFile)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}

	loader := config.NewLoader(configsPath)
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("load configs: %w", err)
	}

	session, err := game.NewSession(cfg, loader)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if data.Level > 1 {
		if err := session.LoadLevel(data.Level); err != nil {
			return err
		}
	}

	player := replay.NewReplayer(*data)
	log.Printf("Replaying %d frames from level %d", player.TotalFrames(), data.Level)

	for {
		in, ok := player.GetInput()
		if !ok {
			break
		}
		session.Tick(in, replayDT)
	}

	sim := session.Sim()
	fmt.Printf("frames: %d\n", player.TotalFrames())
	fmt.Printf("state: %s\n", sim.State)
	fmt.Printf("level: %d\n", sim.Level)
	if sim.Player != nil {
		fmt.Printf("player: pos=%v health=%d/%d ammo=%d\n",
			sim.Player.Pos, sim.Player.Health, sim.Player.MaxHealth, sim.Player.Ammo)
	}
	fmt.Printf("enemies: %d\n", sim.Reg.CountEnemies())

	return nil
}
