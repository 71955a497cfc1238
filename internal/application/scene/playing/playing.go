// Package playing provides the gameplay scene: it adapts raw ebiten
// input into per-tick snapshots for the simulation session and draws a
// top-down debug view of the world. The session never reads from this
// package; presentation is strictly downstream.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/gatefall/internal/application/game"
	"github.com/younwookim/gatefall/internal/application/scene"
	"github.com/younwookim/gatefall/internal/application/state"
	"github.com/younwookim/gatefall/internal/application/system"
	"github.com/younwookim/gatefall/internal/domain/entity"
)

// Colors for the debug view
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorPlatform   = color.RGBA{80, 80, 100, 255}
	colorArena      = color.RGBA{70, 90, 110, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorWolf       = color.RGBA{200, 100, 100, 255}
	colorSpirit     = color.RGBA{120, 180, 255, 255}
	colorBoss       = color.RGBA{220, 80, 160, 255}
	colorShot       = color.RGBA{255, 200, 100, 255}
	colorEnemyShot  = color.RGBA{255, 100, 100, 255}
	colorHealthPick = color.RGBA{100, 220, 100, 255}
	colorAmmoPick   = color.RGBA{220, 220, 100, 255}
	colorKeyPick    = color.RGBA{255, 215, 0, 255}
	colorGateClosed = color.RGBA{160, 60, 60, 255}
	colorGateOpen   = color.RGBA{60, 200, 120, 255}
	colorEffect     = color.RGBA{255, 255, 255, 120}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorBossBar    = color.RGBA{220, 80, 160, 255}
)

const (
	mouseSensitivity = 0.004
	pixelsPerUnit    = 8.0
	maxNotices       = 4
)

// Playing is the main gameplay scene
type Playing struct {
	session *game.Session
	screenW int
	screenH int

	// Camera rig: the scene owns camera orientation and feeds it into
	// the input snapshot each tick
	camYaw    float64
	camPitch  float64
	lastMX    int
	lastMY    int
	haveMouse bool

	notices []string

	// ReloadCh delivers config-file change events from the dev
	// watcher; the level is reloaded between ticks.
	ReloadCh <-chan string

	recorder       *Recorder
	recordFilename string
}

// New creates the playing scene around a running session.
// If recordPath is not empty, input is recorded for replay.
func New(session *game.Session, screenW, screenH int, recordPath string) *Playing {
	p := &Playing{
		session:        session,
		screenW:        screenW,
		screenH:        screenH,
		recordFilename: recordPath,
	}

	session.OnNotice = p.pushNotice
	session.OnGateOpened = func(level int) {
		p.pushNotice(fmt.Sprintf("gate opened on level %d", level))
	}
	session.OnPuzzleStart = func() {
		// The real puzzle mini-game is an external collaborator; the
		// debug harness stands in for it with the P key.
		p.pushNotice("puzzle started (press P to solve)")
	}
	session.OnLevelAdvance = func(level int) {
		p.pushNotice(fmt.Sprintf("level %d", level))
	}
	session.OnVictory = func() { p.pushNotice("victory") }
	session.OnGameOver = func() { p.pushNotice("you died (press R)") }

	if recordPath != "" {
		p.recorder = NewRecorder(session.Sim().Level)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p
}

// Update samples input once, advances the simulation one tick and
// handles harness-level keys (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// OnExit does not run when the loop terminates with an error
		p.saveRecording()
		return nil, ebiten.Termination
	}

	if p.ReloadCh != nil {
		select {
		case name := <-p.ReloadCh:
			log.Printf("Config changed: %s, reloading level", name)
			if err := p.session.Reload(); err != nil {
				return nil, err
			}
			p.pushNotice("level reloaded")
		default:
		}
	}

	p.updateCamera()

	in := p.readInput()

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	// Stand-ins for external collaborators
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p.session.SetPuzzleSolved(true)
		p.pushNotice("puzzle solved")
	}
	if p.session.Sim().State == state.StateGameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := p.session.Reload(); err != nil {
			return nil, err
		}
		p.notices = nil
	}

	p.session.Tick(in, dt)

	return nil, nil
}

// readInput builds the per-tick snapshot the core consumes
func (p *Playing) readInput() system.InputSnapshot {
	mx, my := ebiten.CursorPosition()
	dx, dy := 0.0, 0.0
	if p.haveMouse {
		dx = float64(mx - p.lastMX)
		dy = float64(my - p.lastMY)
	}

	return system.InputSnapshot{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW),
		Back:     ebiten.IsKeyPressed(ebiten.KeyS),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD),
		Run:      ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		Jump:     ebiten.IsKeyPressed(ebiten.KeySpace),
		Fire:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Interact: inpututil.IsKeyJustPressed(ebiten.KeyE),
		Yaw:      p.camYaw,
		Pitch:    p.camPitch,
		MouseDX:  dx,
		MouseDY:  dy,
		Captured: ebiten.CursorMode() == ebiten.CursorModeCaptured,
	}
}

// updateCamera accumulates mouse motion into the camera orientation
// while the right button is held
func (p *Playing) updateCamera() {
	mx, my := ebiten.CursorPosition()
	if p.haveMouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		p.camYaw -= float64(mx-p.lastMX) * mouseSensitivity
		p.camPitch -= float64(my-p.lastMY) * mouseSensitivity
		if p.camPitch > math.Pi/2 {
			p.camPitch = math.Pi / 2
		}
		if p.camPitch < -math.Pi/2 {
			p.camPitch = -math.Pi / 2
		}
	}
	p.lastMX, p.lastMY = mx, my
	p.haveMouse = true
}

func (p *Playing) pushNotice(msg string) {
	p.notices = append(p.notices, msg)
	if len(p.notices) > maxNotices {
		p.notices = p.notices[len(p.notices)-maxNotices:]
	}
}

// Draw renders the top-down debug view (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	sim := p.session.Sim()
	if sim.Player == nil {
		return
	}

	p.drawPlatforms(screen, sim)
	p.drawCollectibles(screen, sim)
	p.drawInteractables(screen, sim)
	p.drawEffects(screen, sim)
	p.drawEnemies(screen, sim)
	p.drawBoss(screen, sim)
	p.drawProjectiles(screen, sim)
	p.drawPlayer(screen, sim)
	p.drawUI(screen, sim)
}

// worldToScreen maps world x/z to screen coordinates, player-centered
func (p *Playing) worldToScreen(sim *state.Sim, x, z float64) (float64, float64) {
	px := sim.Player.Pos.X()
	pz := sim.Player.Pos.Z()
	return float64(p.screenW)/2 + (x-px)*pixelsPerUnit,
		float64(p.screenH)/2 + (z-pz)*pixelsPerUnit
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, sim *state.Sim) {
	for _, plat := range sim.Reg.Platforms {
		switch plat.Kind {
		case entity.PlatformBox:
			x, y := p.worldToScreen(sim, plat.Pos.X()-plat.Width/2, plat.Pos.Z()-plat.Depth/2)
			ebitenutil.DrawRect(screen, x, y, plat.Width*pixelsPerUnit, plat.Depth*pixelsPerUnit, colorPlatform)
		case entity.PlatformArena:
			x, y := p.worldToScreen(sim, plat.Pos.X(), plat.Pos.Z())
			ebitenutil.DrawCircle(screen, x, y, plat.OuterRadius*pixelsPerUnit, colorArena)
			ebitenutil.DrawCircle(screen, x, y, plat.InnerRadius*pixelsPerUnit, colorBG)
		}
	}
}

func (p *Playing) drawCollectibles(screen *ebiten.Image, sim *state.Sim) {
	for _, c := range sim.Reg.Collectibles {
		var col color.RGBA
		switch c.Kind {
		case entity.PickupHealth:
			col = colorHealthPick
		case entity.PickupAmmo:
			col = colorAmmoPick
		case entity.PickupKey:
			col = colorKeyPick
		}
		x, y := p.worldToScreen(sim, c.Pos.X(), c.Pos.Z())
		ebitenutil.DrawRect(screen, x-3, y-3, 6, 6, col)
	}
}

func (p *Playing) drawInteractables(screen *ebiten.Image, sim *state.Sim) {
	for _, zone := range sim.Reg.Interactables {
		col := colorGateClosed
		if zone.Kind == entity.InteractGate && sim.GateOpen {
			col = colorGateOpen
		}
		x, y := p.worldToScreen(sim, zone.Pos.X(), zone.Pos.Z())
		ebitenutil.DrawCircle(screen, x, y, zone.Radius*pixelsPerUnit, color.RGBA{col.R, col.G, col.B, 60})
		ebitenutil.DrawRect(screen, x-4, y-4, 8, 8, col)
	}
}

func (p *Playing) drawEffects(screen *ebiten.Image, sim *state.Sim) {
	now := p.session.Now()
	for _, e := range sim.Reg.Effects {
		if e.Kind != entity.EffectShockwave {
			continue
		}
		x, y := p.worldToScreen(sim, e.Pos.X(), e.Pos.Z())
		r := e.Radius * e.Progress(now) * pixelsPerUnit
		ebitenutil.DrawCircle(screen, x, y, r, colorEffect)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, sim *state.Sim) {
	for _, e := range sim.Reg.Enemies {
		col := colorWolf
		if e.Kind == entity.EnemySpirit {
			col = colorSpirit
		}
		x, y := p.worldToScreen(sim, e.Pos.X(), e.Pos.Z())
		ebitenutil.DrawCircle(screen, x, y, 6, col)
		// Facing tick
		ebitenutil.DrawLine(screen, x, y, x+8*math.Sin(e.Yaw), y+8*math.Cos(e.Yaw), col)
	}
}

func (p *Playing) drawBoss(screen *ebiten.Image, sim *state.Sim) {
	b := sim.Reg.Boss
	if b == nil {
		return
	}
	x, y := p.worldToScreen(sim, b.Pos.X(), b.Pos.Z())
	ebitenutil.DrawCircle(screen, x, y, 14, colorBoss)
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, sim *state.Sim) {
	for _, proj := range sim.Reg.Projectiles {
		col := colorShot
		if proj.Owner == entity.OwnerEnemy {
			col = colorEnemyShot
		}
		x, y := p.worldToScreen(sim, proj.Pos.X(), proj.Pos.Z())
		ebitenutil.DrawRect(screen, x-2, y-2, 4, 4, col)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, sim *state.Sim) {
	x := float64(p.screenW) / 2
	y := float64(p.screenH) / 2
	ebitenutil.DrawCircle(screen, x, y, 5, colorPlayer)
	ebitenutil.DrawLine(screen, x, y,
		x+10*math.Sin(sim.Player.Yaw), y+10*math.Cos(sim.Player.Yaw), colorPlayer)
}

func (p *Playing) drawUI(screen *ebiten.Image, sim *state.Sim) {
	hud := p.session.HUD()

	// Health bar
	barW := 100.0
	ebitenutil.DrawRect(screen, 10, 10, barW, 8, colorHealthBG)
	if hud.MaxHealth > 0 {
		ratio := float64(hud.Health) / float64(hud.MaxHealth)
		ebitenutil.DrawRect(screen, 10, 10, barW*ratio, 8, colorHealthFG)
	}

	items := ""
	for _, kind := range hud.Inventory {
		items += " " + kind.String()
	}
	text := fmt.Sprintf("L%d  ammo %d/%d  inv:%s", hud.Level, hud.Ammo, hud.MaxAmmo, items)
	ebitenutil.DebugPrintAt(screen, text, 10, 24)

	// Boss bar
	if hud.BossPresent && hud.BossMaxHealth > 0 {
		w := float64(p.screenW) - 40
		ratio := float64(hud.BossHealth) / float64(hud.BossMaxHealth)
		ebitenutil.DrawRect(screen, 20, float64(p.screenH)-20, w, 8, colorHealthBG)
		ebitenutil.DrawRect(screen, 20, float64(p.screenH)-20, w*ratio, 8, colorBossBar)
	}

	for i, msg := range p.notices {
		ebitenutil.DebugPrintAt(screen, msg, 10, 44+i*14)
	}

	switch sim.State {
	case state.StateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R", p.screenW/2-60, p.screenH/2)
	case state.StateVictory:
		ebitenutil.DebugPrintAt(screen, "VICTORY", p.screenW/2-30, p.screenH/2)
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves the recording, if any
func (p *Playing) OnExit() {
	p.saveRecording()
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recordFilename == "" {
		return
	}
	p.recorder.Stop()
	if err := p.recorder.Save(p.recordFilename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Saved %d frames to %s", p.recorder.FrameCount(), p.recordFilename)
}
