package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gatefall/internal/application/scene"
)

// stubScene records lifecycle calls and plays back a scripted Update result
type stubScene struct {
	name    string
	next    scene.Scene
	err     error
	updates int
	entered int
	exited  int
	lastDT  float64
}

func (s *stubScene) Update(dt float64) (scene.Scene, error) {
	s.updates++
	s.lastDT = dt
	return s.next, s.err
}

func (s *stubScene) Draw(screen *ebiten.Image) {}
func (s *stubScene) OnEnter()                  { s.entered++ }
func (s *stubScene) OnExit()                   { s.exited++ }

func TestGameEntersInitialScene(t *testing.T) {
	first := &stubScene{name: "first"}

	New(first, 640, 480)

	assert.Equal(t, 1, first.entered)
}

func TestGameUpdateStaysOnScene(t *testing.T) {
	first := &stubScene{name: "first"}
	g := New(first, 640, 480)

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Equal(t, 2, first.updates)
	assert.Equal(t, 0, first.exited)
	assert.InDelta(t, 1.0/60.0, first.lastDT, 1e-9)
}

func TestGameSceneTransition(t *testing.T) {
	second := &stubScene{name: "second"}
	first := &stubScene{name: "first", next: second}
	g := New(first, 640, 480)

	require.NoError(t, g.Update())

	assert.Equal(t, 1, first.exited)
	assert.Equal(t, 1, second.entered)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.updates, "old scene no longer updates")
	assert.Equal(t, 1, second.updates)
}

func TestGameUpdateError(t *testing.T) {
	boom := errors.New("boom")
	first := &stubScene{name: "first", err: boom}
	g := New(first, 640, 480)

	assert.ErrorIs(t, g.Update(), boom)
	assert.Equal(t, 0, first.exited, "no transition on error")
}

func TestGameLayout(t *testing.T) {
	g := New(&stubScene{}, 640, 480)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestGameSetDT(t *testing.T) {
	first := &stubScene{}
	g := New(first, 640, 480)
	g.SetDT(0.1)

	require.NoError(t, g.Update())
	assert.Equal(t, 0.1, first.lastDT)
}
