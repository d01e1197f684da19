package reactor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reactor/internal/config"
	platformcore "github.com/vovakirdan/tui-reactor/internal/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
	"github.com/vovakirdan/tui-reactor/internal/registry"
)

func newGame(t *testing.T, auto bool) *reactor.Game {
	t.Helper()
	reactor.Configure(reactor.Setup{
		Config:     config.DefaultReactorConfig(),
		Levels:     testOptions(testLevel("01", 100, "laser"), testLevel("02", 100, "missile")).Levels,
		Difficulty: config.DifficultyFixed,
	})
	g := reactor.New(auto)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})
	require.NotNil(t, g.Run())
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func tickUntilHelm(t *testing.T, g *reactor.Game) {
	t.Helper()
	for i := 0; i < 10000 && !g.Run().Match().AwaitingHelm(); i++ {
		g.Step(frame())
	}
	require.True(t, g.Run().Match().AwaitingHelm())
}

func TestGameRegistered(t *testing.T) {
	assert.True(t, registry.Exists("reactor"))
	assert.True(t, registry.Exists("reactor-demo"))
}

func TestGameHelmInput(t *testing.T) {
	g := newGame(t, false)
	tickUntilHelm(t, g)

	before := g.Run().Match().Snapshot()
	g.Step(frame(platformcore.ActionLeft))
	after := g.Run().Match().Snapshot()
	assert.Equal(t, max(before.HandIdx-1, 0), after.HandIdx)

	g.Step(frame(platformcore.ActionConfirm))
	assert.Len(t, g.Run().Match().Snapshot().Hand, len(before.Hand)-1)

	g.Step(frame(platformcore.ActionEndTurn))
	assert.Equal(t, core.PhaseReactor, g.Run().Match().Phase())
}

func TestGamePause(t *testing.T) {
	g := newGame(t, false)

	g.Step(frame(platformcore.ActionPause))
	assert.True(t, g.State().Paused)
	phase := g.Run().Match().Phase()
	cooldown := g.Run().Match().Cooldown()
	g.Step(frame())
	assert.Equal(t, phase, g.Run().Match().Phase())
	assert.Equal(t, cooldown, g.Run().Match().Cooldown())

	g.Step(frame(platformcore.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestGameDemoPlaysItself(t *testing.T) {
	g := newGame(t, true)
	for i := 0; i < 20000 && g.Run().Match().Round() < 2 && !g.State().GameOver; i++ {
		g.Step(frame())
	}
	assert.True(t, g.Run().Match().Round() >= 2 || g.State().GameOver)
}

func TestGameRender(t *testing.T) {
	g := newGame(t, false)
	tickUntilHelm(t, g)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "REACTOR")
	assert.Contains(t, out, "HAND")
	assert.Contains(t, out, "Level 1/2")
	assert.Contains(t, out, "Phase Helm")
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newGame(t, false)
	g.Resize(40, 10)

	screen := platformcore.NewScreen(40, 10)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Window too small"))
}

func TestGameStateTracksRun(t *testing.T) {
	g := newGame(t, false)
	st := g.State()
	assert.False(t, st.GameOver)
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, "running", st.Outcome())
	assert.Equal(t, "fixed", g.Difficulty())
	assert.Equal(t, int64(3), g.Seed())
}

func TestGameApplyOptions(t *testing.T) {
	g := newGame(t, false)

	require.NoError(t, g.Apply(registry.Options{StartLevel: 2, Difficulty: "hard"}))
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})

	require.NotNil(t, g.Run())
	assert.Equal(t, "02", g.Run().Level().ID)
	assert.Equal(t, "hard", g.Difficulty())

	assert.Error(t, g.Apply(registry.Options{Difficulty: "brutal"}))
	assert.Error(t, g.Apply(registry.Options{StartLevel: -1}))
}

func TestGameStartLevelOutOfRange(t *testing.T) {
	g := newGame(t, false)
	require.NoError(t, g.Apply(registry.Options{StartLevel: 9}))
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})

	assert.Nil(t, g.Run())
	assert.True(t, g.State().GameOver)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Reactor failed to start")
}
