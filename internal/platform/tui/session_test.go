package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/core"
	_ "github.com/vovakirdan/tui-reactor/internal/games/reactor"
)

func sessionPress(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(SessionModel)
		require.True(t, ok)
	}
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, testConfig(), campaign(t), config.DifficultyNormal)

	m = sessionPress(t, m, keyEnter)
	require.Equal(t, screenGame, m.screen)

	m = sessionPress(t, m, TickMsg(time.Now()))
	assert.Contains(t, m.View(), "Level 1/")

	// Back only works when paused or over
	m = sessionPress(t, m, keyEsc, TickMsg(time.Now()))
	assert.Equal(t, screenGame, m.screen)

	m = sessionPress(t, m, runeKey('p'), TickMsg(time.Now()), keyEsc)
	assert.Equal(t, screenMenu, m.screen)
	assert.Contains(t, m.View(), "Start campaign")
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(openStore(t), testConfig(), nil, config.DifficultyHard)

	m = sessionPress(t, m, keyTab)
	require.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "REACTOR RUNS")

	m = sessionPress(t, m, keyEsc)
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, config.DifficultyHard, m.menu.Difficulty(), "difficulty survives the round trip")
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), nil, config.DifficultyNormal)
	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestSessionResizeReachesMenu(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), nil, config.DifficultyNormal)
	m = sessionPress(t, m, tea.WindowSizeMsg{Width: 132, Height: 43})
	assert.Equal(t, 132, m.config.ScreenW)
	assert.Equal(t, 132, m.menu.Config().ScreenW)
}

func TestCreateGameAppliesSelection(t *testing.T) {
	g, err := CreateGame(MenuSelection{GameID: "reactor", StartLevel: 2, Difficulty: config.DifficultyEasy})
	require.NoError(t, err)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	assert.Equal(t, 2, g.State().Level)

	_, err = CreateGame(MenuSelection{GameID: "reactor", Difficulty: "brutal"})
	assert.Error(t, err)

	_, err = CreateGame(MenuSelection{GameID: "pong"})
	assert.Error(t, err)
}
