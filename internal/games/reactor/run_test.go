package reactor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
)

func TestNewRunRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*reactor.Options)
	}{
		{"no levels", func(o *reactor.Options) { o.Levels = nil }},
		{"start level out of range", func(o *reactor.Options) { o.StartLevel = 3 }},
		{"unknown script action", func(o *reactor.Options) {
			o.Levels = []levels.Level{testLevel("bad", 10, "torpedo")}
		}},
		{"unknown difficulty", func(o *reactor.Options) { o.Difficulty = "brutal" }},
		{"unknown action kind", func(o *reactor.Options) {
			o.Config.Actions = map[string]config.ActionConfig{"laser": {Kind: "plasma"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(testLevel("01", 10, "laser"))
			tt.mutate(&opts)
			_, err := reactor.NewRun(opts)
			assert.Error(t, err)
		})
	}
}

func TestRunStartsInSetupAndReachesHelm(t *testing.T) {
	r, err := reactor.NewRun(testOptions(testLevel("01", 100, "laser")))
	require.NoError(t, err)

	assert.Equal(t, reactor.StageCombat, r.Stage())
	assert.Equal(t, core.PhaseSetup, r.Match().Phase())

	r.Advance()
	require.True(t, r.Match().AwaitingHelm())
	v := r.Match().Snapshot()
	assert.Len(t, v.Hand, 5)
	assert.Equal(t, 0, r.Score())
}

func TestWinningOffersUpgrades(t *testing.T) {
	r, err := reactor.NewRun(testOptions(
		testLevel("01", 1, "laser"),
		testLevel("02", 100, "laser"),
	))
	require.NoError(t, err)

	playRound(r)

	require.Equal(t, reactor.StageReward, r.Stage())
	assert.True(t, r.Match().Halted())
	assert.Equal(t, 1, r.Cleared())

	ups := r.Upgrades()
	require.Len(t, ups, 3)
	assert.Equal(t, core.UpgradeSlot, ups[2].Kind)

	// Helm commands are refused between levels.
	assert.False(t, r.EndTurn())

	slots := len(r.Deck().Reactor)
	require.True(t, r.ChooseUpgrade(2))
	assert.Len(t, r.Deck().Reactor, slots+1)
	assert.Equal(t, reactor.StageCombat, r.Stage())
	assert.Equal(t, 1, r.LevelIndex())
	assert.Equal(t, 0, r.Match().Round())
	assert.False(t, r.Match().Halted())

	assert.False(t, r.ChooseUpgrade(0), "no reward pending")
}

func TestUpgradeAddsModuleToStorage(t *testing.T) {
	r, err := reactor.NewRun(testOptions(
		testLevel("01", 1, "laser"),
		testLevel("02", 100, "laser"),
	))
	require.NoError(t, err)
	playRound(r)
	require.Equal(t, reactor.StageReward, r.Stage())

	before := r.Deck().ModuleCount()
	require.True(t, r.ChooseUpgrade(0))
	assert.Equal(t, before+1, r.Deck().ModuleCount())
}

func TestClearingCampaignIsVictory(t *testing.T) {
	r, err := reactor.NewRun(testOptions(testLevel("01", 1, "laser")))
	require.NoError(t, err)

	playRound(r)

	require.True(t, r.Over())
	assert.True(t, r.Victory())
	assert.Positive(t, r.Dealt())
	assert.Equal(t, int(r.Dealt())+500, r.Score())

	res := r.Result()
	assert.Equal(t, "victory", res.Outcome())
	assert.Equal(t, 1, res.LevelReached)
	assert.Equal(t, 1, res.Cleared)
	assert.Equal(t, 1, res.Rounds)
}

func TestLosingEndsRun(t *testing.T) {
	opts := testOptions(testLevel("01", 1000, "missile"))
	opts.Config.Player.Hull = 1
	r, err := reactor.NewRun(opts)
	require.NoError(t, err)

	playRound(r)

	require.True(t, r.Over())
	assert.False(t, r.Victory())
	assert.False(t, r.Resolver().Ship(core.SidePlayer).Alive())
	assert.Equal(t, "defeat", r.Result().Outcome())
	assert.Equal(t, 0, r.Cleared())

	// Nothing moves once the run is over.
	_, ok := r.Step()
	assert.False(t, ok)
}

func TestRoundCapEndsLevelAsLoss(t *testing.T) {
	opts := testOptions(testLevel("01", 1e9, "heal"))
	opts.MaxRounds = 2
	r, err := reactor.NewRun(opts)
	require.NoError(t, err)

	for i := 0; i < 10 && !r.Over(); i++ {
		playRound(r)
	}

	require.True(t, r.Over())
	assert.False(t, r.Victory())
	assert.True(t, r.Resolver().Ship(core.SidePlayer).Alive())
	assert.Equal(t, 2, r.Rounds())
}

func TestStartLevelSkipsAhead(t *testing.T) {
	opts := testOptions(testLevel("01", 10, "laser"), testLevel("02", 10, "laser"))
	opts.StartLevel = 1
	r, err := reactor.NewRun(opts)
	require.NoError(t, err)

	assert.Equal(t, "02", r.Level().ID)
	assert.Equal(t, 2, r.LevelCount())
}

func TestDifficultyScalesEnemyHull(t *testing.T) {
	opts := testOptions(testLevel("01", 100, "laser"))
	opts.Difficulty = config.DifficultyHard
	r, err := reactor.NewRun(opts)
	require.NoError(t, err)

	// hard starts at 0.7 and enemy_hull scaling is 0.5
	assert.InDelta(t, 135.0, r.Resolver().Ship(core.SideEnemy).MaxHull, 1e-9)
	// hard also trims the player's hull
	assert.InDelta(t, 30.0, r.Resolver().Ship(core.SidePlayer).MaxHull, 1e-9)
}

func TestTraceRecordsDispatchedActions(t *testing.T) {
	opts := testOptions(testLevel("01", 1000, "laser", "missile"))
	opts.Trace = &core.Trace{}
	r, err := reactor.NewRun(opts)
	require.NoError(t, err)

	playRound(r)

	names := opts.Trace.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, []string{"laser", "missile"}, names[len(names)-2:])
}
