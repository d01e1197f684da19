package reactor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reactor/internal/games/reactor"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
)

func TestAutopilotEndsHelm(t *testing.T) {
	r, err := reactor.NewRun(testOptions(testLevel("01", 100, "laser")))
	require.NoError(t, err)
	r.Advance()
	require.True(t, r.Match().AwaitingHelm())

	reactor.Autopilot{MaxDiscards: 1}.TakeTurn(r)

	assert.False(t, r.Match().AwaitingHelm())
	v := r.Match().Snapshot()
	filled := 0
	for _, m := range v.Reactor {
		if m.Status != core.SlotEmpty {
			filled++
		}
	}
	assert.Positive(t, filled)
}

func TestAutopilotPrefersSlotUpgrade(t *testing.T) {
	ups := []core.Upgrade{
		{Kind: core.UpgradeModule, Module: core.NewModule("laser", "missile")},
		{Kind: core.UpgradeModule, Module: core.NewModule("", "fire")},
		{Kind: core.UpgradeSlot},
	}
	assert.Equal(t, 2, reactor.Autopilot{}.ChooseUpgrade(ups))
	assert.Equal(t, 1, reactor.Autopilot{}.ChooseUpgrade(ups[:2]))
	assert.Equal(t, 0, reactor.Autopilot{}.ChooseUpgrade(ups[:1]))
}

func TestSimulateIsDeterministic(t *testing.T) {
	lvls, err := levels.Campaign().LoadAll()
	require.NoError(t, err)

	run := func(seed int64) (reactor.Result, []string) {
		opts := testOptions(lvls...)
		opts.Seed = seed
		opts.Trace = &core.Trace{}
		res, err := reactor.Simulate(opts, reactor.Autopilot{MaxDiscards: 1})
		require.NoError(t, err)
		return res, opts.Trace.Names()
	}

	a, traceA := run(7)
	b, traceB := run(7)
	assert.Equal(t, a, b)
	assert.Equal(t, traceA, traceB)
	assert.True(t, a.Finished)
	assert.NotEmpty(t, traceA)
}

func TestSimulateReportsOptionErrors(t *testing.T) {
	_, err := reactor.Simulate(testOptions(), reactor.Autopilot{})
	assert.Error(t, err)
}
