package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
)

func TestGenerateUpgrades(t *testing.T) {
	pool := []core.Module{mod("", "missile"), mod("missile", "laser"), mod("laser", "fire")}

	ups := core.GenerateUpgrades(newRNG(5), pool, 3, true)
	require.Len(t, ups, 3)
	assert.Equal(t, core.UpgradeSlot, ups[2].Kind)
	assert.Equal(t, core.UpgradeModule, ups[0].Kind)
	assert.NotEqual(t, ups[0].Module, ups[1].Module)

	ups = core.GenerateUpgrades(newRNG(5), pool, 5, false)
	assert.Len(t, ups, 3, "limited by pool size")

	assert.Nil(t, core.GenerateUpgrades(newRNG(5), pool, 0, true))
	assert.Equal(t, "+1 reactor slot", core.Upgrade{Kind: core.UpgradeSlot}.String())
}

func TestGenerateUpgradesIsSeeded(t *testing.T) {
	pool := []core.Module{mod("", "missile"), mod("missile", "laser"), mod("laser", "fire"), mod("", "heal")}
	assert.Equal(t,
		core.GenerateUpgrades(newRNG(9), pool, 2, false),
		core.GenerateUpgrades(newRNG(9), pool, 2, false))
}

func TestUpgradeApply(t *testing.T) {
	d := weaponDeck()
	d.Reset(newRNG(1))
	count, slots := d.ModuleCount(), len(d.Reactor)

	core.Upgrade{Kind: core.UpgradeModule, Module: mod("", "fire")}.Apply(d)
	core.Upgrade{Kind: core.UpgradeSlot}.Apply(d)

	assert.Equal(t, count+1, d.ModuleCount())
	assert.Equal(t, slots+1, len(d.Reactor))
}
