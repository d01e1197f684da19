package combat_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reactor/internal/games/reactor/combat"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
)

func catalog() core.Catalog {
	return core.Catalog{
		"missile": {Kind: core.KindMissile, Power: 3},
		"laser":   {Kind: core.KindLaser, Power: 2},
		"fire":    {Kind: core.KindFire, Power: 2},
		"heal":    {Kind: core.KindHeal, Power: 4},
	}
}

type fixedScale float64

func (f fixedScale) EnemyPower(int) float64 { return float64(f) }

func newResolver(scaler combat.Scaler) (*combat.Resolver, *combat.Ship, *combat.Ship) {
	player := combat.NewShip("Player", 40, 1, 1)
	enemy := combat.NewShip("Raider", 30, 2, 0.5)
	return combat.NewResolver(player, enemy, catalog(), scaler), player, enemy
}

func fire(name string, src core.Side, flux int) core.Action {
	return core.Action{Name: name, Source: src, Target: src.Opponent(), Flux: flux}
}

func TestMissileRespectsArmor(t *testing.T) {
	r, _, enemy := newResolver(nil)

	r.Dispatch(fire("missile", core.SidePlayer, 3))

	assert.InDelta(t, 30-(9-2), enemy.Hull, 1e-9)
	assert.InDelta(t, 7, r.Dealt, 1e-9)
}

func TestLaserIgnoresArmor(t *testing.T) {
	r, _, enemy := newResolver(nil)

	r.Dispatch(fire("laser", core.SidePlayer, 2))

	assert.InDelta(t, 26, enemy.Hull, 1e-9)
}

func TestArmorNeverHeals(t *testing.T) {
	r, _, enemy := newResolver(nil)

	r.Dispatch(core.Action{Name: "missile", Source: core.SidePlayer, Target: core.SideEnemy, Flux: 0})

	assert.InDelta(t, 30, enemy.Hull, 1e-9)
}

func TestEnemyPowerScaling(t *testing.T) {
	r, player, _ := newResolver(fixedScale(2))

	r.Dispatch(fire("laser", core.SideEnemy, 3))

	// 2 power * 3 flux * 0.5 ship power * 2 scale
	assert.InDelta(t, 34, player.Hull, 1e-9)
	assert.Zero(t, r.Dealt)
}

func TestHealCapsAtMax(t *testing.T) {
	r, player, _ := newResolver(nil)
	player.Hull = 35

	r.Dispatch(fire("heal", core.SidePlayer, 2))

	assert.InDelta(t, 40, player.Hull, 1e-9)
	events := r.Events()
	require.Len(t, events, 1)
	assert.InDelta(t, 5, events[0].Amount, 1e-9)
}

func TestBurnTicksAndHalves(t *testing.T) {
	r, _, enemy := newResolver(nil)

	r.Dispatch(fire("fire", core.SidePlayer, 3))
	assert.InDelta(t, 6, enemy.Burn, 1e-9)
	assert.InDelta(t, 30, enemy.Hull, 1e-9, "burn waits for round end")

	r.RoundEnded(0)
	assert.InDelta(t, 24, enemy.Hull, 1e-9)
	assert.InDelta(t, 3, enemy.Burn, 1e-9)

	r.RoundEnded(1)
	assert.InDelta(t, 21, enemy.Hull, 1e-9)
	assert.InDelta(t, 1, enemy.Burn, 1e-9)
	assert.InDelta(t, 9, r.Dealt, 1e-9)
}

func TestOutcome(t *testing.T) {
	r, player, enemy := newResolver(nil)
	assert.Equal(t, combat.Ongoing, r.Outcome())

	enemy.Hull = 1
	r.Dispatch(fire("laser", core.SidePlayer, 1))
	assert.Equal(t, combat.Won, r.Outcome())

	hull := player.Hull
	r.Dispatch(fire("laser", core.SideEnemy, 5))
	assert.Equal(t, hull, player.Hull, "no actions after the level is decided")

	player.Hull = 0
	assert.Equal(t, combat.Lost, r.Outcome(), "player loss takes precedence")
}

func TestUnknownActionIgnored(t *testing.T) {
	r, player, enemy := newResolver(nil)

	r.Dispatch(fire("plasma", core.SidePlayer, 9))

	assert.InDelta(t, 30, enemy.Hull, 1e-9)
	assert.InDelta(t, 40, player.Hull, 1e-9)
	assert.Empty(t, r.Events())
}

func TestEventLogIsBounded(t *testing.T) {
	r, _, _ := newResolver(nil)
	for i := 0; i < 20; i++ {
		r.Dispatch(fire("heal", core.SidePlayer, 1))
	}
	assert.Len(t, r.Events(), 8)
}

func TestResolverDrivesMatch(t *testing.T) {
	cat := catalog()
	deck := core.NewPlayerDeck(core.DeckConfig{
		HandSize:     2,
		HeatCapacity: 10,
		Slots:        2,
		Modules:      []core.Module{core.NewModule("", "laser"), core.NewModule("laser", "laser")},
	}, cat)
	r, _, enemy := newResolver(nil)
	m := core.NewMatch(deck, core.Level{Script: []string{"missile"}}, core.Pacing{}, rand.New(rand.NewSource(1)), r)

	m.AdvanceToHelm(10)
	for m.PlaySelected() {
	}
	m.AdvanceToHelm(100)

	// two lasers at flux 2: 2*2*1 each
	assert.InDelta(t, 22, enemy.Hull, 1e-9)
	assert.Equal(t, 1, m.Round())
}
