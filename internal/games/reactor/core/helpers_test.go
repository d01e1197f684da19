package core_test

import (
	"math/rand"

	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
)

func testCatalog() core.Catalog {
	return core.Catalog{
		"missile": {Kind: core.KindMissile, Power: 2},
		"laser":   {Kind: core.KindLaser, Power: 1, EffectHeat: 1},
		"heal":    {Kind: core.KindHeal, Power: 1, ConditionHeat: -5},
	}
}

func mod(cond, eff string) core.Module {
	return core.NewModule(cond, eff)
}

func slot(cond, eff string, st core.Status, heat float64) core.Module {
	return core.Module{Condition: cond, Effect: eff, Status: st, Heat: heat}
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// weaponDeck builds a deck whose opening hand is fixed by weapon preload:
// hand [A B C], storage [D].
func weaponDeck() *core.PlayerDeck {
	a := mod("", "missile")
	b := mod("missile", "laser")
	c := mod("laser", "missile")
	d := mod("", "heal")
	return core.NewPlayerDeck(core.DeckConfig{
		HandSize:     3,
		HeatCapacity: 2.5,
		Slots:        3,
		Weapons:      []core.Module{a, b, c},
		Modules:      []core.Module{a, b, c, d},
	}, testCatalog())
}
