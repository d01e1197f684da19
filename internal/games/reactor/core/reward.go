package core

import (
	"fmt"
	"math/rand"
)

// UpgradeKind is the type of a between-level reward.
type UpgradeKind uint8

const (
	UpgradeModule UpgradeKind = iota // a new module into storage
	UpgradeSlot                      // one more reactor slot
)

// Upgrade is one reward the player can pick after winning a level.
type Upgrade struct {
	Kind   UpgradeKind
	Module Module
}

// String describes the upgrade for menus and logs.
func (u Upgrade) String() string {
	if u.Kind == UpgradeSlot {
		return "+1 reactor slot"
	}
	return fmt.Sprintf("module %s", u.Module.Label())
}

// GenerateUpgrades draws up to choices distinct modules from pool. When
// offerSlot is set the last choice becomes an extra reactor slot.
func GenerateUpgrades(rng *rand.Rand, pool []Module, choices int, offerSlot bool) []Upgrade {
	if choices <= 0 {
		return nil
	}
	out := make([]Upgrade, 0, choices)
	moduleChoices := choices
	if offerSlot {
		moduleChoices--
	}
	for _, i := range rng.Perm(len(pool)) {
		if len(out) >= moduleChoices {
			break
		}
		out = append(out, Upgrade{Kind: UpgradeModule, Module: pool[i].stored()})
	}
	if offerSlot {
		out = append(out, Upgrade{Kind: UpgradeSlot})
	}
	return out
}

// Apply grants the upgrade to the deck. Upgrades only ever add.
func (u Upgrade) Apply(d *PlayerDeck) {
	switch u.Kind {
	case UpgradeSlot:
		d.GrantSlot()
	default:
		d.GrantModule(u.Module)
	}
}
