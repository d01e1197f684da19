package reactor

import (
	"fmt"

	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
)

// Catalog builds the action table from configuration.
func Catalog(cfg config.ReactorConfig) (core.Catalog, error) {
	cat := make(core.Catalog, len(cfg.Actions))
	for id, a := range cfg.Actions {
		kind, err := core.ParseKind(a.Kind)
		if err != nil {
			return nil, fmt.Errorf("reactor: action %s: %w", id, err)
		}
		cat[id] = core.ActionSpec{
			Kind:          kind,
			Power:         a.Power,
			ConditionHeat: a.ConditionHeat,
			EffectHeat:    a.EffectHeat,
		}
	}
	return cat, nil
}

// Modules expands module entries into individual modules.
func Modules(entries []config.ModuleConfig) []core.Module {
	var out []core.Module
	for _, e := range entries {
		for i := 0; i < e.Copies(); i++ {
			out = append(out, core.NewModule(e.Condition, e.Effect))
		}
	}
	return out
}

// DeckConfig converts the player section into the deck's base configuration.
func DeckConfig(p config.PlayerConfig) core.DeckConfig {
	discard := core.InsertFrontHalf
	if p.DiscardInsert == "random" {
		discard = core.InsertRandom
	}
	var weapons []core.Module
	for _, w := range p.Weapons {
		weapons = append(weapons, core.NewModule(w.Condition, w.Effect))
	}
	return core.DeckConfig{
		HandSize:     p.HandSize,
		HeatCapacity: p.HeatCapacity,
		Slots:        p.ReactorSlots,
		Weapons:      weapons,
		Modules:      Modules(p.Modules),
		JamOverheat:  p.JamOverheat,
		Discard:      discard,
	}
}

// Pacing converts cooldown curves from configuration.
func Pacing(p config.PacingConfig) core.Pacing {
	curve := func(c config.CurveConfig) core.Curve {
		return core.Curve{First: c.First(), Base: c.Base(), Decay: c.Decay, Last: c.Last(), Min: c.Min()}
	}
	return core.Pacing{
		Setup:   curve(p.Setup),
		Reactor: curve(p.Reactor),
		Resolve: curve(p.Resolve),
		Enemy:   curve(p.Enemy),
	}
}

// ValidateLevels checks every level script against the action table.
func ValidateLevels(cfg config.ReactorConfig, lvls []levels.Level) error {
	if len(lvls) == 0 {
		return fmt.Errorf("reactor: no levels")
	}
	known := func(id string) bool { return cfg.CheckAction(id) == nil }
	for _, l := range lvls {
		if err := l.Validate(known); err != nil {
			return err
		}
	}
	return nil
}
