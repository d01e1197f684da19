package config

import (
	_ "embed"
)

//go:embed defaults/reactor.yaml
var defaultReactorYAML []byte

// DefaultReactorConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultReactorConfig() ReactorConfig {
	return ReactorConfig{
		Actions: map[string]ActionConfig{
			"missile": {Kind: "missile", Power: 3, EffectHeat: 0.5},
			"laser":   {Kind: "laser", Power: 2, ConditionHeat: -0.5},
			"fire":    {Kind: "fire", Power: 1.5, EffectHeat: 1},
			"heal":    {Kind: "heal", Power: 2, ConditionHeat: 0.5, EffectHeat: 1},
		},
		Player: PlayerConfig{
			Hull:          40,
			Armor:         1,
			HandSize:      5,
			HeatCapacity:  6,
			ReactorSlots:  4,
			JamOverheat:   true,
			DiscardInsert: "front_half",
			Weapons: []ModuleConfig{
				{Effect: "missile"},
				{Effect: "laser"},
			},
			Modules: []ModuleConfig{
				{Effect: "missile", Count: 3},
				{Effect: "laser", Count: 2},
				{Condition: "missile", Effect: "laser", Count: 2},
				{Condition: "laser", Effect: "missile", Count: 2},
				{Condition: "missile", Effect: "fire"},
				{Condition: "fire", Effect: "heal"},
				{Condition: "laser", Effect: "heal"},
			},
		},
		Pacing: PacingConfig{
			Setup:   CurveConfig{FirstMS: 250, BaseMS: 180, Decay: 0.85, LastMS: 250, MinMS: 60},
			Reactor: CurveConfig{FirstMS: 400, BaseMS: 450, Decay: 0.80, LastMS: 600, MinMS: 120},
			Resolve: CurveConfig{FirstMS: 300, BaseMS: 350, Decay: 0.85, LastMS: 500, MinMS: 100},
			Enemy:   CurveConfig{FirstMS: 500, BaseMS: 500, Decay: 0.90, LastMS: 600, MinMS: 200},
		},
		Rewards: RewardConfig{
			Choices:    3,
			MaxSlots:   7,
			LevelBonus: 500,
			Modules: []ModuleConfig{
				{Effect: "missile"},
				{Effect: "fire"},
				{Condition: "missile", Effect: "missile"},
				{Condition: "laser", Effect: "laser"},
				{Condition: "fire", Effect: "missile"},
				{Condition: "heal", Effect: "laser"},
				{Condition: "missile", Effect: "heal"},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				EnemyPower: 1.0,
				EnemyHull:  0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultReactorYAML
}
