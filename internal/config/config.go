// Package config provides YAML-based game configuration loading and
// difficulty management for Reactor.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ReactorConfig contains all configuration for the game.
type ReactorConfig struct {
	Actions    map[string]ActionConfig `yaml:"actions"`
	Player     PlayerConfig            `yaml:"player"`
	Pacing     PacingConfig            `yaml:"pacing"`
	Rewards    RewardConfig            `yaml:"rewards"`
	Difficulty DifficultyConfig        `yaml:"difficulty"`
}

// ActionConfig is one entry of the action table.
type ActionConfig struct {
	Kind          string  `yaml:"kind"` // missile, laser, fire or heal
	Power         float64 `yaml:"power"`
	ConditionHeat float64 `yaml:"condition_heat"`
	EffectHeat    float64 `yaml:"effect_heat"`
}

// ModuleConfig describes Count copies of one condition/effect pair.
type ModuleConfig struct {
	Condition string `yaml:"condition"` // empty = wildcard
	Effect    string `yaml:"effect"`
	Count     int    `yaml:"count"` // 0 means 1
}

// Copies returns how many modules the entry produces.
func (m ModuleConfig) Copies() int {
	if m.Count <= 0 {
		return 1
	}
	return m.Count
}

// PlayerConfig defines the player's ship and starting deck.
type PlayerConfig struct {
	Hull          float64        `yaml:"hull"`
	Armor         float64        `yaml:"armor"`
	HandSize      int            `yaml:"hand_size"`
	HeatCapacity  float64        `yaml:"heat_capacity"`
	ReactorSlots  int            `yaml:"reactor_slots"`
	Weapons       []ModuleConfig `yaml:"weapons"` // preloaded into hand each level
	Modules       []ModuleConfig `yaml:"modules"`
	JamOverheat   bool           `yaml:"jam_overheat"`
	DiscardInsert string         `yaml:"discard_insert"` // front_half or random
}

// CurveConfig is a cooldown curve in milliseconds.
type CurveConfig struct {
	FirstMS int     `yaml:"first_ms"`
	BaseMS  int     `yaml:"base_ms"`
	Decay   float64 `yaml:"decay"`
	LastMS  int     `yaml:"last_ms"`
	MinMS   int     `yaml:"min_ms"`
}

// First returns the phase-entry delay.
func (c CurveConfig) First() time.Duration { return ms(c.FirstMS) }

// Base returns the delay of the first working step.
func (c CurveConfig) Base() time.Duration { return ms(c.BaseMS) }

// Last returns the delay after the phase's final step.
func (c CurveConfig) Last() time.Duration { return ms(c.LastMS) }

// Min returns the lower bound of decayed delays.
func (c CurveConfig) Min() time.Duration { return ms(c.MinMS) }

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// PacingConfig holds a cooldown curve per automatic phase.
type PacingConfig struct {
	Setup   CurveConfig `yaml:"setup"`
	Reactor CurveConfig `yaml:"reactor"`
	Resolve CurveConfig `yaml:"resolve"`
	Enemy   CurveConfig `yaml:"enemy"`
}

// RewardConfig defines upgrades offered between levels.
type RewardConfig struct {
	Choices    int            `yaml:"choices"`
	MaxSlots   int            `yaml:"max_slots"`
	LevelBonus int            `yaml:"level_bonus"` // score per cleared level
	Modules    []ModuleConfig `yaml:"modules"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round" or "none"
	MaxAt int    `yaml:"max_at"` // Round at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemyPower float64 `yaml:"enemy_power"` // Multiplier added to enemy actions at max difficulty
	EnemyHull  float64 `yaml:"enemy_hull"`  // Multiplier added to enemy hull at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

var validKinds = map[string]bool{"missile": true, "laser": true, "fire": true, "heal": true}

// Validate checks the configuration for errors that would otherwise surface
// during play. Every referenced action id must exist in the action table.
func (c *ReactorConfig) Validate() error {
	var errs []error

	if len(c.Actions) == 0 {
		errs = append(errs, errors.New("actions: table is empty"))
	}
	for id, a := range c.Actions {
		if id == "" {
			errs = append(errs, errors.New("actions: empty action id"))
		}
		if !validKinds[a.Kind] {
			errs = append(errs, fmt.Errorf("actions.%s: unknown kind %q", id, a.Kind))
		}
	}

	p := c.Player
	if p.Hull <= 0 {
		errs = append(errs, errors.New("player.hull: must be positive"))
	}
	if p.HandSize <= 0 {
		errs = append(errs, errors.New("player.hand_size: must be positive"))
	}
	if p.ReactorSlots <= 0 {
		errs = append(errs, errors.New("player.reactor_slots: must be positive"))
	}
	if p.HeatCapacity <= 0 {
		errs = append(errs, errors.New("player.heat_capacity: must be positive"))
	}
	switch p.DiscardInsert {
	case "", "front_half", "random":
	default:
		errs = append(errs, fmt.Errorf("player.discard_insert: unknown policy %q", p.DiscardInsert))
	}
	if len(p.Modules) == 0 {
		errs = append(errs, errors.New("player.modules: deck is empty"))
	}
	errs = append(errs, c.checkModules("player.weapons", p.Weapons)...)
	errs = append(errs, c.checkModules("player.modules", p.Modules)...)
	errs = append(errs, c.checkModules("rewards.modules", c.Rewards.Modules)...)

	if c.Rewards.MaxSlots != 0 && c.Rewards.MaxSlots < p.ReactorSlots {
		errs = append(errs, errors.New("rewards.max_slots: below player.reactor_slots"))
	}

	for name, curve := range map[string]CurveConfig{
		"setup": c.Pacing.Setup, "reactor": c.Pacing.Reactor,
		"resolve": c.Pacing.Resolve, "enemy": c.Pacing.Enemy,
	} {
		if curve.FirstMS < 0 || curve.BaseMS < 0 || curve.LastMS < 0 || curve.MinMS < 0 {
			errs = append(errs, fmt.Errorf("pacing.%s: negative delay", name))
		}
		if curve.Decay < 0 || curve.Decay > 1 {
			errs = append(errs, fmt.Errorf("pacing.%s: decay %.2f outside [0, 1]", name, curve.Decay))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// CheckAction reports whether id is in the action table.
func (c *ReactorConfig) CheckAction(id string) error {
	if _, ok := c.Actions[id]; !ok {
		return fmt.Errorf("unknown action %q", id)
	}
	return nil
}

func (c *ReactorConfig) checkModules(path string, mods []ModuleConfig) []error {
	var errs []error
	for i, m := range mods {
		if m.Condition != "" {
			if err := c.CheckAction(m.Condition); err != nil {
				errs = append(errs, fmt.Errorf("%s[%d].condition: %w", path, i, err))
			}
		}
		if err := c.CheckAction(m.Effect); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d].effect: %w", path, i, err))
		}
	}
	return errs
}
