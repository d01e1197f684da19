package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID    string    `yaml:"id"`
	Name  string    `yaml:"name"`
	Enemy YAMLEnemy `yaml:"enemy"`
}

// YAMLEnemy describes the opposing ship. Exactly one of Script or Segments
// must be set.
type YAMLEnemy struct {
	Name     string        `yaml:"name"`
	Hull     float64       `yaml:"hull"`
	Armor    float64       `yaml:"armor,omitempty"`
	Power    float64       `yaml:"power,omitempty"` // multiplier on action power, default 1
	Script   []string      `yaml:"script,omitempty"`
	Reveal   *YAMLReveal   `yaml:"reveal,omitempty"`
	Segments *YAMLSegments `yaml:"segments,omitempty"`
}

// YAMLReveal is a linear reveal rate for a flat script.
type YAMLReveal struct {
	Start    int `yaml:"start"`
	PerRound int `yaml:"per_round"`
}

// YAMLSegments splits the script into start, scaling and finish parts.
type YAMLSegments struct {
	Start    []string `yaml:"start"`
	Scaling  []string `yaml:"scaling"`
	Finish   []string `yaml:"finish"`
	PerRound int      `yaml:"per_round"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("missing id")
	}
	e := yl.Enemy
	if e.Hull <= 0 {
		return Level{}, fmt.Errorf("level %s: enemy hull must be positive", yl.ID)
	}

	power := e.Power
	if power <= 0 {
		power = 1
	}
	level := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		EnemyName: e.Name,
		Hull:      e.Hull,
		Armor:     e.Armor,
		Power:     power,
	}
	if level.EnemyName == "" {
		level.EnemyName = "Enemy"
	}

	switch {
	case e.Segments != nil && len(e.Script) > 0:
		return Level{}, fmt.Errorf("level %s: enemy has both script and segments", yl.ID)
	case e.Segments != nil:
		s := e.Segments
		level.Script = append(append(append([]string{}, s.Start...), s.Scaling...), s.Finish...)
		level.Reveal = core.SegmentedReveal{
			Start:    len(s.Start),
			Scaling:  len(s.Scaling),
			Finish:   len(s.Finish),
			PerRound: s.PerRound,
		}
	case len(e.Script) > 0:
		level.Script = e.Script
		reveal := core.LinearReveal{Start: len(e.Script)}
		if e.Reveal != nil {
			reveal = core.LinearReveal{Start: e.Reveal.Start, PerRound: e.Reveal.PerRound}
		}
		level.Reveal = reveal
	default:
		return Level{}, fmt.Errorf("level %s: enemy has no script", yl.ID)
	}
	if len(level.Script) == 0 {
		return Level{}, fmt.Errorf("level %s: enemy script is empty", yl.ID)
	}

	return level, nil
}
