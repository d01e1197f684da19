package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
)

func drainEnemy(d *core.EnemyDeck, round int) []string {
	var out []string
	for {
		a, ok := d.Step(round)
		if !ok {
			return out
		}
		out = append(out, a)
	}
}

func TestEnemyRevealPerRound(t *testing.T) {
	script := []string{"missile", "laser", "fire", "missile", "heal"}
	d := core.NewEnemyDeck(script, core.LinearReveal{Start: 1, PerRound: 1})

	assert.False(t, d.IsDone(0))
	assert.Equal(t, []string{"missile"}, drainEnemy(d, 0))
	assert.Zero(t, d.ActionIdx, "cursor rewinds after exhaustion")
	assert.Zero(t, d.Flux)

	assert.Equal(t, script, drainEnemy(d, 4))
	assert.Equal(t, script, drainEnemy(d, 9), "capped at script length")
}

func TestEnemyFluxCountsActions(t *testing.T) {
	d := core.NewEnemyDeck([]string{"missile", "laser", "fire"}, core.LinearReveal{Start: 3})

	for i := 1; i <= 3; i++ {
		_, ok := d.Step(0)
		assert.True(t, ok)
		assert.Equal(t, i, d.Flux)
	}
	assert.True(t, d.IsDone(0))
	assert.True(t, d.IsDone(0), "query has no side effects")
	_, ok := d.Step(0)
	assert.False(t, ok)
	assert.Zero(t, d.Flux)
}

func TestSegmentedReveal(t *testing.T) {
	r := core.SegmentedReveal{Start: 2, Scaling: 3, Finish: 2, PerRound: 2}

	assert.Equal(t, 2, r.Limit(0))
	assert.Equal(t, 4, r.Limit(1))
	assert.Equal(t, 7, r.Limit(2), "finish appears once scaling is exhausted")
	assert.Equal(t, 7, r.Limit(50))
}

func TestRevealSchedulesAreMonotonic(t *testing.T) {
	schedules := map[string]core.RevealSchedule{
		"linear":        core.LinearReveal{Start: 1, PerRound: 2},
		"linear flat":   core.LinearReveal{Start: 3},
		"segmented":     core.SegmentedReveal{Start: 1, Scaling: 5, Finish: 3, PerRound: 1},
		"no scaling":    core.SegmentedReveal{Start: 1, Finish: 2, PerRound: 1},
		"negative rate": core.LinearReveal{Start: 2, PerRound: -1},
	}

	for name, s := range schedules {
		t.Run(name, func(t *testing.T) {
			prev := s.Limit(0)
			for round := 1; round < 20; round++ {
				cur := s.Limit(round)
				assert.GreaterOrEqual(t, cur, prev, "round %d", round)
				prev = cur
			}
		})
	}
}

func TestNilRevealExposesWholeScript(t *testing.T) {
	d := core.NewEnemyDeck([]string{"missile", "laser"}, nil)
	assert.Equal(t, 2, d.Revealed(0))
}
