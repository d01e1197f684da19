package core

import (
	"fmt"
	"hash/fnv"
)

// EnemyView is the presentation view of the enemy deck. Script entries
// revealed this round are FaceUp, the rest FaceDown.
type EnemyView struct {
	Script    []Module
	ActionIdx int
	Flux      int
	Revealed  int
}

// View is a consistent copy of the match state between steps. Mutating a
// View never affects the match.
type View struct {
	Phase     Phase
	Resolving bool
	Round     int
	Halted    bool

	Storage []Module
	Hand    []Module
	Reactor []Module

	HandIdx      int
	HandSize     int
	HeatCapacity float64
	Flux         int
	Chain        int
	Queue        []int
	LastAction   string
	LastTouched  int

	Enemy EnemyView
}

// Snapshot returns a deep copy of everything a presentation layer reads.
func (m *Match) Snapshot() View {
	p := m.player
	v := View{
		Phase:        m.phase,
		Resolving:    m.resolving,
		Round:        m.round,
		Halted:       m.halted,
		Storage:      CloneModules(p.Storage),
		Hand:         CloneModules(p.Hand),
		Reactor:      CloneModules(p.Reactor),
		HandIdx:      p.HandIdx,
		HandSize:     p.HandSize,
		HeatCapacity: p.HeatCapacity,
		Flux:         p.Flux,
		Chain:        p.Chain,
		Queue:        append([]int(nil), p.ActionQueue...),
		LastAction:   p.LastAction,
		LastTouched:  p.LastTouched,
	}

	revealed := m.enemy.Revealed(m.round)
	script := make([]Module, len(m.enemy.Script))
	for i, id := range m.enemy.Script {
		script[i] = Module{Effect: id, Status: FaceDown}
		if i < revealed {
			script[i].Status = FaceUp
		}
	}
	v.Enemy = EnemyView{
		Script:    script,
		ActionIdx: m.enemy.ActionIdx,
		Flux:      m.enemy.Flux,
		Revealed:  revealed,
	}
	return v
}

// Hash returns a digest of the logical match state for determinism checks.
func (m *Match) Hash() uint64 {
	return m.Snapshot().Hash()
}

// Hash returns a digest of the view.
func (v View) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "P:%d:%v:%d;", v.Phase, v.Resolving, v.Round)
	writeModules := func(tag string, ms []Module) {
		fmt.Fprintf(h, "%s:", tag)
		for _, m := range ms {
			fmt.Fprintf(h, "%s>%s:%d:%g,", m.Condition, m.Effect, m.Status, m.Heat)
		}
	}
	writeModules("S", v.Storage)
	writeModules(";H", v.Hand)
	writeModules(";R", v.Reactor)
	fmt.Fprintf(h, ";I:%d;F:%d;C:%d;Q:%v;L:%s;T:%d", v.HandIdx, v.Flux, v.Chain, v.Queue, v.LastAction, v.LastTouched)
	fmt.Fprintf(h, ";E:%d:%d:%d", v.Enemy.ActionIdx, v.Enemy.Flux, v.Enemy.Revealed)

	return h.Sum64()
}
