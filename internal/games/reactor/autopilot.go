package reactor

import "github.com/vovakirdan/tui-reactor/internal/games/reactor/core"

// Pilot makes the player's decisions for a run.
type Pilot interface {
	TakeTurn(r *Run)
	ChooseUpgrade(ups []core.Upgrade) int
}

// Autopilot is a greedy chain builder. It plays the module that best
// extends the reactor's chains and discards dead modules.
type Autopilot struct {
	MaxDiscards int // per helm phase
}

// TakeTurn plays one helm phase and always ends it.
func (p Autopilot) TakeTurn(r *Run) {
	m := r.Match()
	discards := 0
	for m.AwaitingHelm() {
		v := m.Snapshot()
		if len(v.Hand) == 0 {
			break
		}
		if _, ok := core.NextAvailableSlot(v.Reactor); !ok {
			break
		}
		idx, score := bestModule(v)
		if score == 0 {
			if discards >= p.MaxDiscards || len(v.Storage) == 0 {
				break
			}
			r.MoveSelection(idx - v.HandIdx)
			r.DiscardSelected()
			discards++
			continue
		}
		r.MoveSelection(idx - v.HandIdx)
		if !r.PlaySelected() {
			break
		}
	}
	if m.AwaitingHelm() {
		r.EndTurn()
	}
}

// ChooseUpgrade prefers a reactor slot, then a wildcard module.
func (Autopilot) ChooseUpgrade(ups []core.Upgrade) int {
	for i, u := range ups {
		if u.Kind == core.UpgradeSlot {
			return i
		}
	}
	for i, u := range ups {
		if u.Module.IsWildcard() {
			return i
		}
	}
	return 0
}

// bestModule scores every hand module against the reactor and returns the
// best one; ties go to the lowest index. With a zero score idx is the first
// module that would never fire.
func bestModule(v core.View) (idx, score int) {
	effects := map[string]bool{}
	wild := false
	for _, m := range v.Reactor {
		if m.Status != core.SlotInactive {
			continue
		}
		effects[m.Effect] = true
		if m.IsWildcard() {
			wild = true
		}
	}

	idx, score = 0, -1
	for i, m := range v.Hand {
		s := 0
		switch {
		case m.IsWildcard() && !wild:
			s = 3
		case !m.IsWildcard() && effects[m.Condition]:
			s = 2
		case m.IsWildcard():
			s = 1
		}
		if s > score {
			idx, score = i, s
		}
	}
	return idx, score
}
