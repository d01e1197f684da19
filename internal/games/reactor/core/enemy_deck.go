package core

// RevealSchedule returns how many script actions are exposed in a round.
// Implementations must be non-decreasing in round.
type RevealSchedule interface {
	Limit(round int) int
}

// LinearReveal exposes Start actions in round 0 and PerRound more each round.
type LinearReveal struct {
	Start    int
	PerRound int
}

// Limit implements RevealSchedule.
func (r LinearReveal) Limit(round int) int {
	return max(0, r.Start+max(0, r.PerRound)*max(0, round))
}

// SegmentedReveal treats the script as three consecutive segments. The start
// segment is always exposed, the scaling segment grows by PerRound each
// round, and the finish segment appears once scaling is fully exposed.
type SegmentedReveal struct {
	Start    int
	Scaling  int
	Finish   int
	PerRound int
}

// Limit implements RevealSchedule.
func (r SegmentedReveal) Limit(round int) int {
	grown := max(0, r.PerRound) * max(0, round)
	if grown >= r.Scaling {
		return r.Start + r.Scaling + r.Finish
	}
	return r.Start + grown
}

// EnemyDeck plays a scripted sequence of actions, revealing more of the
// script as rounds progress.
type EnemyDeck struct {
	Script    []string
	ActionIdx int
	Flux      int
	Reveal    RevealSchedule
}

// NewEnemyDeck returns a deck positioned at the start of its script.
func NewEnemyDeck(script []string, reveal RevealSchedule) *EnemyDeck {
	if reveal == nil {
		reveal = LinearReveal{Start: len(script)}
	}
	return &EnemyDeck{
		Script: append([]string(nil), script...),
		Reveal: reveal,
	}
}

// Revealed returns the number of actions played in the given round.
func (d *EnemyDeck) Revealed(round int) int {
	return min(len(d.Script), d.Reveal.Limit(round))
}

// IsDone reports whether the round's revealed actions have all been played.
func (d *EnemyDeck) IsDone(round int) bool {
	return d.ActionIdx >= d.Revealed(round)
}

// Step returns the next scripted action. Once the round's actions are
// exhausted it rewinds the cursor, clears flux and reports none.
func (d *EnemyDeck) Step(round int) (string, bool) {
	if d.IsDone(round) {
		d.ActionIdx = 0
		d.Flux = 0
		return "", false
	}
	a := d.Script[d.ActionIdx]
	d.ActionIdx++
	d.Flux++
	return a, true
}

// Clone returns a deep copy of the deck. The schedule is shared; schedules
// are immutable values.
func (d *EnemyDeck) Clone() *EnemyDeck {
	c := *d
	c.Script = append([]string(nil), d.Script...)
	return &c
}
