package core

import (
	"math/rand"
	"time"
)

// Level is the enemy side of one encounter.
type Level struct {
	Script []string
	Reveal RevealSchedule
}

// Match owns both decks and drives them through the turn cycle:
// Setup -> Helm -> Reactor (power, then resolve) -> Enemy -> Setup.
// Every automatic step performs one unit of deck work; actions are
// dispatched synchronously after the mutation that produced them.
type Match struct {
	player *PlayerDeck
	enemy  *EnemyDeck

	phase     Phase
	resolving bool // Reactor phase has finished powering up
	round     int
	steps     int // working steps taken in the current phase
	cooldown  time.Duration
	halted    bool

	pacing Pacing
	rng    *rand.Rand
	out    Dispatcher
}

// NewMatch creates a match for the given player deck and starts level.
// A nil dispatcher discards actions.
func NewMatch(player *PlayerDeck, level Level, pacing Pacing, rng *rand.Rand, out Dispatcher) *Match {
	if out == nil {
		out = DispatcherFunc(func(Action) {})
	}
	m := &Match{
		player: player,
		pacing: pacing,
		rng:    rng,
		out:    out,
	}
	m.StartLevel(level)
	return m
}

// StartLevel loads a fresh enemy deck, resets the player deck and rewinds
// the turn cycle to round 0. No state from the previous level survives.
func (m *Match) StartLevel(level Level) {
	enemy := NewEnemyDeck(level.Script, level.Reveal)
	m.player.Reset(m.rng)
	m.enemy = enemy
	m.round = 0
	m.halted = false
	m.enter(PhaseSetup)
}

// Phase returns the active phase.
func (m *Match) Phase() Phase { return m.phase }

// Resolving reports whether the Reactor phase is resolving activated slots.
func (m *Match) Resolving() bool { return m.resolving }

// Round returns the current round, starting at 0.
func (m *Match) Round() int { return m.round }

// Cooldown returns the time left before the next automatic step.
func (m *Match) Cooldown() time.Duration { return m.cooldown }

// Halted reports whether the match stopped accepting steps.
func (m *Match) Halted() bool { return m.halted }

// Halt freezes the match. Used once combat has a winner.
func (m *Match) Halt() { m.halted = true }

// AwaitingHelm reports whether the match is waiting for helm commands.
func (m *Match) AwaitingHelm() bool { return m.phase == PhaseHelm && !m.halted }

func (m *Match) enter(p Phase) {
	m.phase = p
	m.steps = 0
	m.resolving = false
	switch p {
	case PhaseSetup:
		m.cooldown = m.pacing.Setup.First
	case PhaseHelm:
		m.cooldown = 0
		if len(m.player.Hand) == 0 && len(m.player.Storage) == 0 {
			m.enter(PhaseReactor)
		}
	case PhaseReactor:
		m.cooldown = m.pacing.Reactor.First
	case PhaseEnemy:
		m.cooldown = m.pacing.Enemy.First
	}
}

// Tick advances the pacing timer by dt and runs at most one step once the
// cooldown has elapsed. The Helm phase waits for commands instead.
func (m *Match) Tick(dt time.Duration) (Action, bool) {
	if m.halted || m.phase == PhaseHelm {
		return Action{}, false
	}
	m.cooldown -= dt
	if m.cooldown > 0 {
		return Action{}, false
	}
	return m.Step()
}

// Step runs one logical step of the active phase, ignoring pacing. It
// returns the dispatched action, if any.
func (m *Match) Step() (Action, bool) {
	if m.halted {
		return Action{}, false
	}
	switch m.phase {
	case PhaseSetup:
		m.stepSetup()
	case PhaseReactor:
		if m.resolving {
			return m.stepResolve()
		}
		m.stepPower()
	case PhaseEnemy:
		return m.stepEnemy()
	}
	return Action{}, false
}

// AdvanceToHelm steps until the match waits for helm input, halts, or
// limit steps have run. It returns the actions dispatched on the way.
func (m *Match) AdvanceToHelm(limit int) []Action {
	var actions []Action
	for i := 0; i < limit && !m.halted && m.phase != PhaseHelm; i++ {
		if a, ok := m.Step(); ok {
			actions = append(actions, a)
		}
	}
	return actions
}

func (m *Match) stepSetup() {
	if !m.player.StepSetup(m.rng) {
		m.enter(PhaseHelm)
		return
	}
	m.steps++
	if m.player.IsSetupDone() {
		m.cooldown = m.pacing.Setup.Last
	} else {
		m.cooldown = m.pacing.Setup.Delay(m.steps)
	}
}

func (m *Match) stepPower() {
	if !m.player.StepReactor() {
		m.resolving = true
		m.steps = 0
		m.cooldown = m.pacing.Resolve.First
		return
	}
	m.steps++
	if m.player.IsReactorDone() {
		m.cooldown = m.pacing.Reactor.Last
	} else {
		m.cooldown = m.pacing.Reactor.Delay(m.player.Chain - 1)
	}
}

func (m *Match) stepResolve() (Action, bool) {
	flux := m.player.Flux
	name, ok := m.player.StepPlayer()
	if !ok {
		m.enter(PhaseEnemy)
		return Action{}, false
	}
	m.steps++
	a := Action{Name: name, Source: SidePlayer, Target: SideEnemy, Flux: flux, Round: m.round}
	m.out.Dispatch(a)
	if m.player.IsPlayerDone() {
		m.cooldown = m.pacing.Resolve.Last
	} else {
		m.cooldown = m.pacing.Resolve.Delay(m.steps)
	}
	return a, true
}

func (m *Match) stepEnemy() (Action, bool) {
	name, ok := m.enemy.Step(m.round)
	if !ok {
		done := m.round
		m.round++
		if o, isObserver := m.out.(RoundObserver); isObserver {
			o.RoundEnded(done)
		}
		m.enter(PhaseSetup)
		return Action{}, false
	}
	m.steps++
	a := Action{Name: name, Source: SideEnemy, Target: SidePlayer, Flux: m.enemy.Flux, Round: m.round}
	m.out.Dispatch(a)
	if m.enemy.IsDone(m.round) {
		m.cooldown = m.pacing.Enemy.Last
	} else {
		m.cooldown = m.pacing.Enemy.Delay(m.steps)
	}
	return a, true
}

// MoveSelection moves the hand cursor. Only valid during Helm.
func (m *Match) MoveSelection(step int) bool {
	if !m.AwaitingHelm() {
		return false
	}
	m.player.AdvanceSelected(step)
	return true
}

// PlaySelected slots the selected hand module. Playing the last module in
// hand ends the helm phase.
func (m *Match) PlaySelected() bool {
	if !m.AwaitingHelm() || !m.player.PlaySelected() {
		return false
	}
	if len(m.player.Hand) == 0 {
		m.enter(PhaseReactor)
	}
	return true
}

// DiscardSelected returns the selected hand module to storage.
func (m *Match) DiscardSelected() bool {
	if !m.AwaitingHelm() {
		return false
	}
	return m.player.DiscardSelected(m.rng)
}

// EndTurn finishes the helm phase and starts powering the reactor.
func (m *Match) EndTurn() bool {
	if !m.AwaitingHelm() {
		return false
	}
	m.enter(PhaseReactor)
	return true
}
