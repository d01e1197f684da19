// Package combat resolves reactor actions into hull damage, burn and repairs.
package combat

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
)

// Ship is one combatant.
type Ship struct {
	Name    string
	Hull    float64
	MaxHull float64
	Armor   float64 // subtracted from each missile hit
	Burn    float64 // damage taken at the end of the round
	Power   float64 // multiplier on outgoing actions
}

// NewShip returns a ship at full hull.
func NewShip(name string, hull, armor, power float64) *Ship {
	if power <= 0 {
		power = 1
	}
	return &Ship{Name: name, Hull: hull, MaxHull: hull, Armor: armor, Power: power}
}

// Alive reports whether the ship still has hull.
func (s *Ship) Alive() bool {
	return s.Hull > 0
}

// HullRatio returns remaining hull in [0, 1].
func (s *Ship) HullRatio() float64 {
	if s.MaxHull <= 0 {
		return 0
	}
	return math.Max(0, s.Hull/s.MaxHull)
}

func (s *Ship) damage(n float64) float64 {
	n = math.Max(0, n)
	s.Hull -= n
	return n
}

func (s *Ship) repair(n float64) float64 {
	before := s.Hull
	s.Hull = math.Min(s.MaxHull, s.Hull+math.Max(0, n))
	return s.Hull - before
}

// Outcome is the state of a level's combat.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Won
	Lost
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}

// Scaler returns the enemy's power multiplier for a round.
type Scaler interface {
	EnemyPower(round int) float64
}

// Event records one resolved action for the HUD and traces.
type Event struct {
	Action core.Action
	Kind   core.Kind
	Amount float64
	Burn   bool // round-end burn damage rather than an action
}

// String formats the event for the combat log.
func (e Event) String() string {
	if e.Burn {
		return fmt.Sprintf("%s burns for %.1f", e.Action.Target, e.Amount)
	}
	verb := "hits"
	target := e.Action.Target
	switch e.Kind {
	case core.KindFire:
		verb = "ignites"
	case core.KindHeal:
		verb = "repairs"
		target = e.Action.Source
	}
	return fmt.Sprintf("%s %s x%d %s %s %.1f", e.Action.Source, e.Action.Name, e.Action.Flux, verb, target, e.Amount)
}

const maxEvents = 8

// Resolver applies actions to the two ships. It implements core.Dispatcher
// and core.RoundObserver.
type Resolver struct {
	ships   [2]*Ship
	catalog core.Catalog
	scaler  Scaler

	// Dealt is the total damage the player has done to the enemy.
	Dealt  float64
	events []Event
}

// NewResolver creates a resolver for one level. A nil scaler leaves enemy
// power unscaled.
func NewResolver(player, enemy *Ship, catalog core.Catalog, scaler Scaler) *Resolver {
	r := &Resolver{catalog: catalog, scaler: scaler}
	r.ships[core.SidePlayer] = player
	r.ships[core.SideEnemy] = enemy
	return r
}

// Ship returns the ship on a side.
func (r *Resolver) Ship(side core.Side) *Ship {
	return r.ships[side]
}

// Events returns the most recent events, oldest first.
func (r *Resolver) Events() []Event {
	return append([]Event(nil), r.events...)
}

// Amount returns the magnitude an action would have.
func (r *Resolver) Amount(a core.Action) float64 {
	spec := r.catalog[a.Name]
	amount := spec.Power * float64(a.Flux) * r.ships[a.Source].Power
	if a.Source == core.SideEnemy && r.scaler != nil {
		amount *= r.scaler.EnemyPower(a.Round)
	}
	return amount
}

// Dispatch implements core.Dispatcher. Unknown actions are ignored; the
// action table is validated when configuration loads.
func (r *Resolver) Dispatch(a core.Action) {
	spec, ok := r.catalog[a.Name]
	if !ok || r.Outcome() != Ongoing {
		return
	}
	src, dst := r.ships[a.Source], r.ships[a.Target]
	amount := r.Amount(a)

	var applied float64
	switch spec.Kind {
	case core.KindMissile:
		applied = dst.damage(amount - dst.Armor)
	case core.KindLaser:
		applied = dst.damage(amount)
	case core.KindFire:
		dst.Burn += amount
		applied = amount
	case core.KindHeal:
		applied = src.repair(amount)
	}
	if a.Source == core.SidePlayer && (spec.Kind == core.KindMissile || spec.Kind == core.KindLaser) {
		r.Dealt += applied
	}
	r.record(Event{Action: a, Kind: spec.Kind, Amount: applied})
}

// RoundEnded implements core.RoundObserver: burning ships take their burn
// as damage and the burn halves.
func (r *Resolver) RoundEnded(round int) {
	for side, s := range r.ships {
		if s.Burn <= 0 || !s.Alive() {
			continue
		}
		dealt := s.damage(s.Burn)
		if core.Side(side) == core.SideEnemy {
			r.Dealt += dealt
		}
		s.Burn = math.Floor(s.Burn / 2)
		r.record(Event{
			Action: core.Action{Target: core.Side(side), Round: round},
			Kind:   core.KindFire,
			Amount: dealt,
			Burn:   true,
		})
	}
}

// Outcome reports whether either ship was destroyed. The player's loss is
// checked first.
func (r *Resolver) Outcome() Outcome {
	switch {
	case !r.ships[core.SidePlayer].Alive():
		return Lost
	case !r.ships[core.SideEnemy].Alive():
		return Won
	default:
		return Ongoing
	}
}

func (r *Resolver) record(e Event) {
	r.events = append(r.events, e)
	if len(r.events) > maxEvents {
		r.events = r.events[len(r.events)-maxEvents:]
	}
}
