package core

import (
	"math"
	"math/rand"
)

// InsertPolicy decides where a discarded hand module re-enters storage.
type InsertPolicy uint8

const (
	// InsertFrontHalf puts the module at a random position in the front half.
	InsertFrontHalf InsertPolicy = iota
	// InsertRandom puts the module at a uniformly random position.
	InsertRandom
)

// DeckConfig is the base configuration a PlayerDeck is built from.
type DeckConfig struct {
	HandSize     int
	HeatCapacity float64
	Slots        int
	Weapons      []Module // preloaded into hand on every reset
	Modules      []Module // initial storage pool
	JamOverheat  bool
	Discard      InsertPolicy
}

// PlayerDeck owns the player's modules across storage, hand and reactor,
// plus the counters of the current reactor cycle.
type PlayerDeck struct {
	Storage []Module
	Hand    []Module
	Reactor []Module

	HandIdx      int
	HandSize     int
	HeatCapacity float64

	Flux        int
	Chain       int
	ActionQueue []int // reactor slots awaiting resolution, FIFO
	LastAction  string
	LastTouched int // -1 when nothing was touched

	Weapons     []Module
	JamOverheat bool
	Discard     InsertPolicy

	catalog Catalog
}

// NewPlayerDeck builds a deck from configuration. All modules start in
// storage and every reactor slot starts empty; call Reset before play.
func NewPlayerDeck(cfg DeckConfig, catalog Catalog) *PlayerDeck {
	d := &PlayerDeck{
		Storage:      make([]Module, 0, len(cfg.Modules)),
		Reactor:      make([]Module, max(cfg.Slots, 0)),
		HandSize:     cfg.HandSize,
		HeatCapacity: cfg.HeatCapacity,
		LastTouched:  -1,
		Weapons:      CloneModules(cfg.Weapons),
		JamOverheat:  cfg.JamOverheat,
		Discard:      cfg.Discard,
		catalog:      catalog,
	}
	for _, m := range cfg.Modules {
		d.Storage = append(d.Storage, m.stored())
	}
	for i := range d.Reactor {
		d.Reactor[i] = EmptySlot()
	}
	return d
}

// Reset returns every module to storage, clears the cycle counters, preloads
// the starting weapons and draws up to the hand size. Weapon preload happens
// first and may leave the hand larger than HandSize.
func (d *PlayerDeck) Reset(rng *rand.Rand) {
	for i := range d.Reactor {
		d.DiscardModule(i)
	}
	for _, m := range d.Hand {
		d.Storage = append(d.Storage, m.stored())
	}
	d.Hand = d.Hand[:0]
	d.HandIdx = 0
	d.Flux = 0
	d.Chain = 0
	d.ActionQueue = d.ActionQueue[:0]
	d.LastAction = ""
	d.LastTouched = -1

	for _, w := range d.Weapons {
		d.drawExact(w.Condition, w.Effect)
	}
	for !d.IsSetupDone() {
		d.StepSetup(rng)
	}
	d.HandIdx = len(d.Hand) / 2
}

// drawExact moves the first storage module with this pair into the hand.
func (d *PlayerDeck) drawExact(condition, effect string) bool {
	for i, m := range d.Storage {
		if m.Is(condition, effect) {
			d.Storage = append(d.Storage[:i], d.Storage[i+1:]...)
			d.Hand = append(d.Hand, m.stored())
			return true
		}
	}
	return false
}

// AdvanceSelected moves the hand selection by step, saturating at the ends.
func (d *PlayerDeck) AdvanceSelected(step int) {
	d.HandIdx = clampIdx(d.HandIdx+step, len(d.Hand))
}

// Selected returns the module under the hand cursor.
func (d *PlayerDeck) Selected() (Module, bool) {
	if len(d.Hand) == 0 {
		return Module{}, false
	}
	return d.Hand[d.HandIdx], true
}

// DrawRandom moves a uniformly chosen storage module into the hand.
func (d *PlayerDeck) DrawRandom(rng *rand.Rand) bool {
	n := len(d.Storage)
	if n == 0 {
		return false
	}
	i := rng.Intn(n)
	m := d.Storage[i]
	d.Storage[i] = d.Storage[n-1]
	d.Storage = d.Storage[:n-1]
	d.Hand = append(d.Hand, m.stored())
	return true
}

// DiscardModule returns the module in reactor slot idx to storage.
func (d *PlayerDeck) DiscardModule(idx int) bool {
	if idx < 0 || idx >= len(d.Reactor) || d.Reactor[idx].Status == SlotEmpty {
		return false
	}
	d.Storage = append(d.Storage, d.Reactor[idx].stored())
	d.Reactor[idx] = EmptySlot()
	return true
}

// PlaySelected moves the selected hand module into the next available slot,
// discarding whatever occupied it.
func (d *PlayerDeck) PlaySelected() bool {
	if len(d.Hand) == 0 || len(d.Reactor) == 0 {
		return false
	}
	slot, ok := NextAvailableSlot(d.Reactor)
	if !ok {
		return false
	}

	m := d.Hand[d.HandIdx]
	d.Hand = append(d.Hand[:d.HandIdx], d.Hand[d.HandIdx+1:]...)
	d.HandIdx = clampIdx(d.HandIdx, len(d.Hand))

	d.DiscardModule(slot)
	m.Status = SlotInactive
	m.Heat = 0
	d.Reactor[slot] = m
	d.LastTouched = slot
	return true
}

// DiscardSelected returns the selected hand module to storage at a position
// chosen by the deck's insert policy.
func (d *PlayerDeck) DiscardSelected(rng *rand.Rand) bool {
	if len(d.Hand) == 0 {
		return false
	}
	m := d.Hand[d.HandIdx]
	d.Hand = append(d.Hand[:d.HandIdx], d.Hand[d.HandIdx+1:]...)
	d.HandIdx = clampIdx(d.HandIdx, len(d.Hand))

	span := len(d.Storage) + 1
	if d.Discard == InsertFrontHalf {
		span = len(d.Storage)/2 + 1
	}
	pos := rng.Intn(span)
	d.Storage = append(d.Storage, Module{})
	copy(d.Storage[pos+1:], d.Storage[pos:])
	d.Storage[pos] = m.stored()
	return true
}

// IsReactorDone reports whether no inactive slot can continue the chain.
func (d *PlayerDeck) IsReactorDone() bool {
	_, ok := NextMatchingModule(d.Reactor, d.LastAction)
	return !ok
}

// StepReactor activates the next module of the chain. It returns false once
// nothing matches, which ends the power-up.
func (d *PlayerDeck) StepReactor() bool {
	idx, ok := NextMatchingModule(d.Reactor, d.LastAction)
	if !ok {
		d.LastAction = ""
		d.LastTouched = -1
		return false
	}

	m := &d.Reactor[idx]
	m.Status = SlotActive
	if m.IsWildcard() {
		d.Chain = 0
	}
	d.Chain++
	m.Heat = math.Max(0, m.Heat+float64(d.Chain)+d.catalog.HeatBias(*m))
	d.Flux = max(d.Flux, d.Chain)
	d.ActionQueue = append(d.ActionQueue, idx)
	d.LastAction = m.Effect
	d.LastTouched = idx
	return true
}

// IsPlayerDone reports whether every activated slot has been resolved.
func (d *PlayerDeck) IsPlayerDone() bool {
	return len(d.ActionQueue) == 0
}

// StepPlayer resolves the oldest activated slot and returns its effect.
// A slot whose heat exceeds capacity overheats. When the queue is empty the
// cycle counters reset and, with the jam rule on, a full reactor loses its
// hottest inactive slot to overheating.
func (d *PlayerDeck) StepPlayer() (string, bool) {
	if len(d.ActionQueue) == 0 {
		d.Chain = 0
		d.Flux = 0
		if d.JamOverheat {
			d.jam()
		}
		return "", false
	}

	idx := d.ActionQueue[0]
	d.ActionQueue = d.ActionQueue[1:]
	m := &d.Reactor[idx]
	if m.Heat > d.HeatCapacity {
		m.Status = SlotOverheated
	} else {
		m.Status = SlotInactive
	}
	d.LastTouched = idx
	return m.Effect, true
}

func (d *PlayerDeck) jam() {
	if _, ok := NextAvailableSlot(d.Reactor); ok {
		return
	}
	if idx, ok := HottestInactive(d.Reactor); ok {
		d.Reactor[idx].Status = SlotOverheated
		d.LastTouched = idx
	}
}

// IsSetupDone reports whether setup draws should stop.
func (d *PlayerDeck) IsSetupDone() bool {
	return len(d.Storage) == 0 || len(d.Hand) >= d.HandSize
}

// StepSetup performs one setup draw.
func (d *PlayerDeck) StepSetup(rng *rand.Rand) bool {
	if d.IsSetupDone() {
		return false
	}
	return d.DrawRandom(rng)
}

// GrantModule adds a new module to storage.
func (d *PlayerDeck) GrantModule(m Module) {
	d.Storage = append(d.Storage, m.stored())
}

// GrantSlot adds one empty reactor slot.
func (d *PlayerDeck) GrantSlot() {
	d.Reactor = append(d.Reactor, EmptySlot())
}

// ModuleCount returns the number of modules across storage, hand and reactor.
func (d *PlayerDeck) ModuleCount() int {
	n := len(d.Storage) + len(d.Hand)
	for _, m := range d.Reactor {
		if m.Status != SlotEmpty {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the deck.
func (d *PlayerDeck) Clone() *PlayerDeck {
	c := *d
	c.Storage = CloneModules(d.Storage)
	c.Hand = CloneModules(d.Hand)
	c.Reactor = CloneModules(d.Reactor)
	c.Weapons = CloneModules(d.Weapons)
	c.ActionQueue = append([]int(nil), d.ActionQueue...)
	return &c
}

// clampIdx keeps an index inside [0, n-1], or 0 when n is zero.
func clampIdx(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
