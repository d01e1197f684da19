// Package core provides the deck and reactor simulation for Reactor.
// This package is UI-agnostic and deterministic: all randomness comes from
// an injected *rand.Rand and every mutator fails closed instead of panicking.
package core

// Status is the logical state of a module. Slot statuses apply only while
// the module sits in a reactor slot; FaceUp and FaceDown describe modules
// outside the reactor.
type Status uint8

const (
	FaceUp Status = iota
	FaceDown
	SlotEmpty
	SlotInactive
	SlotActive
	SlotOverheated
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case FaceUp:
		return "FaceUp"
	case FaceDown:
		return "FaceDown"
	case SlotEmpty:
		return "Empty"
	case SlotInactive:
		return "Inactive"
	case SlotActive:
		return "Active"
	case SlotOverheated:
		return "Overheated"
	default:
		return "Unknown"
	}
}

// InSlot reports whether the status describes a reactor slot.
func (s Status) InSlot() bool {
	return s >= SlotEmpty
}

// Module is one reactor card. Condition is the action that must precede it
// in a chain; an empty condition is a wildcard that starts a new chain.
type Module struct {
	Condition string
	Effect    string
	Status    Status
	Heat      float64
}

// NewModule returns a face-up module with no heat.
func NewModule(condition, effect string) Module {
	return Module{Condition: condition, Effect: effect, Status: FaceUp}
}

// EmptySlot returns the placeholder stored in an unoccupied reactor slot.
func EmptySlot() Module {
	return Module{Status: SlotEmpty}
}

// IsWildcard reports whether the module starts a new chain.
func (m Module) IsWildcard() bool {
	return m.Condition == ""
}

// Is reports whether the module carries exactly this condition/effect pair.
func (m Module) Is(condition, effect string) bool {
	return m.Condition == condition && m.Effect == effect
}

// Label returns a short "condition>effect" description, using '*' for wildcards.
func (m Module) Label() string {
	cond := m.Condition
	if cond == "" {
		cond = "*"
	}
	return cond + ">" + m.Effect
}

// stored returns the module as it looks after leaving the reactor or hand.
func (m Module) stored() Module {
	m.Status = FaceUp
	m.Heat = 0
	return m
}

// CloneModules returns an independent copy of a module slice.
func CloneModules(ms []Module) []Module {
	if ms == nil {
		return nil
	}
	out := make([]Module, len(ms))
	copy(out, ms)
	return out
}
