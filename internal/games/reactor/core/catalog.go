package core

import "fmt"

// Kind is the combat category of an action.
type Kind uint8

const (
	KindMissile Kind = iota
	KindLaser
	KindFire
	KindHeal
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindMissile:
		return "missile"
	case KindLaser:
		return "laser"
	case KindFire:
		return "fire"
	case KindHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// ParseKind converts a configuration name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "missile":
		return KindMissile, nil
	case "laser":
		return KindLaser, nil
	case "fire":
		return KindFire, nil
	case "heal":
		return KindHeal, nil
	default:
		return 0, fmt.Errorf("unknown action kind %q", s)
	}
}

// ActionSpec describes one entry of the action table.
type ActionSpec struct {
	Kind  Kind
	Power float64

	// ConditionHeat is added to a slot's heat when the action is the
	// module's condition; EffectHeat when it is the module's effect.
	ConditionHeat float64
	EffectHeat    float64
}

// Catalog is the action table keyed by action id.
type Catalog map[string]ActionSpec

// Has reports whether the action id is known.
func (c Catalog) Has(id string) bool {
	_, ok := c[id]
	return ok
}

// HeatBias returns the extra heat a module gains on each activation.
// Unknown ids contribute nothing; they are rejected when configuration loads.
func (c Catalog) HeatBias(m Module) float64 {
	var bias float64
	if m.Condition != "" {
		bias += c[m.Condition].ConditionHeat
	}
	bias += c[m.Effect].EffectHeat
	return bias
}

// CheckModule returns an error if the module references an unknown action.
func (c Catalog) CheckModule(m Module) error {
	if m.Condition != "" && !c.Has(m.Condition) {
		return fmt.Errorf("module %s: unknown condition %q", m.Label(), m.Condition)
	}
	if !c.Has(m.Effect) {
		return fmt.Errorf("module %s: unknown effect %q", m.Label(), m.Effect)
	}
	return nil
}
