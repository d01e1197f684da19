package core

// Phase is one stage of the turn cycle.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseHelm
	PhaseReactor
	PhaseEnemy
)

var phaseNames = map[Phase]string{
	PhaseSetup:   "Setup",
	PhaseHelm:    "Helm",
	PhaseReactor: "Reactor",
	PhaseEnemy:   "Enemy",
}

// String returns the string representation of a phase.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// Next returns the phase that follows p in the turn cycle.
func (p Phase) Next() Phase {
	switch p {
	case PhaseSetup:
		return PhaseHelm
	case PhaseHelm:
		return PhaseReactor
	case PhaseReactor:
		return PhaseEnemy
	default:
		return PhaseSetup
	}
}

// Side identifies a combatant.
type Side uint8

const (
	SidePlayer Side = iota
	SideEnemy
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}
