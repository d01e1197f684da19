package core

import (
	"fmt"
	"strings"
)

// Action is one combat action emitted by a completed step.
type Action struct {
	Name   string
	Source Side
	Target Side
	Flux   int // the source deck's flux when the action fired
	Round  int
}

// String formats the action for traces.
func (a Action) String() string {
	return fmt.Sprintf("r%d %s->%s %s x%d", a.Round, a.Source, a.Target, a.Name, a.Flux)
}

// Dispatcher receives actions after the deck mutation that produced them.
type Dispatcher interface {
	Dispatch(a Action)
}

// RoundObserver is implemented by dispatchers that need round-end upkeep.
type RoundObserver interface {
	RoundEnded(round int)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(Action)

// Dispatch implements Dispatcher.
func (f DispatcherFunc) Dispatch(a Action) { f(a) }

// Trace records every dispatched action in order.
type Trace struct {
	Actions []Action
	Rounds  []int
}

// Dispatch implements Dispatcher.
func (t *Trace) Dispatch(a Action) {
	t.Actions = append(t.Actions, a)
}

// RoundEnded implements RoundObserver.
func (t *Trace) RoundEnded(round int) {
	t.Rounds = append(t.Rounds, round)
}

// Names returns the action names in dispatch order.
func (t *Trace) Names() []string {
	names := make([]string, len(t.Actions))
	for i, a := range t.Actions {
		names[i] = a.Name
	}
	return names
}

// String renders one action per line.
func (t *Trace) String() string {
	var sb strings.Builder
	for _, a := range t.Actions {
		sb.WriteString(a.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fanout forwards each action to every dispatcher in order.
type Fanout []Dispatcher

// Dispatch implements Dispatcher.
func (f Fanout) Dispatch(a Action) {
	for _, d := range f {
		d.Dispatch(a)
	}
}

// RoundEnded implements RoundObserver for members that observe rounds.
func (f Fanout) RoundEnded(round int) {
	for _, d := range f {
		if o, ok := d.(RoundObserver); ok {
			o.RoundEnded(round)
		}
	}
}
