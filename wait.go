package main

import (
	"time"

	"parley/engine"
)

// OperatorDecision is the resolved outcome of an input-waiting phase.
// Every wait in the control loop ends in exactly one of these.
type OperatorDecision int

const (
	DecisionNone OperatorDecision = iota
	DecisionDirectionChanged
	DecisionExit
)

// waitFor polls at the fixed interval until pred returns true
// (DecisionNone), the direction switch moves away from the active
// direction (DecisionDirectionChanged plus the new direction), or the
// exit flag is set (DecisionExit). When exit and a direction change
// are observable in the same poll, exit wins.
func (o *Orchestrator) waitFor(pred func() bool) (OperatorDecision, engine.Direction) {
	for {
		if o.exitFlag.Load() {
			return DecisionExit, o.direction
		}
		if pred != nil && pred() {
			return DecisionNone, o.direction
		}
		if d := o.inputs.Direction(); d != o.direction {
			return DecisionDirectionChanged, d
		}
		time.Sleep(o.poll)
	}
}
