package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Transition names a stage-transition command. The wire form of each value
// (for example "qc_return_to_decorating") is the command name accepted from
// the persistence/command layer and the HTTP surface.
type Transition int

const (
	// UnknownTransition represents an invalid or undefined transition.
	UnknownTransition Transition = iota

	// CompleteFilling advances a filled order toward covering.
	CompleteFilling

	// StartCovering enters the Covering stage.
	StartCovering

	// CompleteCovering advances a covered order toward decorating.
	CompleteCovering

	// StartDecorating enters the Decorating stage.
	StartDecorating

	// CompleteDecorating advances a decorated order to packing.
	CompleteDecorating

	// CompletePacking finishes packing and completes the order.
	CompletePacking

	// MarkOrderComplete completes the order from packing. Kept alongside
	// CompletePacking because both command names exist on the wire.
	MarkOrderComplete

	// QCReturnToDecorating sends a packed order back to decorating after a
	// failed quality check. Decorating, not Filling or Covering: the base
	// and covering are already correct, only decoration needs rework.
	QCReturnToDecorating
)

// stageEdge describes one row of the transition table: the source stages a
// transition is legal from and the stage it lands on.
type stageEdge struct {
	from []Stage
	to   Stage
}

// getTransitionTable returns the legal stage-transition graph. Start and
// complete command families share edges because the distilled five-stage
// pipeline has no intermediate readiness states; either command name moves
// the order the same way.
func getTransitionTable() map[Transition]stageEdge {
	return map[Transition]stageEdge{
		CompleteFilling:      {from: []Stage{Filling}, to: Covering},
		StartCovering:        {from: []Stage{Filling}, to: Covering},
		CompleteCovering:     {from: []Stage{Covering}, to: Decorating},
		StartDecorating:      {from: []Stage{Covering}, to: Decorating},
		CompleteDecorating:   {from: []Stage{Decorating}, to: Packing},
		CompletePacking:      {from: []Stage{Packing}, to: Complete},
		MarkOrderComplete:    {from: []Stage{Packing}, to: Complete},
		QCReturnToDecorating: {from: []Stage{Packing}, to: Decorating},
	}
}

// getTransitionStrings returns the wire name for every Transition value.
func getTransitionStrings() map[Transition]string {
	return map[Transition]string{
		UnknownTransition:    "unknown",
		CompleteFilling:      "complete_filling",
		StartCovering:        "start_covering",
		CompleteCovering:     "complete_covering",
		StartDecorating:      "start_decorating",
		CompleteDecorating:   "complete_decorating",
		CompletePacking:      "complete_packing",
		MarkOrderComplete:    "mark_order_complete",
		QCReturnToDecorating: "qc_return_to_decorating",
	}
}

// TransitionFromString parses a wire command name into a Transition.
func TransitionFromString(s string) (Transition, error) {
	for tr, name := range getTransitionStrings() {
		if tr != UnknownTransition && name == s {
			return tr, nil
		}
	}
	return UnknownTransition, errs.NewValueIsInvalidErrorWithCause(
		"transition",
		fmt.Errorf("%q is not a valid transition", s),
	)
}

// Validate checks that the Transition is one of the named commands.
func (t Transition) Validate() error {
	if _, ok := getTransitionTable()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transition", fmt.Errorf("%d is not a valid transition", t))
	}
	return nil
}

// String returns the wire command name. Implements fmt.Stringer.
func (t Transition) String() string {
	if str, ok := getTransitionStrings()[t]; ok {
		return str
	}
	return "unknown"
}
