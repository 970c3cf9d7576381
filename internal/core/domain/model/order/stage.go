package order

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// Stage represents the production step an order currently occupies.
// Orders move forward through the pipeline one stage at a time; the only
// backward edge is the quality-control return from Packing to Decorating.
//
// Stage progression:
//
//	Filling ──> Covering ──> Decorating ──> Packing ──> Complete
//	                              ^            │
//	                              └────────────┘
//	                          (QC rejection loop)
//
// Cancellation is not a Stage: it is a timestamp marker on the order, so the
// stage an order was cancelled from stays recoverable for reporting.
type Stage int

const (
	// UnknownStage represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	UnknownStage Stage = iota

	// Filling is the initial stage: the cake base is being prepared.
	Filling

	// Covering is the stage where the base receives its covering.
	Covering

	// Decorating is the stage where decoration work happens.
	Decorating

	// Packing is the final production stage. Visual and physical defects
	// are caught here, so it is the source of the QC rejection loop.
	Packing

	// Complete is the terminal stage: the order left production.
	Complete
)

// getStageStrings returns the string representation for every Stage value,
// including UnknownStage.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		UnknownStage: "Unknown",
		Filling:      "Filling",
		Covering:     "Covering",
		Decorating:   "Decorating",
		Packing:      "Packing",
		Complete:     "Complete",
	}
}

// getValidStageStrings returns only the stages an order may legitimately
// occupy, to support validation.
func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // UnknownStage is intentionally excluded as it's invalid
	return map[Stage]string{
		Filling:    "Filling",
		Covering:   "Covering",
		Decorating: "Decorating",
		Packing:    "Packing",
		Complete:   "Complete",
	}
}

// StageFromString parses a persisted stage name, case-insensitively.
// Unrecognized input is an error: callers that need a lenient display
// fallback (the queue projection) handle it themselves, so workflow code
// never operates on guessed state.
func StageFromString(s string) (Stage, error) {
	for stage, name := range getValidStageStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return stage, nil
		}
	}
	return UnknownStage, errs.NewValueIsInvalidErrorWithCause(
		"stage",
		fmt.Errorf("%q is not a valid stage", s),
	)
}

// Validate checks that the Stage is one of the five pipeline stages.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable stage name, or "Unknown" for invalid
// values. Implements fmt.Stringer.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the stage ends the production pipeline.
func (s Stage) IsTerminal() bool {
	return s == Complete
}

// Apply transitions the stage according to the transition table.
//
// Returns:
//   - (next, nil) when tr is legal from the current stage
//   - (0, error) when tr is unknown or illegal from the current stage
//
// The check-then-move shape means a failed transition leaves no side
// effects; the caller is expected to re-read state and retry rather than
// have the request coerced.
func (s Stage) Apply(tr Transition) (Stage, error) {
	edge, ok := getTransitionTable()[tr]
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"transition",
			fmt.Errorf("%q is not a valid transition", tr.String()),
		)
	}

	for _, from := range edge.from {
		if s == from {
			return edge.to, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"stage",
		fmt.Errorf("%s is not a valid stage to %s", s.String(), tr.String()),
	)
}
