package model

import (
	"errors"
	"fmt"
)

// ErrInvalidPhase is returned when a phase string is not one of the known phases
var ErrInvalidPhase = errors.New("invalid phase")

// Phase represents the lifecycle stage of a board
type Phase string

const (
	// PhaseGenerating means participants are authoring notes
	PhaseGenerating Phase = "GENERATING"

	// PhaseVoting means participants are allocating points
	PhaseVoting Phase = "VOTING"

	// PhaseFinished means the board is read-only and shows results
	PhaseFinished Phase = "FINISHED"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsValid returns true if the phase is one of the known phases
func (p Phase) IsValid() bool {
	return p == PhaseGenerating || p == PhaseVoting || p == PhaseFinished
}

// ShowsAddNote returns true if the note creation section should be visible
func (p Phase) ShowsAddNote() bool {
	return p == PhaseGenerating
}

// AllowsMove returns true if notes may be repositioned or created
func (p Phase) AllowsMove() bool {
	return p != PhaseFinished
}

// AllowsVoting returns true if point allocation is permitted
func (p Phase) AllowsVoting() bool {
	return p == PhaseVoting
}

// ShowsScores returns true if aggregate scores are visible
func (p Phase) ShowsScores() bool {
	return p == PhaseVoting || p == PhaseFinished
}

// ParsePhase converts a raw string into a Phase
func ParsePhase(raw string) (Phase, error) {
	p := Phase(raw)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhase, raw)
	}
	return p, nil
}
