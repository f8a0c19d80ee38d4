package model

import (
	"errors"
	"testing"
)

func TestPhase_IsValid(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseGenerating, true},
		{PhaseVoting, true},
		{PhaseFinished, true},
		{Phase("generating"), false},
		{Phase(""), false},
	}

	for _, test := range tests {
		result := test.phase.IsValid()
		if result != test.expected {
			t.Errorf("Phase(%s).IsValid() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestPhase_Gating(t *testing.T) {
	tests := []struct {
		phase       Phase
		addNote     bool
		move        bool
		voting      bool
		showsScores bool
	}{
		{PhaseGenerating, true, true, false, false},
		{PhaseVoting, false, true, true, true},
		{PhaseFinished, false, false, false, true},
	}

	for _, test := range tests {
		if got := test.phase.ShowsAddNote(); got != test.addNote {
			t.Errorf("Phase(%s).ShowsAddNote() = %v, expected %v", test.phase, got, test.addNote)
		}
		if got := test.phase.AllowsMove(); got != test.move {
			t.Errorf("Phase(%s).AllowsMove() = %v, expected %v", test.phase, got, test.move)
		}
		if got := test.phase.AllowsVoting(); got != test.voting {
			t.Errorf("Phase(%s).AllowsVoting() = %v, expected %v", test.phase, got, test.voting)
		}
		if got := test.phase.ShowsScores(); got != test.showsScores {
			t.Errorf("Phase(%s).ShowsScores() = %v, expected %v", test.phase, got, test.showsScores)
		}
	}
}

func TestParsePhase(t *testing.T) {
	p, err := ParsePhase("VOTING")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p != PhaseVoting {
		t.Errorf("Expected %s, got %s", PhaseVoting, p)
	}

	_, err = ParsePhase("DONE")
	if !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("Expected ErrInvalidPhase, got %v", err)
	}
}

func TestPhase_String(t *testing.T) {
	if PhaseFinished.String() != "FINISHED" {
		t.Errorf("Phase.String() = %s, expected FINISHED", PhaseFinished.String())
	}
}
