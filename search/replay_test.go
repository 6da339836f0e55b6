package search_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/searchkit/search"
)

// toggleProblem flips a bool; "flip" is legal everywhere, "noop" never.
type toggleProblem struct{}

func (toggleProblem) Start() bool { return false }

func (toggleProblem) Actions(bool) []string { return []string{"flip"} }

func (toggleProblem) Apply(s bool, _ string) bool { return !s }

func (toggleProblem) IsGoal(s bool) bool { return s }

func TestReplay_Valid(t *testing.T) {
	end, err := search.Replay[bool, string](toggleProblem{}, []string{"flip"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != true {
		t.Errorf("end = %v; want true", end)
	}
}

func TestReplay_EmptyPlan(t *testing.T) {
	end, err := search.Replay[bool, string](toggleProblem{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != false {
		t.Errorf("end = %v; want start state", end)
	}
}

func TestReplay_IllegalAction(t *testing.T) {
	_, err := search.Replay[bool, string](toggleProblem{}, []string{"flip", "noop"})
	if !errors.Is(err, search.ErrIllegalAction) {
		t.Errorf("want ErrIllegalAction, got %v", err)
	}
}

func TestSolves(t *testing.T) {
	p := toggleProblem{}
	if !search.Solves[bool, string](p, []string{"flip"}) {
		t.Error("single flip should solve")
	}
	if search.Solves[bool, string](p, []string{"flip", "flip"}) {
		t.Error("double flip should not solve")
	}
	if search.Solves[bool, string](p, []string{"noop"}) {
		t.Error("an invalid plan never solves")
	}
}
