package search

import (
	"strings"
	"testing"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

func TestIDAStarInitialThresholdIsRootHeuristic(t *testing.T) {
	p := diamondGraph()
	p.h = map[string]float64{"A": 5, "B": 4, "C": 3, "G": 0}

	s := NewIDAStar[gstate, gaction](p, 64)
	if s.threshold != 5 {
		t.Errorf("Initial threshold should equal h(root)=5, got %v", s.threshold)
	}
	if got := s.Attributes()["Current f-limit (Threshold)"]; got != "5" {
		t.Errorf("Threshold attribute: got %q, want %q", got, "5")
	}
}

func TestIDAStarThresholdNeverDecreases(t *testing.T) {
	p := diamondGraph()
	p.h = map[string]float64{"A": 4, "B": 3, "C": 2, "G": 0}
	s := NewIDAStar[gstate, gaction](p, 64)

	prev := s.threshold
	for !s.Status().Terminal() {
		s.Step()
		if s.threshold < prev {
			t.Fatalf("Threshold decreased: %v after %v", s.threshold, prev)
		}
		prev = s.threshold
	}
}

func TestIDAStarFindsOptimalCost(t *testing.T) {
	p := diamondGraph()
	p.h = map[string]float64{"A": 4, "B": 3, "C": 2, "G": 0}
	s := NewIDAStar[gstate, gaction](p, 64)
	s.Run()

	if s.Status() != StatusCompleted {
		t.Fatalf("Expected COMPLETED, got %v", s.Status())
	}
	cost, ok := s.SolutionCost()
	if !ok || cost != 5 {
		t.Errorf("IDA* cost: got %v (ok=%v), want 5", cost, ok)
	}
}

func TestIDAStarPrunesAboveThreshold(t *testing.T) {
	// The expensive direct edge to C comes first, so the final iteration
	// prunes it (f=12) before finding the goal through B at f=5.
	p := &graphProblem{
		start: "A",
		goals: map[string]bool{"G": true},
		edges: map[string][]gedge{
			"A": {{"C", 10}, {"B", 1}},
			"B": {{"C", 1}},
			"C": {{"G", 3}},
		},
		h: map[string]float64{"A": 4, "B": 3, "C": 2, "G": 0},
	}
	s := NewIDAStar[gstate, gaction](p, 64)
	s.Run()

	if s.Status() != StatusCompleted {
		t.Fatalf("Expected COMPLETED, got %v", s.Status())
	}
	pruned := 0
	s.Tree().Walk(func(n *vistree.Node) {
		if !n.IsPruned {
			return
		}
		pruned++
		if !strings.Contains(n.PruningTriggeredBy, "threshold") {
			t.Errorf("Pruned node %s should record the offending comparison, got %q",
				n.ID, n.PruningTriggeredBy)
		}
	})
	if pruned != 1 {
		t.Errorf("Exactly the expensive detour should stay pruned, got %d", pruned)
	}
}

func TestIDAStarFailsWhenNothingOverflows(t *testing.T) {
	p := &graphProblem{
		start: "A",
		goals: map[string]bool{"Z": true}, // unreachable
		edges: map[string][]gedge{"A": {{"B", 1}}},
		h:     map[string]float64{"A": 0, "B": 0},
	}
	s := NewIDAStar[gstate, gaction](p, 64)
	s.Run()

	if s.Status() != StatusFailed {
		t.Errorf("Expected FAILED when the space is exhausted, got %v", s.Status())
	}
}

func TestIDAStarRestartBudget(t *testing.T) {
	// h=0 forces one threshold restart per cost layer; a budget of 1
	// cannot reach the goal at cost 3.
	p := deepChain()
	s := NewIDAStar[gstate, gaction](p, 1)
	s.Run()

	if s.Status() != StatusFailed {
		t.Errorf("Expected FAILED once the restart budget is spent, got %v", s.Status())
	}
	if s.iteration != 1 {
		t.Errorf("Iteration should stop at the budget, got %d", s.iteration)
	}
}
