package search

import (
	"testing"
)

func TestBFSFindsFewestEdges(t *testing.T) {
	// The cheap path A-B-C-G is three edges; A-C-G is two.
	p := diamondGraph()
	f := NewBFS[gstate, gaction](p)
	f.Run()

	if f.Status() != StatusCompleted {
		t.Fatalf("Expected COMPLETED, got %v", f.Status())
	}
	if got := f.Solution(); len(got) != 2 {
		t.Errorf("BFS should find the 2-edge path, got %v", got)
	}
}

func TestUCSExploredOrderAndCost(t *testing.T) {
	p := diamondGraph()
	f := NewUCS[gstate, gaction](p)

	var order []string
	for !f.Status().Terminal() {
		if pres := f.Step(); pres != nil {
			order = append(order, pres.Name)
		}
	}

	want := []string{"A", "B", "C", "G"}
	if len(order) != len(want) {
		t.Fatalf("Explored order mismatch: %v vs %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Explored[%d]: got %s, want %s", i, order[i], want[i])
		}
	}

	cost, ok := f.SolutionCost()
	if !ok || cost != 5 {
		t.Errorf("UCS cost: got %v (ok=%v), want 5", cost, ok)
	}
}

func TestFrontierReplacementOnlyWhenStrictlyBetter(t *testing.T) {
	// Two equal-cost routes to C: the first discovered one must survive.
	p := &graphProblem{
		start: "A",
		goals: map[string]bool{"G": true},
		edges: map[string][]gedge{
			"A": {{"B", 1}, {"C", 2}},
			"B": {{"C", 1}},
			"C": {{"G", 1}},
		},
	}
	f := NewUCS[gstate, gaction](p)
	f.Run()

	if f.Status() != StatusCompleted {
		t.Fatalf("Expected COMPLETED, got %v", f.Status())
	}
	// Equal rank means no replacement, so the solution keeps the direct edge.
	want := []string{"C", "G"}
	got := f.Solution()
	if len(got) != len(want) {
		t.Fatalf("Solution mismatch: %v vs %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Solution[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAStarMatchesUCSCost(t *testing.T) {
	h := map[string]float64{"A": 4, "B": 3, "C": 2, "G": 0}
	p := diamondGraph()
	p.h = h

	ucs := NewUCS[gstate, gaction](diamondGraph())
	ucs.Run()
	astar := NewAStar[gstate, gaction](p)
	astar.Run()

	ucost, _ := ucs.SolutionCost()
	acost, _ := astar.SolutionCost()
	if ucost != acost {
		t.Errorf("A* and UCS disagree on cost: %v vs %v", acost, ucost)
	}
}

func TestAStarScoresNonDecreasing(t *testing.T) {
	// Manhattan-like consistent heuristic keeps f monotone.
	p := diamondGraph()
	p.h = map[string]float64{"A": 4, "B": 3, "C": 2, "G": 0}
	f := NewAStar[gstate, gaction](p)

	prev := -1.0
	for !f.Status().Terminal() {
		if f.Step() == nil {
			continue
		}
		score := f.last.Score()
		if score < prev {
			t.Errorf("Expansion score decreased: %v after %v", score, prev)
		}
		prev = score
	}
}

func TestDFSExpandsDeepestFirst(t *testing.T) {
	p := &graphProblem{
		start: "A",
		goals: map[string]bool{"Z": true},
		edges: map[string][]gedge{
			"A": {{"B", 1}, {"C", 1}},
			"B": {{"D", 1}},
			"D": {{"Z", 1}},
		},
	}
	f := NewDFS[gstate, gaction](p)

	var order []string
	for !f.Status().Terminal() {
		if pres := f.Step(); pres != nil {
			order = append(order, pres.Name)
		}
	}
	// Depth-first commits to the B branch before returning to C.
	want := []string{"A", "B", "D", "Z"}
	if len(order) != len(want) {
		t.Fatalf("Explored order mismatch: %v vs %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Explored[%d]: got %s, want %s", i, order[i], want[i])
		}
	}
}

func TestGreedyFollowsHeuristicOnly(t *testing.T) {
	// The heuristic lures greedy through the expensive direct edge.
	p := diamondGraph()
	p.h = map[string]float64{"A": 3, "B": 10, "C": 1, "G": 0}
	f := NewGreedy[gstate, gaction](p)
	f.Run()

	cost, ok := f.SolutionCost()
	if !ok {
		t.Fatal("Greedy should still reach the goal")
	}
	if cost != 13 {
		t.Errorf("Greedy should take the misleading route costing 13, got %v", cost)
	}
}

func TestRootGoalCompletesOnFirstStep(t *testing.T) {
	p := &graphProblem{start: "A", goals: map[string]bool{"A": true}}
	f := NewBFS[gstate, gaction](p)

	if f.Status() != StatusIdle {
		t.Fatalf("Fresh search should be IDLE, got %v", f.Status())
	}
	pres := f.Step()
	if f.Status() != StatusCompleted {
		t.Errorf("Expected COMPLETED after one step, got %v", f.Status())
	}
	if pres == nil || !pres.IsGoal {
		t.Error("The returned node should be the goal")
	}
	if f.Tree().Count() != 1 {
		t.Errorf("Tree should hold a single node, got %d", f.Tree().Count())
	}
}

func TestExhaustionFails(t *testing.T) {
	p := &graphProblem{
		start: "A",
		goals: map[string]bool{"Z": true}, // unreachable
		edges: map[string][]gedge{"A": {{"B", 1}}},
	}
	f := NewBFS[gstate, gaction](p)
	f.Run()

	if f.Status() != StatusFailed {
		t.Errorf("Expected FAILED on exhaustion, got %v", f.Status())
	}
	if _, ok := f.SolutionCost(); ok {
		t.Error("Failed search should not report a solution cost")
	}
}

func TestStepAfterTerminalIsNoOp(t *testing.T) {
	p := &graphProblem{start: "A", goals: map[string]bool{"A": true}}
	f := NewBFS[gstate, gaction](p)
	f.Run()

	steps := f.Metrics().Steps
	if pres := f.Step(); pres != nil {
		t.Error("Step after completion should return nil")
	}
	if f.Metrics().Steps != steps {
		t.Error("Step after completion should not advance metrics")
	}
	if f.Status() != StatusCompleted {
		t.Errorf("Status should stay COMPLETED, got %v", f.Status())
	}
}

func TestResetReproducesExploration(t *testing.T) {
	f := NewUCS[gstate, gaction](diamondGraph())

	run := func() []string {
		var ids []string
		for !f.Status().Terminal() {
			if pres := f.Step(); pres != nil {
				ids = append(ids, pres.ID)
			}
		}
		return ids
	}

	first := run()
	f.Reset()
	if f.Status() != StatusIdle {
		t.Fatalf("Reset should return to IDLE, got %v", f.Status())
	}
	second := run()

	if len(first) != len(second) {
		t.Fatalf("Exploration length changed after reset: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Exploration[%d] differs after reset: %s vs %s", i, first[i], second[i])
		}
	}
}
