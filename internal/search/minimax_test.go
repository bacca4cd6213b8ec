package search

import (
	"math"
	"testing"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

func TestMinimaxRootValue(t *testing.T) {
	m := NewMinimax[tstate, taction](pruningTree(), 10)
	m.Run()

	if m.Status() != StatusCompleted {
		t.Fatalf("Expected COMPLETED, got %v", m.Status())
	}
	v, ok := m.SolutionCost()
	if !ok || v != 3 {
		t.Errorf("Root value: got %v (ok=%v), want 3", v, ok)
	}
	if got := m.Solution(); len(got) != 1 || got[0] != "AB" {
		t.Errorf("Best move: got %v, want [AB]", got)
	}
}

func TestAlphaBetaMatchesPlainMinimax(t *testing.T) {
	plain := NewMinimax[tstate, taction](pruningTree(), 10)
	plain.Run()
	pruned := NewAlphaBeta[tstate, taction](pruningTree(), 10)
	pruned.Run()

	pv, _ := plain.SolutionCost()
	av, _ := pruned.SolutionCost()
	if pv != av {
		t.Errorf("Pruning changed the root value: %v vs %v", av, pv)
	}
	if plain.Solution()[0] != pruned.Solution()[0] {
		t.Errorf("Pruning changed the best move: %v vs %v",
			pruned.Solution(), plain.Solution())
	}
}

func TestPlainMinimaxNeverPrunes(t *testing.T) {
	m := NewMinimax[tstate, taction](pruningTree(), 10)
	m.Run()

	m.Tree().Walk(func(n *vistree.Node) {
		if n.IsPruned {
			t.Errorf("Node %s pruned without alpha-beta", n.ID)
		}
		if n.Alpha != nil || n.Beta != nil {
			t.Errorf("Node %s carries bounds without alpha-beta", n.ID)
		}
	})
}

func TestAlphaBetaPrunesExactly(t *testing.T) {
	m := NewAlphaBeta[tstate, taction](pruningTree(), 10)
	m.Run()

	var pruned []string
	m.Tree().Walk(func(n *vistree.Node) {
		if n.IsPruned {
			pruned = append(pruned, n.ID)
		}
	})
	// After ACH=2 the middle MIN node's window closes against alpha=3.
	want := []string{"A/AC/ACI", "A/AC/ACJ"}
	if len(pruned) != len(want) {
		t.Fatalf("Pruned set: got %v, want %v", pruned, want)
	}
	for i := range want {
		if pruned[i] != want[i] {
			t.Errorf("Pruned[%d]: got %s, want %s", i, pruned[i], want[i])
		}
	}
}

func TestPruningRecordsBoundOwner(t *testing.T) {
	m := NewAlphaBeta[tstate, taction](pruningTree(), 10)
	m.Run()

	ac := m.Tree().Child("A/AC")
	if ac == nil {
		t.Fatal("AC should be in the tree")
	}
	for _, c := range ac.Children {
		if !c.IsPruned {
			continue
		}
		if c.PruningTriggeredBy != "A/AC/ACH" {
			t.Errorf("Pruned %s should point at the bounding descendant, got %q",
				c.ID, c.PruningTriggeredBy)
		}
	}
	if ac.Beta == nil || *ac.Beta != 2 {
		t.Errorf("AC beta should be 2, got %v", ac.Beta)
	}
}

func TestMinimaxDepthLimitEvaluatesStatically(t *testing.T) {
	// At maxDepth 1 the children are scored by static evaluation, not play.
	m := NewMinimax[tstate, taction](pruningTree(), 1)
	m.Run()

	v, ok := m.SolutionCost()
	if !ok || v != 7 {
		t.Errorf("Depth-limited root value: got %v (ok=%v), want 7", v, ok)
	}
	if got := m.Tree().Height(); got != 1 {
		t.Errorf("Tree should stop at the depth limit, got height %d", got)
	}
}

func TestMinimaxFrameStackBounded(t *testing.T) {
	m := NewMinimax[tstate, taction](pruningTree(), 10)
	for !m.Status().Terminal() {
		m.Step()
		if len(m.stack) > 3 {
			t.Fatalf("Frame stack grew to %d on a depth-2 tree", len(m.stack))
		}
	}
}

func TestMinimaxRunningValueVisible(t *testing.T) {
	// After the first branch resolves, the root must already show a value.
	m := NewMinimax[tstate, taction](pruningTree(), 10)
	for i := 0; i < 9; i++ { // enter AB, evaluate its three leaves, fold up
		m.Step()
	}
	if m.Tree().Value == nil {
		t.Error("Root should expose its running value mid-search")
	}
	if m.Status() != StatusRunning {
		t.Fatalf("Search should still be RUNNING, got %v", m.Status())
	}
}

func TestMinimaxTerminalRootEvaluates(t *testing.T) {
	g := &treeGame{root: "A", children: map[string][]string{}, utility: map[string]float64{"A": 4}}
	m := NewMinimax[tstate, taction](g, 10)

	pres := m.Step()
	if m.Status() != StatusCompleted {
		t.Fatalf("Expected COMPLETED, got %v", m.Status())
	}
	if pres == nil || pres.Value == nil || *pres.Value != 4 {
		t.Error("A move-less root should evaluate statically on the first step")
	}
	if math.IsInf(m.rootVal, 0) {
		t.Error("Root value should be finite")
	}
}
