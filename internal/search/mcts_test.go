package search

import (
	"fmt"
	"testing"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

func twoLeafGame() *treeGame {
	return &treeGame{
		root: "A",
		children: map[string][]string{
			"A": {"AB", "AC"},
		},
		utility: map[string]float64{"AB": 1, "AC": 0},
	}
}

func TestMCTSBudgetCompletes(t *testing.T) {
	m := NewMCTS[tstate, taction](twoLeafGame(), 25, 0, 0, 1)
	m.Run()

	if m.Status() != StatusCompleted {
		t.Fatalf("Expected COMPLETED at budget, got %v", m.Status())
	}
	if m.tree.visits != 25 {
		t.Errorf("Root visits should equal the budget, got %d", m.tree.visits)
	}
	if m.Metrics().Steps != 26 {
		t.Errorf("Expected 25 iterations + 1 completing step, got %d", m.Metrics().Steps)
	}
}

func TestMCTSPrefersBetterBranch(t *testing.T) {
	m := NewMCTS[tstate, taction](twoLeafGame(), 100, 0, 0, 7)
	m.Run()

	if got := m.Solution(); len(got) != 1 || got[0] != "AB" {
		t.Errorf("MCTS should recommend the winning branch, got %v", got)
	}
	var ab, ac int
	for _, c := range m.tree.children {
		switch c.action {
		case "AB":
			ab = c.visits
		case "AC":
			ac = c.visits
		}
	}
	if ab <= ac {
		t.Errorf("The better branch should attract more visits: AB=%d AC=%d", ab, ac)
	}
}

func TestMCTSMinRootPrefersLowUtility(t *testing.T) {
	// A two-character root id puts MIN to move; utilities are still from
	// MAX's perspective, so MIN wants the -1 branch.
	g := &treeGame{
		root: "AA",
		children: map[string][]string{
			"AA": {"AAB", "AAC"},
		},
		utility: map[string]float64{"AAB": -1, "AAC": 1},
	}
	m := NewMCTS[tstate, taction](g, 100, 0, 0, 3)
	m.Run()

	if got := m.Solution(); len(got) != 1 || got[0] != "AAB" {
		t.Errorf("MIN should pick the -1 branch, got %v", got)
	}
}

func TestMCTSSeededRunsIdentical(t *testing.T) {
	shape := func(m *MCTS[tstate, taction]) []string {
		var out []string
		m.Tree().Walk(func(n *vistree.Node) {
			v := 0.0
			if n.Value != nil {
				v = *n.Value
			}
			out = append(out, fmt.Sprintf("%s:%d:%.6f", n.ID, n.Visits, v))
		})
		return out
	}

	a := NewMCTS[tstate, taction](pruningTree(), 60, 0, 0, 42)
	a.Run()
	b := NewMCTS[tstate, taction](pruningTree(), 60, 0, 0, 42)
	b.Run()

	sa, sb := shape(a), shape(b)
	if len(sa) != len(sb) {
		t.Fatalf("Tree sizes differ: %d vs %d", len(sa), len(sb))
	}
	for i := range sa {
		if sa[i] != sb[i] {
			t.Errorf("Tree[%d] differs: %s vs %s", i, sa[i], sb[i])
		}
	}
}

func TestMCTSResetReplays(t *testing.T) {
	m := NewMCTS[tstate, taction](pruningTree(), 40, 0, 0, 9)
	m.Run()
	first := m.tree.visits
	firstBest := m.Solution()

	m.Reset()
	if m.Status() != StatusIdle {
		t.Fatalf("Reset should return to IDLE, got %v", m.Status())
	}
	if m.Tree().Count() != 1 {
		t.Errorf("Reset should shrink the tree to the root, got %d nodes", m.Tree().Count())
	}

	m.Run()
	if m.tree.visits != first {
		t.Errorf("Replay visits differ: %d vs %d", m.tree.visits, first)
	}
	if len(firstBest) == 1 && m.Solution()[0] != firstBest[0] {
		t.Errorf("Replay recommendation differs: %v vs %v", m.Solution(), firstBest)
	}
}

func TestMCTSVisitsPropagateToPresentation(t *testing.T) {
	m := NewMCTS[tstate, taction](twoLeafGame(), 10, 0, 0, 5)
	m.Run()

	if m.Tree().Visits != 10 {
		t.Errorf("Root presentation visits: got %d, want 10", m.Tree().Visits)
	}
	total := 0
	for _, c := range m.Tree().Children {
		total += c.Visits
	}
	if total != 10 {
		t.Errorf("Child visits should sum to the budget, got %d", total)
	}
}
