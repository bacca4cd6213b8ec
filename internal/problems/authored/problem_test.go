package authored

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/search"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

func TestLoaderRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"empty id", `{"id":"","children":[]}`},
		{"missing children", `{"id":"a"}`},
		{"duplicate ids", `{"id":"a","children":[{"id":"a","children":[]}]}`},
		{"nested missing children", `{"id":"a","children":[{"id":"b"}]}`},
	}
	for _, c := range cases {
		if _, err := Load([]byte(c.doc), "json"); err == nil {
			t.Errorf("%s: loader accepted malformed document", c.name)
		}
	}
}

func TestLoaderAcceptsJSONAndYAML(t *testing.T) {
	jsonDoc := `{"id":"r","name":"R","children":[{"id":"l","value":7,"costToParent":2,"children":[]}]}`
	yamlDoc := "id: r\nname: R\nchildren:\n  - id: l\n    value: 7\n    costToParent: 2\n    children: []\n"

	for _, d := range []struct {
		format string
		doc    string
	}{{"json", jsonDoc}, {"yaml", yamlDoc}} {
		root, err := Load([]byte(d.doc), d.format)
		if err != nil {
			t.Fatalf("%s load failed: %v", d.format, err)
		}
		if root.ID != "r" || len(root.Children) != 1 {
			t.Fatalf("%s: unexpected structure: %+v", d.format, root)
		}
		l := root.Children[0]
		if l.Value != 7 || !l.HasValue || l.Cost != 2 || l.Depth != 1 {
			t.Errorf("%s: leaf mismatch: %+v", d.format, l)
		}
	}
}

func TestLoaderDefaults(t *testing.T) {
	root, err := Load([]byte(`{"id":"a","children":[{"id":"b","children":[]}]}`), "json")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	b := root.Children[0]
	if b.Name != "b" {
		t.Errorf("name should default to the id, got %q", b.Name)
	}
	if b.Cost != 1 {
		t.Errorf("edge cost should default to 1, got %v", b.Cost)
	}
	if b.HasValue || b.Value != 0 {
		t.Errorf("absent value should read as 0, got %v (has=%v)", b.Value, b.HasValue)
	}
}

func TestGoalDistancesOnSample(t *testing.T) {
	dist := GoalDistances(NewPath().Root())

	want := map[string]float64{"start": 6, "river": 4, "bridge": 1, "camp": 0}
	for id, d := range want {
		if dist[id] != d {
			t.Errorf("h*(%s) mismatch: %v vs %v", id, dist[id], d)
		}
	}
	if !math.IsInf(dist["forest"], 1) {
		t.Errorf("dead-end distance should be +Inf, got %v", dist["forest"])
	}

	if got := StrictViolations(NewPath().Root()); len(got) != 0 {
		t.Errorf("sample values should never overestimate, got %v", got)
	}
}

func TestStrictCheckDisagreesWithLocalConsistency(t *testing.T) {
	// The goal's own value is 2, so h(r)=4 <= cost(3)+h(g)=5 holds on every
	// edge while both values sit above the true goal distances.
	doc := `{"id":"r","value":4,"children":[
		{"id":"g","value":2,"costToParent":3,"isGoal":true,"children":[]}]}`
	root, err := Load([]byte(doc), "json")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	p := &Problem{id: "tree", kind: registry.KindPath, root: root}
	if local := p.CheckHeuristic(100); len(local) != 0 {
		t.Fatalf("edges are locally consistent, got %v", local)
	}

	strict := StrictViolations(root)
	if len(strict) != 2 {
		t.Fatalf("strict violation count mismatch: %v vs 2", strict)
	}
	if strict[0].Node != "r" || strict[0].Best != 3 {
		t.Errorf("root violation mismatch: %+v", strict[0])
	}
	if got, want := strict[1].String(), "h(g)=2 > h*(g)=0"; got != want {
		t.Errorf("violation text mismatch: %q vs %q", got, want)
	}
}

func TestUniformCostExploresSampleInOrder(t *testing.T) {
	s := search.NewUCS[*Node, Choice](NewPath())

	var order []string
	for s.Status() != search.StatusCompleted {
		n := s.Step()
		if n == nil {
			t.Fatalf("search ended without a goal: %v", s.Status())
		}
		order = append(order, n.Name)
	}

	want := []string{"Start", "River", "Forest", "Bridge", "Camp"}
	if len(order) != len(want) {
		t.Fatalf("explored count mismatch: %v vs %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("explored[%d] mismatch: %q vs %q", i, order[i], want[i])
		}
	}

	if cost, ok := s.SolutionCost(); !ok || cost != 6 {
		t.Errorf("path cost mismatch: %v (ok=%v) vs 6", cost, ok)
	}
	sol := s.Solution()
	if len(sol) != 3 || sol[0] != "River" || sol[2] != "Camp" {
		t.Errorf("solution mismatch: %v", sol)
	}
}

func TestIDAStarThresholdStartsAtRootValue(t *testing.T) {
	s := search.NewIDAStar[*Node, Choice](NewPath(), 64)

	if got := s.Attributes()["Current f-limit (Threshold)"]; got != "5" {
		t.Errorf("initial threshold mismatch: %q vs %q", got, "5")
	}
}

func TestMinimaxSampleValue(t *testing.T) {
	s := search.NewMinimax[*Node, Choice](NewGame(), 9)
	s.Run()

	if s.Status() != search.StatusCompleted {
		t.Fatalf("status mismatch: %v vs COMPLETED", s.Status())
	}
	if v, ok := s.SolutionCost(); !ok || v != 3 {
		t.Errorf("root value mismatch: %v (ok=%v) vs 3", v, ok)
	}
	sol := s.Solution()
	if len(sol) != 1 || sol[0] != "B" {
		t.Errorf("best move mismatch: %v vs [B]", sol)
	}
}

func TestAlphaBetaPrunesSampleLeaves(t *testing.T) {
	s := search.NewAlphaBeta[*Node, Choice](NewGame(), 9)
	s.Run()

	if v, ok := s.SolutionCost(); !ok || v != 3 {
		t.Errorf("root value mismatch: %v (ok=%v) vs 3", v, ok)
	}

	pruned := map[string]string{}
	s.Tree().Walk(func(n *vistree.Node) {
		if n.IsPruned {
			pruned[n.ID] = n.PruningTriggeredBy
		}
	})
	if len(pruned) != 2 {
		t.Fatalf("pruned set mismatch: %v vs {c2, c3}", pruned)
	}
	for _, id := range []string{"c2", "c3"} {
		by, ok := pruned[id]
		if !ok {
			t.Errorf("%s should be pruned", id)
			continue
		}
		if by != "c1" {
			t.Errorf("%s pruning trigger mismatch: %q vs %q", id, by, "c1")
		}
	}
}

func TestTemplatesAreIndependent(t *testing.T) {
	p := NewGame()
	a := p.Template()
	b := p.Template()

	a.SetValue(99)
	a.Children[0].IsPruned = true

	if b.Value != nil {
		t.Error("annotating one template leaked into another")
	}
	if b.Children[0].IsPruned {
		t.Error("pruning one template leaked into another")
	}
}

func TestRepeatedRunsOnSharedTreeAgree(t *testing.T) {
	p := NewGame()
	s := search.NewAlphaBeta[*Node, Choice](p, 9)
	s.Run()
	first, _ := s.SolutionCost()

	s.Reset()
	if s.Status() != search.StatusIdle {
		t.Fatalf("reset should return to IDLE, got %v", s.Status())
	}
	s.Run()
	second, _ := s.SolutionCost()

	if first != second {
		t.Errorf("rerun value mismatch: %v vs %v", first, second)
	}
}

func TestSetTreePathOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("id: custom\nchildren: []\n"), 0o644); err != nil {
		t.Fatalf("write custom tree: %v", err)
	}

	SetTreePath(path)
	defer SetTreePath("")

	if got := NewPath().Root().ID; got != "custom" {
		t.Errorf("custom tree not loaded: root %q vs %q", got, "custom")
	}

	// A broken path falls back to the embedded sample.
	SetTreePath(filepath.Join(dir, "missing.yaml"))
	if got := NewPath().Root().ID; got != "start" {
		t.Errorf("fallback root mismatch: %q vs %q", got, "start")
	}
}
