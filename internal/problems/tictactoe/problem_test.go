package tictactoe

import (
	"testing"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/search"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

// pos builds a position from a 9-character layout string.
func pos(t *testing.T, layout string) Position {
	t.Helper()
	if len(layout) != 9 {
		t.Fatalf("layout must have 9 cells, got %d", len(layout))
	}
	var p Position
	copy(p[:], layout)
	return p
}

func TestWinnerDetectsLines(t *testing.T) {
	cases := []struct {
		layout string
		want   byte
	}{
		{"XXX......", X},
		{"...OOO...", O},
		{"X..X..X..", X},
		{"O...O...O", O},
		{"..X.X.X..", X},
		{"XOXOXOOXO", Empty},
		{".........", Empty},
	}
	for _, c := range cases {
		if got := Winner(pos(t, c.layout)); got != c.want {
			t.Errorf("Winner(%q) mismatch: %c vs %c", c.layout, got, c.want)
		}
	}
}

func TestMoverAlternates(t *testing.T) {
	if got := Mover(Start()); got != X {
		t.Errorf("X should open, got %c", got)
	}
	if got := Mover(pos(t, "X........")); got != O {
		t.Errorf("O should answer, got %c", got)
	}
	if got := Mover(pos(t, "X...O....")); got != X {
		t.Errorf("X should move third, got %c", got)
	}
}

func TestEvaluateTerminalScores(t *testing.T) {
	if got := Evaluate(pos(t, "XXXOO....")); got != 1 {
		t.Errorf("X win should score 1, got %v", got)
	}
	if got := Evaluate(pos(t, "XX.OOOX..")); got != -1 {
		t.Errorf("O win should score -1, got %v", got)
	}
	if got := Evaluate(pos(t, "XOXXOOOXX")); got != 0 {
		t.Errorf("draw should score 0, got %v", got)
	}
}

func TestEvaluateOpenLinePotential(t *testing.T) {
	if got := Evaluate(Start()); got != 0 {
		t.Errorf("empty grid should be balanced, got %v", got)
	}

	// X alone in the center keeps all 8 lines open and blocks the 4
	// center lines for O: (8-4)/10.
	if got := Evaluate(pos(t, "....X....")); got != 0.4 {
		t.Errorf("center potential mismatch: %v vs 0.4", got)
	}
}

func TestActionsStopAtTerminal(t *testing.T) {
	p := New()
	if got := len(p.Actions(Start())); got != 9 {
		t.Errorf("empty grid should offer 9 moves, got %d", got)
	}
	if got := p.Actions(pos(t, "XXXOO....")); got != nil {
		t.Errorf("finished game should offer no moves, got %v", got)
	}
}

func TestResultPlacesAlternatingMarks(t *testing.T) {
	p := New()
	pos1 := p.Result(Start(), Move(4))
	if pos1[4] != X {
		t.Errorf("first mark should be X, got %c", pos1[4])
	}
	pos2 := p.Result(pos1, Move(0))
	if pos2[0] != O {
		t.Errorf("second mark should be O, got %c", pos2[0])
	}
}

func TestFullMinimaxFromEmptyIsDraw(t *testing.T) {
	s := search.NewMinimax[Position, Move](New(), 9)
	s.Run()

	if s.Status() != search.StatusCompleted {
		t.Fatalf("status mismatch: %v vs COMPLETED", s.Status())
	}
	if v, ok := s.SolutionCost(); !ok || v != 0 {
		t.Errorf("perfect play should draw: %v (ok=%v) vs 0", v, ok)
	}
}

func TestAlphaBetaAgreesAndPrunes(t *testing.T) {
	s := search.NewAlphaBeta[Position, Move](New(), 9)
	s.Run()

	if v, ok := s.SolutionCost(); !ok || v != 0 {
		t.Errorf("pruned search should still draw: %v (ok=%v) vs 0", v, ok)
	}

	pruned := 0
	s.Tree().Walk(func(n *vistree.Node) {
		if n.IsPruned {
			pruned++
		}
	})
	if pruned == 0 {
		t.Error("alpha-beta over the full game should prune something")
	}
}

func TestDepthOneSearchPrefersCenter(t *testing.T) {
	s := search.NewMinimax[Position, Move](New(), 1)
	s.Run()

	if v, ok := s.SolutionCost(); !ok || v != 0.4 {
		t.Errorf("root value mismatch: %v (ok=%v) vs 0.4", v, ok)
	}
	sol := s.Solution()
	if len(sol) != 1 || sol[0] != "4" {
		t.Errorf("best opening mismatch: %v vs [4]", sol)
	}
}

func TestMCTSDeterministicUnderSeed(t *testing.T) {
	a := search.NewMCTS[Position, Move](New(), 150, 0, 0, 7)
	b := search.NewMCTS[Position, Move](New(), 150, 0, 0, 7)
	a.Run()
	b.Run()

	if a.Status() != search.StatusCompleted {
		t.Fatalf("status mismatch: %v vs COMPLETED", a.Status())
	}
	sa, sb := a.Solution(), b.Solution()
	if len(sa) != 1 || len(sb) != 1 {
		t.Fatalf("both runs should recommend a move: %v vs %v", sa, sb)
	}
	if sa[0] != sb[0] {
		t.Errorf("seeded runs diverged: %q vs %q", sa[0], sb[0])
	}
	if a.Metrics() != b.Metrics() {
		t.Errorf("metrics mismatch: %+v vs %+v", a.Metrics(), b.Metrics())
	}
}
