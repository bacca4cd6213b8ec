package puzzle

import (
	"testing"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/search"
)

var (
	classicStart = Board{1, 2, 3, 4, 8, 0, 7, 6, 5}
	classicGoal  = Board{1, 2, 3, 4, 5, 6, 7, 8, 0}
)

func classic(t *testing.T) *Problem {
	t.Helper()
	p, err := NewFromBoards(classicStart, classicGoal)
	if err != nil {
		t.Fatalf("NewFromBoards failed: %v", err)
	}
	return p
}

func TestMovesRespectGridEdges(t *testing.T) {
	center := Board{1, 2, 3, 4, 0, 5, 6, 7, 8}
	if got := len(Moves(center)); got != 4 {
		t.Errorf("center blank should have 4 moves, got %d", got)
	}

	corner := Board{0, 1, 2, 3, 4, 5, 6, 7, 8}
	moves := Moves(corner)
	if len(moves) != 2 {
		t.Fatalf("corner blank should have 2 moves, got %d", len(moves))
	}
	if moves[0] != MoveDown || moves[1] != MoveRight {
		t.Errorf("corner moves should be [down right], got [%s %s]", moves[0].Name(), moves[1].Name())
	}
}

func TestApplySwapsBlankWithNeighbor(t *testing.T) {
	b, ok := Apply(classicStart, MoveDown)
	if !ok {
		t.Fatal("down should be legal from the classic start")
	}

	want := Board{1, 2, 3, 4, 8, 5, 7, 6, 0}
	if b != want {
		t.Errorf("board mismatch after down: %v vs %v", b, want)
	}

	// The original board is untouched; Apply works on a copy.
	if classicStart.Blank() != 5 {
		t.Error("Apply mutated its input")
	}
}

func TestApplyOffGridKeepsBoard(t *testing.T) {
	top := Board{1, 0, 2, 3, 4, 5, 6, 7, 8}
	b, ok := Apply(top, MoveUp)
	if ok {
		t.Error("up from the top row should be illegal")
	}
	if b != top {
		t.Errorf("illegal move changed the board: %v vs %v", b, top)
	}
}

func TestManhattanClassicStart(t *testing.T) {
	if got := Manhattan(classicStart, classicGoal); got != 5 {
		t.Errorf("Manhattan mismatch: %v vs 5", got)
	}
	if got := Manhattan(classicGoal, classicGoal); got != 0 {
		t.Errorf("Manhattan at goal should be 0, got %v", got)
	}
}

func TestSolvableTracksInversionParity(t *testing.T) {
	if !Solvable(classicStart, classicGoal) {
		t.Error("classic pair should be solvable")
	}

	// Swapping two adjacent tiles flips parity.
	swapped := classicGoal
	swapped[0], swapped[1] = swapped[1], swapped[0]
	if Solvable(swapped, classicGoal) {
		t.Error("single transposition should be unsolvable")
	}
}

func TestNewFromBoardsValidation(t *testing.T) {
	dup := Board{1, 1, 2, 3, 4, 5, 6, 7, 8}
	if _, err := NewFromBoards(dup, classicGoal); err == nil {
		t.Error("duplicate tile should be rejected")
	}

	swapped := classicGoal
	swapped[0], swapped[1] = swapped[1], swapped[0]
	if _, err := NewFromBoards(swapped, classicGoal); err == nil {
		t.Error("unsolvable pair should be rejected")
	}

	if _, err := NewFromBoards(classicStart, classicGoal); err != nil {
		t.Errorf("classic pair rejected: %v", err)
	}
}

func TestRenderBlankAsDot(t *testing.T) {
	lines := Render(classicGoal)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[2] != "7 8 ·" {
		t.Errorf("bottom row mismatch: %q vs %q", lines[2], "7 8 ·")
	}
}

func TestBreadthFirstFindsFiveMoveSolution(t *testing.T) {
	s := search.NewBFS[Board, Move](classic(t))
	s.Run()

	if s.Status() != search.StatusCompleted {
		t.Fatalf("status mismatch: %v vs COMPLETED", s.Status())
	}
	if got := len(s.Solution()); got != 5 {
		t.Errorf("solution length mismatch: %d vs 5", got)
	}
	cost, ok := s.SolutionCost()
	if !ok || cost != 5 {
		t.Errorf("solution cost mismatch: %v (ok=%v) vs 5", cost, ok)
	}
}

func TestAStarMatchesOptimum(t *testing.T) {
	s := search.NewAStar[Board, Move](classic(t))
	s.Run()

	if s.Status() != search.StatusCompleted {
		t.Fatalf("status mismatch: %v vs COMPLETED", s.Status())
	}
	if cost, ok := s.SolutionCost(); !ok || cost != 5 {
		t.Errorf("A* cost mismatch: %v (ok=%v) vs 5", cost, ok)
	}
}

func TestIterativeDeepeningMatchesOptimum(t *testing.T) {
	s := search.NewDeepening[Board, Move](classic(t), 0, 32)
	s.Run()

	if s.Status() != search.StatusCompleted {
		t.Fatalf("status mismatch: %v vs COMPLETED", s.Status())
	}
	if got := len(s.Solution()); got != 5 {
		t.Errorf("solution length mismatch: %d vs 5", got)
	}
}

func TestIDAStarStartsAtHeuristicThreshold(t *testing.T) {
	s := search.NewIDAStar[Board, Move](classic(t), 64)

	if got := s.Attributes()["Current f-limit (Threshold)"]; got != "5" {
		t.Errorf("initial threshold mismatch: %q vs %q", got, "5")
	}

	s.Run()
	if s.Status() != search.StatusCompleted {
		t.Fatalf("status mismatch: %v vs COMPLETED", s.Status())
	}
	if got := len(s.Solution()); got != 5 {
		t.Errorf("solution length mismatch: %d vs 5", got)
	}
}

func TestBoardPanelFollowsSearch(t *testing.T) {
	s := search.NewBFS[Board, Move](classic(t))

	before := s.Board()
	if len(before) != 3 || before[1] != "4 8 ·" {
		t.Errorf("initial board mismatch: %v", before)
	}

	s.Run()
	after := s.Board()
	if after[2] != "7 8 ·" {
		t.Errorf("final board should show the goal, got %v", after)
	}
}

func TestDeterminism(t *testing.T) {
	a := search.NewBFS[Board, Move](classic(t))
	b := search.NewBFS[Board, Move](classic(t))
	a.Run()
	b.Run()

	sa, sb := a.Solution(), b.Solution()
	if len(sa) != len(sb) {
		t.Fatalf("solution length mismatch: %d vs %d", len(sa), len(sb))
	}
	for i := range sa {
		if sa[i] != sb[i] {
			t.Errorf("solution step %d mismatch: %q vs %q", i, sa[i], sb[i])
		}
	}
	if a.Metrics() != b.Metrics() {
		t.Errorf("metrics mismatch: %+v vs %+v", a.Metrics(), b.Metrics())
	}
}

func TestSearcherConstruction(t *testing.T) {
	p := classic(t)
	for _, info := range p.Algorithms() {
		s, err := p.NewSearcher(info.ID, search.DefaultOptions())
		if err != nil {
			t.Errorf("NewSearcher(%q) failed: %v", info.ID, err)
			continue
		}
		if s.Status() != search.StatusIdle {
			t.Errorf("%s: fresh searcher should be IDLE, got %v", info.ID, s.Status())
		}
	}

	if _, err := p.NewSearcher("minimax", search.DefaultOptions()); err == nil {
		t.Error("adversarial algorithm should be rejected for a path problem")
	}
}
