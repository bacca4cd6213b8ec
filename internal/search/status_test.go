package search

import "testing"

func TestStatusStrings(t *testing.T) {
	cases := []struct {
		s    Status
		want string
	}{
		{StatusIdle, "IDLE"},
		{StatusRunning, "RUNNING"},
		{StatusCompleted, "COMPLETED"},
		{StatusFailed, "FAILED"},
		{Status(99), "UNKNOWN"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("Status(%d): got %s, want %s", c.s, got, c.want)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusIdle.Terminal() || StatusRunning.Terminal() {
		t.Error("IDLE and RUNNING are not terminal")
	}
	if !StatusCompleted.Terminal() || !StatusFailed.Terminal() {
		t.Error("COMPLETED and FAILED are terminal")
	}
}

func TestPlayerOther(t *testing.T) {
	if MaxPlayer.Other() != MinPlayer || MinPlayer.Other() != MaxPlayer {
		t.Error("Other should flip the player")
	}
	if MaxPlayer.String() != "MAX" || MinPlayer.String() != "MIN" {
		t.Error("Player names should be MAX and MIN")
	}
}
