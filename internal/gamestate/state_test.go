package gamestate

import (
	"errors"
	"testing"
)

func TestNewForDay(t *testing.T) {
	st := NewForDay("2024-03-05")
	if st.Date != "2024-03-05" {
		t.Errorf("Date %q, want 2024-03-05", st.Date)
	}
	if st.Status() != StatusNotStarted {
		t.Errorf("Status %q, want not_started", st.Status())
	}
	if st.Guesses == nil || len(st.Guesses) != 0 {
		t.Errorf("Guesses %v, want empty slice", st.Guesses)
	}
}

func TestStart(t *testing.T) {
	st := NewForDay("2024-03-05")
	st.Start()
	if st.Status() != StatusInProgress {
		t.Errorf("Status %q, want in_progress", st.Status())
	}
	st.Start() // idempotent
	if !st.Started || st.HasWon {
		t.Errorf("unexpected state after double start: %+v", st)
	}
}

func TestApplyGuessOrdering(t *testing.T) {
	st := NewForDay("2024-03-05")
	for _, g := range []string{"first", "second", "third"} {
		if _, err := st.ApplyGuess(g, "answer"); err != nil {
			t.Fatalf("ApplyGuess(%q): %v", g, err)
		}
	}
	want := []string{"third", "second", "first"} // most-recent-first
	for i, g := range want {
		if st.Guesses[i] != g {
			t.Errorf("Guesses[%d] = %q, want %q", i, st.Guesses[i], g)
		}
	}
	if !st.Started {
		t.Error("guessing should mark the session started")
	}
}

func TestApplyGuessWin(t *testing.T) {
	st := NewForDay("2024-03-05")
	correct, err := st.ApplyGuess("BIG-TOE LEFT", "big_toe.left")
	if err != nil {
		t.Fatalf("ApplyGuess: %v", err)
	}
	if !correct || !st.HasWon || st.Status() != StatusWon {
		t.Errorf("expected win, got correct=%v state=%+v", correct, st)
	}
}

func TestGuessAfterWonIsNoOp(t *testing.T) {
	st := NewForDay("2024-03-05")
	if _, err := st.ApplyGuess("answer", "answer"); err != nil {
		t.Fatalf("winning guess: %v", err)
	}
	before := len(st.Guesses)
	hints := st.ViewedHints
	for i := 0; i < 2; i++ {
		if _, err := st.ApplyGuess("answer", "answer"); !errors.Is(err, ErrFinished) {
			t.Errorf("guess %d after win err %v, want ErrFinished", i, err)
		}
	}
	if len(st.Guesses) != before {
		t.Errorf("guesses length %d, want unchanged %d", len(st.Guesses), before)
	}
	if st.ViewedHints != hints {
		t.Error("hint state mutated by no-op guess")
	}
}

func TestAvailableHints(t *testing.T) {
	cases := []struct{ guesses, want int }{
		{0, 0}, {4, 0}, {5, 1}, {9, 1}, {10, 2}, {12, 2}, {15, 3}, {40, 3},
	}
	for _, c := range cases {
		st := NewForDay("2024-03-05")
		for i := 0; i < c.guesses; i++ {
			_, _ = st.ApplyGuess("nope", "answer")
		}
		if got := st.AvailableHints(); got != c.want {
			t.Errorf("%d guesses: AvailableHints %d, want %d", c.guesses, got, c.want)
		}
	}
}

func TestRevealHint(t *testing.T) {
	st := NewForDay("2024-03-05")
	for i := 0; i < 12; i++ {
		_, _ = st.ApplyGuess("nope", "answer")
	}
	// 12 guesses unlock exactly 2 hints, one reveal at a time.
	for i := 1; i <= 2; i++ {
		if err := st.RevealHint(); err != nil {
			t.Fatalf("reveal %d: %v", i, err)
		}
		if st.ViewedHints != i {
			t.Errorf("ViewedHints %d, want %d", st.ViewedHints, i)
		}
	}
	if !st.ShowHints {
		t.Error("ShowHints should be set after a reveal")
	}
	// Third hint is not yet unlocked: no-op, state unchanged.
	if err := st.RevealHint(); !errors.Is(err, ErrNoHint) {
		t.Errorf("reveal beyond available err %v, want ErrNoHint", err)
	}
	if st.ViewedHints != 2 {
		t.Errorf("ViewedHints %d after no-op, want 2", st.ViewedHints)
	}
}

func TestRevealHintCap(t *testing.T) {
	st := NewForDay("2024-03-05")
	for i := 0; i < 40; i++ {
		_, _ = st.ApplyGuess("nope", "answer")
	}
	for i := 0; i < 3; i++ {
		if err := st.RevealHint(); err != nil {
			t.Fatalf("reveal %d: %v", i, err)
		}
	}
	if err := st.RevealHint(); !errors.Is(err, ErrNoHint) {
		t.Errorf("fourth reveal err %v, want ErrNoHint", err)
	}
}

func TestRolloverIfStale(t *testing.T) {
	st := NewForDay("2024-03-05")
	_, _ = st.ApplyGuess("nope", "answer")

	same, rolled := st.RolloverIfStale("2024-03-05")
	if rolled || same != st {
		t.Error("same-day state should be kept as-is")
	}

	fresh, rolled := st.RolloverIfStale("2024-03-06")
	if !rolled {
		t.Fatal("date change should roll over")
	}
	if fresh.Date != "2024-03-06" || fresh.Started || fresh.HasWon ||
		len(fresh.Guesses) != 0 || fresh.ViewedHints != 0 || fresh.ShowHints {
		t.Errorf("rollover state not fresh: %+v", fresh)
	}
}
