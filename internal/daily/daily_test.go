package daily

import (
	"testing"
	"time"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestDateKey(t *testing.T) {
	loc := mustLoc(t)
	// 06:30 UTC on March 6 is still March 5 in Los Angeles.
	at := time.Date(2024, 3, 6, 6, 30, 0, 0, time.UTC)
	if got := DateKey(at, loc); got != "2024-03-05" {
		t.Errorf("DateKey %q, want 2024-03-05", got)
	}
}

func TestSeedFormula(t *testing.T) {
	loc := mustLoc(t)
	at := time.Date(2024, 3, 5, 12, 0, 0, 0, loc)
	if got := Seed(at, loc); got != 2032 {
		t.Errorf("Seed %d, want 2032 (2024+3+5)", got)
	}
}

func TestIndexExample(t *testing.T) {
	loc := mustLoc(t)
	at := time.Date(2024, 3, 5, 12, 0, 0, 0, loc)
	got, err := Index(at, loc, 7)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if got != 2 {
		t.Errorf("Index %d, want 2 (2032 mod 7)", got)
	}
}

func TestIndexSameDayDeterminism(t *testing.T) {
	loc := mustLoc(t)
	early := time.Date(2024, 3, 5, 0, 0, 1, 0, loc)
	late := time.Date(2024, 3, 5, 23, 59, 59, 0, loc)
	for n := 1; n <= 11; n++ {
		a, err := Index(early, loc, n)
		if err != nil {
			t.Fatalf("Index(early, %d): %v", n, err)
		}
		b, err := Index(late, loc, n)
		if err != nil {
			t.Fatalf("Index(late, %d): %v", n, err)
		}
		if a != b {
			t.Errorf("n=%d: early index %d != late index %d", n, a, b)
		}
		if a < 0 || a >= n {
			t.Errorf("n=%d: index %d out of range", n, a)
		}
	}
}

func TestIndexEmptyCatalog(t *testing.T) {
	loc := mustLoc(t)
	if _, err := Index(time.Now(), loc, 0); err != ErrNoItems {
		t.Errorf("Index with n=0 err %v, want ErrNoItems", err)
	}
	if _, err := Index(time.Now(), loc, -1); err != ErrNoItems {
		t.Errorf("Index with n=-1 err %v, want ErrNoItems", err)
	}
}

func TestNextMidnight(t *testing.T) {
	loc := mustLoc(t)
	at := time.Date(2024, 3, 5, 15, 42, 0, 0, loc)
	want := time.Date(2024, 3, 6, 0, 0, 0, 0, loc)
	if got := NextMidnight(at, loc); !got.Equal(want) {
		t.Errorf("NextMidnight %v, want %v", got, want)
	}
	// Just before midnight rolls to the immediately following day.
	at = time.Date(2024, 3, 5, 23, 59, 59, 0, loc)
	if got := NextMidnight(at, loc); !got.Equal(want) {
		t.Errorf("NextMidnight %v, want %v", got, want)
	}
}
