package zoom

import "testing"

func TestForPosition(t *testing.T) {
	cases := []struct {
		x, y float64
		want string
	}{
		{1, 1, "0% 0%"},
		{3, 3, "50% 50%"},
		{5, 5, "100% 100%"},
		{5, 1, "100% 0%"},
		{2, 4, "25% 75%"},
		{0, 9, "0% 100%"}, // out of range clamps
	}
	for _, c := range cases {
		if got := ForPosition(c.x, c.y).String(); got != c.want {
			t.Errorf("ForPosition(%v,%v) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestLevel(t *testing.T) {
	cases := []struct {
		guesses int
		enabled bool
		want    int
	}{
		{0, true, 200},
		{1, true, 190},
		{5, true, 150},
		{10, true, 100},
		{12, true, 100}, // floor
		{0, false, 200},
		{12, false, 200}, // disabled ignores progress
	}
	for _, c := range cases {
		if got := Level(c.guesses, c.enabled); got != c.want {
			t.Errorf("Level(%d,%v) = %d, want %d", c.guesses, c.enabled, got, c.want)
		}
	}
}

func TestWonView(t *testing.T) {
	origin, lvl := WonView()
	if origin.String() != "50% 50%" {
		t.Errorf("won origin %q, want 50%% 50%%", origin.String())
	}
	if lvl != 100 {
		t.Errorf("won level %d, want 100", lvl)
	}
}

func TestOriginAt(t *testing.T) {
	o := OriginAt(37.5, 120)
	if o.X != 37.5 || o.Y != 100 {
		t.Errorf("OriginAt = %+v, want {37.5 100}", o)
	}
	if o.String() != "37.5% 100%" {
		t.Errorf("String %q, want 37.5%% 100%%", o.String())
	}
	o = OriginAt(-3, 0)
	if o.X != 0 || o.Y != 0 {
		t.Errorf("OriginAt clamp = %+v, want {0 0}", o)
	}
}
