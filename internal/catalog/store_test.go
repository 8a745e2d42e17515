package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// brokenConnector never connects, so Create reaches validation only.
func brokenConnector() *Connector {
	return &Connector{open: func(ctx context.Context) (*sql.DB, error) {
		return nil, errors.New("unreachable")
	}}
}

func TestCreateValidation(t *testing.T) {
	s := NewStore(brokenConnector())
	ctx := context.Background()

	cases := []struct {
		name   string
		params CreateParams
	}{
		{"missing name", CreateParams{ImageURL: "https://img/x.png"}},
		{"blank name", CreateParams{Name: "   ", ImageURL: "https://img/x.png"}},
		{"name too long", CreateParams{Name: strings.Repeat("x", MaxNameLen+1), ImageURL: "https://img/x.png"}},
		{"missing image", CreateParams{Name: "big toe"}},
		{"bad difficulty", CreateParams{Name: "big toe", ImageURL: "https://img/x.png", Difficulty: "brutal"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := s.Create(ctx, c.params); !errors.Is(err, ErrValidation) {
				t.Errorf("Create err %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateParamsDefaults(t *testing.T) {
	p := CreateParams{Name: " big toe ", ImageURL: "https://img/x.png"}
	if err := p.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if p.Name != "big toe" {
		t.Errorf("Name %q, want trimmed", p.Name)
	}
	if p.Difficulty != string(DifficultyMedium) {
		t.Errorf("Difficulty %q, want medium default", p.Difficulty)
	}
	if p.Hints == nil {
		t.Error("Hints should default to empty slice")
	}
}

func TestCreateParamsPosition(t *testing.T) {
	p := CreateParams{
		Name:     "big toe",
		ImageURL: "https://img/x.png",
		Position: json.RawMessage(`"top left"`),
	}
	if err := p.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := ResolvePosition(string(p.Position)); got != (Position{1, 1}) {
		t.Errorf("position %+v, want {1 1}", got)
	}
}

func TestFallbackSnapshot(t *testing.T) {
	s := NewStore(brokenConnector())
	if s.Fallback() != nil {
		t.Error("fresh store should have no fallback")
	}

	s.mu.Lock()
	s.fallback = []Item{{ID: "a", Name: "big toe"}}
	s.mu.Unlock()

	got := s.Fallback()
	if len(got) != 1 || got[0].Name != "big toe" {
		t.Fatalf("Fallback = %+v", got)
	}
	// Returned slice is a copy; mutating it must not touch the snapshot.
	got[0].Name = "mutated"
	if again := s.Fallback(); again[0].Name != "big toe" {
		t.Error("Fallback returned a shared slice")
	}

	s.ClearFallback()
	if s.Fallback() != nil {
		t.Error("ClearFallback should drop the snapshot")
	}
}

func TestListFailsWithoutConnection(t *testing.T) {
	s := NewStore(brokenConnector())
	if _, err := s.List(context.Background()); err == nil {
		t.Error("List should surface the connection failure")
	}
}
