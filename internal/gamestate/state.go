// internal/gamestate/state.go
//
// Game progress state machine for one calendar day.
// States: NotStarted -> InProgress -> Won, with a durable "completed"
// marker handled by the cookie codec. All transitions are deterministic and
// idempotent where the rules require it: guessing after a win is a no-op,
// and hint reveals are gated by guess count.

package gamestate

import (
	"errors"

	"github.com/produceitem/feetdle/internal/guess"
)

// Status is the coarse lifecycle of a day's game.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
)

const maxHints = 3

// guessesPerHint is how many guesses unlock one additional hint.
const guessesPerHint = 5

var (
	// ErrFinished rejects transitions after the day's game is won.
	ErrFinished = errors.New("game already finished")
	// ErrNoHint rejects a reveal when no unviewed hint is unlocked.
	ErrNoHint = errors.New("no hint available")
)

// State is the full client-persisted game progress, keyed by calendar day.
// Guesses are most-recent-first.
type State struct {
	Date        string   `json:"date"`
	Started     bool     `json:"started"`
	Guesses     []string `json:"guesses"`
	ViewedHints int      `json:"viewedHints"`
	HasWon      bool     `json:"hasWon"`
	ShowHints   bool     `json:"showHints"`
}

// NewForDay returns a fresh NotStarted state for the given date key.
func NewForDay(dateKey string) *State {
	return &State{Date: dateKey, Guesses: []string{}}
}

// Status reports the coarse state.
func (s *State) Status() Status {
	switch {
	case s.HasWon:
		return StatusWon
	case s.Started:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// Start marks the session started. The flag is separate from guess data so
// a reload before starting does not auto-expand the UI. Idempotent.
func (s *State) Start() {
	s.Started = true
}

// ApplyGuess records text as the newest guess and reports whether it names
// the answer, transitioning to Won on a match. Guessing a finished game
// returns ErrFinished and leaves the state untouched.
func (s *State) ApplyGuess(text, answer string) (bool, error) {
	if s.HasWon {
		return false, ErrFinished
	}
	s.Started = true
	s.Guesses = append([]string{text}, s.Guesses...)
	if guess.Matches(text, answer) {
		s.HasWon = true
		return true, nil
	}
	return false, nil
}

// AvailableHints is the number of hints unlocked by guess count,
// independent of how many have been viewed: one per five guesses, capped.
func (s *State) AvailableHints() int {
	n := len(s.Guesses) / guessesPerHint
	if n > maxHints {
		return maxHints
	}
	return n
}

// RevealHint reveals exactly one more hint, or returns ErrNoHint when none
// is unlocked beyond those already viewed.
func (s *State) RevealHint() error {
	if s.ViewedHints >= s.AvailableHints() {
		return ErrNoHint
	}
	s.ViewedHints++
	s.ShowHints = true
	return nil
}

// RolloverIfStale returns the state to use for todayKey: the receiver when
// its date still matches, otherwise a fresh NotStarted state for today.
func (s *State) RolloverIfStale(todayKey string) (*State, bool) {
	if s.Date == todayKey {
		return s, false
	}
	return NewForDay(todayKey), true
}
