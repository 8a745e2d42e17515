// internal/httpserver/routes_game.go
//
// Game session routes under /api/game. The browser holds all progress in
// signed cookies; every handler loads the state (with a date-rollover
// check), applies exactly one transition, and re-serializes the full state.
//   - GET  /api/game/state → current progress plus derived zoom/origin
//   - POST /api/game/start → explicit session start
//   - POST /api/game/guess → record a guess, detect a win
//   - POST /api/game/hint  → reveal one unlocked hint
//
// Guesses are validated against catalog names; unknown free text is
// rejected and never recorded. Guessing after a win (or with the durable
// completion marker set) is a no-op that just echoes the current view.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/produceitem/feetdle/internal/catalog"
	"github.com/produceitem/feetdle/internal/daily"
	"github.com/produceitem/feetdle/internal/gamestate"
	"github.com/produceitem/feetdle/internal/guess"
	"github.com/produceitem/feetdle/internal/zoom"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Get("/state", s.handleGameState)
		r.Post("/start", s.handleGameStart)
		r.Post("/guess", s.handleGameGuess)
		r.Post("/hint", s.handleGameHint)
	})
}

// gameView is the client-facing projection of the state machine plus the
// presentation values derived from it.
type gameView struct {
	Date           string   `json:"date"`
	Status         string   `json:"status"`
	Started        bool     `json:"started"`
	Guesses        []string `json:"guesses"`
	ViewedHints    int      `json:"viewedHints"`
	AvailableHints int      `json:"availableHints"`
	ShowHints      bool     `json:"showHints"`
	HasWon         bool     `json:"hasWon"`
	Hints          []string `json:"hints"`
	Zoom           int      `json:"zoom"`
	Origin         string   `json:"origin"`
	ResetInSeconds int64    `json:"resetInSeconds,omitempty"`
}

// buildView projects state + today's item into a response. After a win the
// view is the explicit origin-centered full image, and the countdown to the
// next reference-zone midnight is included.
func (s *Server) buildView(st *gamestate.State, it *catalog.Item) gameView {
	v := gameView{
		Date:           st.Date,
		Status:         string(st.Status()),
		Started:        st.Started,
		Guesses:        st.Guesses,
		ViewedHints:    st.ViewedHints,
		AvailableHints: st.AvailableHints(),
		ShowHints:      st.ShowHints,
		HasWon:         st.HasWon,
		Hints:          []string{},
	}
	if it != nil {
		n := st.ViewedHints
		if n > len(it.Hints) {
			n = len(it.Hints)
		}
		v.Hints = it.Hints[:n]
	}
	if st.HasWon {
		origin, lvl := zoom.WonView()
		v.Origin, v.Zoom = origin.String(), lvl
		now := s.now()
		v.ResetInSeconds = int64(daily.NextMidnight(now, s.cfg.Location).Sub(now).Seconds())
		return v
	}
	v.Zoom = zoom.Level(len(st.Guesses), true)
	if it != nil {
		v.Origin = zoom.ForPosition(it.Position.X, it.Position.Y).String()
	}
	return v
}

// loadGame reads today's state and item. A durable completion marker for
// today is folded in, so a lost session cookie cannot reopen a solved day.
// The item may be nil when the catalog is empty or unreachable; guessing is
// refused in that case so the client never plays against an undefined
// answer.
func (s *Server) loadGame(r *http.Request) (*gamestate.State, *catalog.Item) {
	today := daily.DateKey(s.now(), s.cfg.Location)
	st := s.codec.Read(r, today)
	if !st.HasWon && s.codec.Completed(r, today) {
		st.HasWon = true
		st.Started = true
	}
	it, _, err := s.dailyItem(r.Context())
	if err != nil {
		if !errors.Is(err, daily.ErrNoItems) {
			log.Warn().Err(err).Msg("daily item unavailable for game session")
		}
		return st, nil
	}
	return st, it
}

// handleGameState returns the current view without mutating anything.
// Optional fx/fy query parameters (percentages of the rendered image box)
// apply the user's click-to-focus override to the returned origin; the
// override is transient and lost on the next reload or rotation.
func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	st, it := s.loadGame(r)
	v := s.buildView(st, it)
	if !st.HasWon {
		fx, errX := strconv.ParseFloat(r.URL.Query().Get("fx"), 64)
		fy, errY := strconv.ParseFloat(r.URL.Query().Get("fy"), 64)
		if errX == nil && errY == nil {
			v.Origin = zoom.OriginAt(fx, fy).String()
		}
	}
	writeJSON(w, http.StatusOK, v)
}

// handleGameStart marks the session started and persists the state.
func (s *Server) handleGameStart(w http.ResponseWriter, r *http.Request) {
	st, it := s.loadGame(r)
	st.Start()
	if err := s.codec.Write(w, st); err != nil {
		log.Error().Err(err).Msg("persist game state")
		http.Error(w, `{"error":"persist_failed"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s.buildView(st, it))
}

type guessReq struct {
	Guess string `json:"guess"`
}

type guessRes struct {
	gameView
	Correct bool `json:"correct"`
}

// handleGameGuess validates and applies one guess.
func (s *Server) handleGameGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	st, it := s.loadGame(r)
	if it == nil {
		// No answer to guess against; keep the UI disabled rather than
		// accept guesses into the void.
		http.Error(w, `{"error":"No items found"}`, http.StatusNotFound)
		return
	}
	if st.HasWon {
		writeJSON(w, http.StatusOK, guessRes{gameView: s.buildView(st, it), Correct: true})
		return
	}

	items, err := s.listWithFallback(r.Context())
	if err != nil {
		http.Error(w, `{"error":"Failed to fetch items"}`, http.StatusBadGateway)
		return
	}
	names := make([]string, len(items))
	for i, cand := range items {
		names[i] = cand.Name
	}
	name, ok := guess.FindName(req.Guess, names)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown_item"})
		return
	}

	correct, err := st.ApplyGuess(name, it.Name)
	if err != nil {
		writeJSON(w, http.StatusOK, guessRes{gameView: s.buildView(st, it), Correct: st.HasWon})
		return
	}
	if err := s.codec.Write(w, st); err != nil {
		log.Error().Err(err).Msg("persist game state")
		http.Error(w, `{"error":"persist_failed"}`, http.StatusInternalServerError)
		return
	}
	if correct {
		s.codec.MarkCompleted(w, st.Date)
	}
	writeJSON(w, http.StatusOK, guessRes{gameView: s.buildView(st, it), Correct: correct})
}

// handleGameHint reveals exactly one hint when the guess count permits.
func (s *Server) handleGameHint(w http.ResponseWriter, r *http.Request) {
	st, it := s.loadGame(r)
	if err := st.RevealHint(); err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no_hint_available"})
		return
	}
	if err := s.codec.Write(w, st); err != nil {
		log.Error().Err(err).Msg("persist game state")
		http.Error(w, `{"error":"persist_failed"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s.buildView(st, it))
}
