// internal/gamestate/cookie.go
//
// Cookie persistence for game progress.
// Responsibilities:
//   - Serialize the full State into one signed (HS256) cookie per mutation,
//     expiring after a day.
//   - Keep a long-lived completion marker so "already solved today"
//     survives beyond the session cookie.
//   - Read a legacy trio of plain cookies as a migration path only; they
//     are never written and never override the canonical state.
//
// A cookie that fails signature or shape checks is treated as absent: the
// caller gets a fresh NotStarted state rather than an error.

package gamestate

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Cookie names. The daily_* legacy names are read-only compatibility.
const (
	StateCookie     = "daily_state"
	CompletedCookie = "daily_completed"

	legacyDateCookie    = "daily_date"
	legacyGuessesCookie = "daily_guesses"
	legacyHintsCookie   = "daily_viewed_hints"
	legacyWonCookie     = "daily_has_won"
)

const (
	stateTTL     = 24 * time.Hour
	completedTTL = 365 * 24 * time.Hour
)

// Codec signs and verifies persisted game state.
type Codec struct {
	secret []byte
	secure bool
}

// NewCodec builds a Codec. secure controls the cookie Secure/SameSite
// attributes the same way the auth cookies in production do.
func NewCodec(secret string, secure bool) *Codec {
	return &Codec{secret: []byte(secret), secure: secure}
}

// stateClaims embeds the state in a verifiable token.
type stateClaims struct {
	State
	jwt.RegisteredClaims
}

// Read loads today's state from the request. Missing, stale, expired or
// corrupt cookies all yield a fresh NotStarted state for todayKey.
func (c *Codec) Read(r *http.Request, todayKey string) *State {
	if st := c.readSigned(r); st != nil {
		st, _ = st.RolloverIfStale(todayKey)
		return st
	}
	if st := readLegacy(r, todayKey); st != nil {
		return st
	}
	return NewForDay(todayKey)
}

func (c *Codec) readSigned(r *http.Request) *State {
	ck, err := r.Cookie(StateCookie)
	if err != nil || ck.Value == "" {
		return nil
	}
	claims := &stateClaims{}
	tok, err := jwt.ParseWithClaims(ck.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid || claims.Date == "" {
		return nil
	}
	st := claims.State
	if st.Guesses == nil {
		st.Guesses = []string{}
	}
	return &st
}

// Write re-serializes the full state after a mutating transition.
func (c *Codec) Write(w http.ResponseWriter, s *State) error {
	now := time.Now()
	exp := now.Add(stateTTL)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &stateClaims{
		State: *s,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, c.cookie(StateCookie, signed, exp))
	return nil
}

// Completed reports whether the durable completion marker says today's game
// was already solved. Markers from other days are ignored.
func (c *Codec) Completed(r *http.Request, todayKey string) bool {
	ck, err := r.Cookie(CompletedCookie)
	return err == nil && ck.Value == todayKey
}

// MarkCompleted records a win for dateKey with a retention well beyond the
// daily session cookie.
func (c *Codec) MarkCompleted(w http.ResponseWriter, dateKey string) {
	http.SetCookie(w, c.cookie(CompletedCookie, dateKey, time.Now().Add(completedTTL)))
}

// cookie applies the shared attributes.
func (c *Codec) cookie(name, value string, exp time.Time) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if c.secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: sameSite,
		Expires:  exp,
	}
}

// readLegacy assembles state from the old scattered cookies. Only trusted
// when the legacy date cookie matches today.
func readLegacy(r *http.Request, todayKey string) *State {
	if v, ok := legacyValue(r, legacyDateCookie); !ok || v != todayKey {
		return nil
	}
	st := NewForDay(todayKey)
	if v, ok := legacyValue(r, legacyGuessesCookie); ok {
		var gs []string
		if json.Unmarshal([]byte(v), &gs) == nil && gs != nil {
			st.Guesses = gs
			st.Started = len(gs) > 0
		}
	}
	if v, ok := legacyValue(r, legacyHintsCookie); ok {
		var n int
		if json.Unmarshal([]byte(v), &n) == nil && n >= 0 {
			if n > maxHints {
				n = maxHints
			}
			st.ViewedHints = n
			st.ShowHints = n > 0
		}
	}
	if v, ok := legacyValue(r, legacyWonCookie); ok && v == "true" {
		st.HasWon = true
		st.Started = true
	}
	return st
}

// legacyValue reads and unescapes a legacy cookie written by the old
// browser client.
func legacyValue(r *http.Request, name string) (string, bool) {
	ck, err := r.Cookie(name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	if v, err := url.QueryUnescape(ck.Value); err == nil {
		return v, true
	}
	return ck.Value, true
}
