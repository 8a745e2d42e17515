// internal/catalog/store.go
//
// SQLite-backed catalog store.
// Responsibilities:
//   - List: read all items with positions resolved, refresh the fallback
//     snapshot on success.
//   - Create: validate an admin-submitted item, normalize its position,
//     insert, and return the stored record.
//   - Fallback: serve the last successfully listed items when the database
//     is unreachable, so a daily-item request can degrade instead of fail.
//
// Validation failures wrap ErrValidation so callers can distinguish them
// from storage failures.

package catalog

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrValidation marks a malformed create-item payload.
var ErrValidation = errors.New("invalid item")

// Store reads and writes catalog items.
type Store struct {
	conn *Connector

	mu       sync.RWMutex
	fallback []Item
}

// NewStore wraps a Connector.
func NewStore(conn *Connector) *Store {
	return &Store{conn: conn}
}

// List returns every catalog item, positions resolved. A successful read
// refreshes the fallback snapshot.
func (s *Store) List(ctx context.Context) ([]Item, error) {
	db, err := s.conn.DB(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, image_url, hints, difficulty, position
		 FROM items ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		var hints, pos string
		if err := rows.Scan(&it.ID, &it.Name, &it.ImageURL, &hints, &it.Difficulty, &pos); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(hints), &it.Hints); err != nil {
			log.Warn().Err(err).Str("item", it.ID).Msg("bad hints column, skipping hints")
			it.Hints = []string{}
		}
		it.Position = ResolvePosition(pos)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.fallback = append([]Item(nil), items...)
	s.mu.Unlock()
	return items, nil
}

// Fallback returns a copy of the last successfully listed items, or nil if
// nothing has been listed yet.
func (s *Store) Fallback() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fallback == nil {
		return nil
	}
	return append([]Item(nil), s.fallback...)
}

// ClearFallback drops the snapshot. The reset clock calls this on date
// rollover so a new day never degrades onto yesterday's stale list.
func (s *Store) ClearFallback() {
	s.mu.Lock()
	s.fallback = nil
	s.mu.Unlock()
}

// CreateParams is the admin-facing item creation payload. Position accepts
// any of the storage encodings (coordinates, named string, nested).
type CreateParams struct {
	Name       string          `json:"name"`
	ImageURL   string          `json:"imageUrl"`
	Hints      []string        `json:"hints"`
	Difficulty string          `json:"difficulty"`
	Position   json.RawMessage `json:"position"`
}

// validate checks required fields and fills defaults in place.
func (p *CreateParams) validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(p.Name) > MaxNameLen {
		return fmt.Errorf("%w: name cannot be more than %d characters", ErrValidation, MaxNameLen)
	}
	if strings.TrimSpace(p.ImageURL) == "" {
		return fmt.Errorf("%w: imageUrl is required", ErrValidation)
	}
	if p.Difficulty == "" {
		p.Difficulty = string(DifficultyMedium)
	}
	if !Difficulty(p.Difficulty).valid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrValidation, p.Difficulty)
	}
	if p.Hints == nil {
		p.Hints = []string{}
	}
	return nil
}

// Create validates params, clamps the position, and inserts a new item.
func (s *Store) Create(ctx context.Context, params CreateParams) (*Item, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	pos := ResolvePosition(string(params.Position))

	db, err := s.conn.DB(ctx)
	if err != nil {
		return nil, err
	}
	it := &Item{
		ID:         randomID(),
		Name:       params.Name,
		ImageURL:   strings.TrimSpace(params.ImageURL),
		Hints:      params.Hints,
		Difficulty: Difficulty(params.Difficulty),
		Position:   pos,
	}
	hints, err := json.Marshal(it.Hints)
	if err != nil {
		return nil, err
	}
	posJSON, err := json.Marshal(it.Position)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := db.ExecContext(ctx,
		`INSERT INTO items (id, name, image_url, hints, difficulty, position, created_at)
		 VALUES (?,?,?,?,?,?,?)`,
		it.ID, it.Name, it.ImageURL, string(hints), string(it.Difficulty), string(posJSON), now); err != nil {
		return nil, err
	}
	return it, nil
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
