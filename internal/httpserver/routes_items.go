// internal/httpserver/routes_items.go
//
// Catalog HTTP routes.
//   - GET  /api/items      → full catalog (fallback snapshot on db failure)
//   - POST /api/items      → admin item creation (validated, position clamped)
//   - GET  /api/daily-item → today's deterministically selected item
//
// The daily item is derived on every request from the date and catalog
// size; it is never persisted server-side, so repeated calls within one
// reference-zone day are idempotent by construction.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/produceitem/feetdle/internal/catalog"
	"github.com/produceitem/feetdle/internal/daily"
)

// listWithFallback reads the catalog, degrading to the last-good snapshot
// when the store errors. Only a failure with no snapshot propagates.
func (s *Server) listWithFallback(ctx context.Context) ([]catalog.Item, error) {
	items, err := s.cat.List(ctx)
	if err == nil {
		return items, nil
	}
	if fb := s.cat.Fallback(); len(fb) > 0 {
		log.Warn().Err(err).Msg("catalog unreachable, serving fallback snapshot")
		return fb, nil
	}
	return nil, err
}

// dailyItem resolves today's item. daily.ErrNoItems means an empty catalog.
func (s *Server) dailyItem(ctx context.Context) (*catalog.Item, string, error) {
	items, err := s.listWithFallback(ctx)
	if err != nil {
		return nil, "", err
	}
	now := s.now()
	idx, err := daily.Index(now, s.cfg.Location, len(items))
	if err != nil {
		return nil, "", err
	}
	return &items[idx], daily.DateKey(now, s.cfg.Location), nil
}

// handleListItems returns every catalog item.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.listWithFallback(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list items")
		http.Error(w, `{"error":"Failed to fetch items"}`, http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// handleCreateItem inserts a new catalog item (admin path).
func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var params catalog.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	it, err := s.cat.Create(r.Context(), params)
	if err != nil {
		if errors.Is(err, catalog.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		log.Error().Err(err).Msg("create item")
		http.Error(w, `{"error":"Failed to create item"}`, http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"item": it})
}

// handleDailyItem returns today's item, or 404 when the catalog is empty.
func (s *Server) handleDailyItem(w http.ResponseWriter, r *http.Request) {
	it, date, err := s.dailyItem(r.Context())
	if err != nil {
		if errors.Is(err, daily.ErrNoItems) {
			http.Error(w, `{"error":"No items found"}`, http.StatusNotFound)
			return
		}
		log.Error().Err(err).Msg("daily item")
		http.Error(w, `{"error":"Failed to fetch daily item"}`, http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": it, "date": date})
}
