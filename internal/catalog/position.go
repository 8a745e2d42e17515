// internal/catalog/position.go
//
// Position normalization at the storage boundary.
//
// Stored records encode the focal position three ways:
//   1. a coordinate object: {"x":4,"y":2}
//   2. a legacy named string: "top left" .. "bottom right"
//   3. a double-nested object: {"position":{"x":4,"y":2}}
//
// ResolvePosition folds all of them into clamped 1-5 grid coordinates,
// exactly once on read. The raw variant never leaves this package.

package catalog

import (
	"encoding/json"
	"strings"
)

const defaultCoord = 3 // grid center

// namedPositions maps the nine legacy position strings onto the grid:
// x in {1,3,5} for left/middle/right, y in {1,3,5} for top/middle/bottom.
var namedPositions = map[string]Position{
	"top left":      {X: 1, Y: 1},
	"top middle":    {X: 3, Y: 1},
	"top right":     {X: 5, Y: 1},
	"middle left":   {X: 1, Y: 3},
	"middle middle": {X: 3, Y: 3},
	"middle right":  {X: 5, Y: 3},
	"bottom left":   {X: 1, Y: 5},
	"bottom middle": {X: 3, Y: 5},
	"bottom right":  {X: 5, Y: 5},
}

// ResolvePosition normalizes a raw stored position value. Missing or
// unrecognizable input yields the grid center.
func ResolvePosition(raw string) Position {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return Position{X: defaultCoord, Y: defaultCoord}
	}

	// Named-string variant, either JSON-quoted or stored bare.
	var name string
	if err := json.Unmarshal([]byte(raw), &name); err == nil {
		return namedPosition(name)
	}

	var obj struct {
		X        *float64        `json:"x"`
		Y        *float64        `json:"y"`
		Position json.RawMessage `json:"position"`
	}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return namedPosition(raw)
	}
	// Double-nested records carry the real value one level down.
	if obj.X == nil && obj.Y == nil && len(obj.Position) > 0 {
		return ResolvePosition(string(obj.Position))
	}
	return Position{X: coord(obj.X), Y: coord(obj.Y)}
}

// namedPosition resolves a legacy position string, defaulting to center.
func namedPosition(name string) Position {
	if p, ok := namedPositions[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return Position{X: defaultCoord, Y: defaultCoord}
}

// coord clamps a present coordinate into [1,5]; absent ones default to 3.
func coord(v *float64) float64 {
	if v == nil {
		return defaultCoord
	}
	if *v < 1 {
		return 1
	}
	if *v > 5 {
		return 5
	}
	return *v
}
