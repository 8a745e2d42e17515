// internal/catalog/item.go
//
// Item model for the guessing catalog.
// Defines:
//   - Difficulty: coarse rating enum (easy/medium/hard).
//   - Position: 1-5 grid coordinates for the image focal point.
//   - Item: one catalog entry, immutable after creation.

package catalog

// Difficulty rates how hard an item is to recognize.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// valid reports whether d is one of the known ratings.
func (d Difficulty) valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Position locates the image focal point on a 1-5 grid. (3,3) is the
// center. Values are always within [1,5] after normalization.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Item is a single catalog entry.
type Item struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`     // required, at most 60 chars
	ImageURL   string     `json:"imageUrl"` // required
	Hints      []string   `json:"hints"`    // ordered, typically 0..3
	Difficulty Difficulty `json:"difficulty"`
	Position   Position   `json:"position"`
}

// MaxNameLen bounds item names.
const MaxNameLen = 60
