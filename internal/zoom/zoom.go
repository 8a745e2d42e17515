// Package zoom maps catalog grid positions to CSS-style focal origins and
// computes the image zoom level from game progress. Everything here is pure;
// the client applies the returned values as transform-origin / scale.
package zoom

import "strconv"

// Zoom levels are percentages of the image's rendered size.
const (
	BaseLevel     = 200 // starting zoom before any guesses
	StepPerGuess  = 10  // zoom-out per guess
	FloorLevel    = 100 // never zoom out past the full image
	DisabledLevel = 200 // resting scale when the zoom aid is toggled off
	WonLevel      = 100 // full image after a correct guess
)

// Origin is a focal point within an image, as percentages of its box.
type Origin struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String renders the origin as a CSS transform-origin value, e.g. "50% 50%".
func (o Origin) String() string {
	return pct(o.X) + " " + pct(o.Y)
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// ForPosition maps a 1-5 grid coordinate pair to a focal origin by linear
// interpolation: 1 -> 0%, 3 -> 50%, 5 -> 100%. Coordinates outside [1,5]
// are clamped first.
func ForPosition(x, y float64) Origin {
	return Origin{
		X: (clampCoord(x) - 1) / 4 * 100,
		Y: (clampCoord(y) - 1) / 4 * 100,
	}
}

func clampCoord(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// Level computes the zoom percentage for the given guess count. Each guess
// zooms out by StepPerGuess until FloorLevel; with the aid disabled the
// image sits at DisabledLevel regardless of progress.
func Level(guessCount int, enabled bool) int {
	if !enabled {
		return DisabledLevel
	}
	lvl := BaseLevel - guessCount*StepPerGuess
	if lvl < FloorLevel {
		return FloorLevel
	}
	return lvl
}

// WonView is the post-win presentation: the full image, centered.
func WonView() (Origin, int) {
	return Origin{X: 50, Y: 50}, WonLevel
}

// ClampPercent bounds a click-derived percentage into [0,100].
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// OriginAt builds a user focal override from a click at (px%, py%) of the
// rendered image box. It overrides the position-derived origin until the
// image is reloaded or rotated.
func OriginAt(px, py float64) Origin {
	return Origin{X: ClampPercent(px), Y: ClampPercent(py)}
}
