package daily

import (
	"errors"
	"time"
)

// ErrNoItems is returned when the catalog is empty and no daily item can be
// selected. Callers surface it as a terminal not-found response.
var ErrNoItems = errors.New("no items available")

// DateKey returns the YYYY-MM-DD calendar date of t in the reference zone.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// Seed derives the daily seed from t's calendar date in the reference zone:
// the sum of the year, month and day components. Two instants on the same
// reference-zone day always produce the same seed.
func Seed(t time.Time, loc *time.Location) int {
	y, m, d := t.In(loc).Date()
	return y + int(m) + d
}

// Index selects the deterministic daily index for a catalog of size n.
// Returns ErrNoItems when n <= 0.
func Index(t time.Time, loc *time.Location, n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoItems
	}
	return Seed(t, loc) % n, nil
}

// NextMidnight returns the instant of the next reference-zone midnight
// after t, i.e. when the daily item rolls over.
func NextMidnight(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
}
