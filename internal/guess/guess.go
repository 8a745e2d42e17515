// Package guess normalizes free-text guesses and matches them against
// catalog item names.
package guess

import "strings"

var separators = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// Normalize lowercases s, turns underscores, hyphens and dots into spaces,
// collapses whitespace runs, and trims the ends.
func Normalize(s string) string {
	s = separators.Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}

// Matches reports whether a guess names the answer, after normalizing both.
func Matches(guess, answer string) bool {
	return Normalize(guess) == Normalize(answer)
}

// FindName resolves a guess against the known item names and returns the
// canonical name. Guesses that match no catalog entry are rejected rather
// than recorded.
func FindName(g string, names []string) (string, bool) {
	n := Normalize(g)
	if n == "" {
		return "", false
	}
	for _, name := range names {
		if Normalize(name) == n {
			return name, true
		}
	}
	return "", false
}
