// Package classifier tags user input with a question category that
// drives the engine's adaptive verbosity policy.
package classifier

import "strings"

type Category string

const (
	CategoryMath    = Category("math")
	CategoryCode    = Category("code")
	CategoryTheory  = Category("theory")
	CategoryGeneric = Category("generic")
)

// Keyword tables are data, not branches, so they can be inspected and
// extended without touching the matching logic. Markers are in the
// engine's response language (Italian).
//
// The bare "x"/"y" entries make any text containing those letters look
// math-like. That is a deliberately loose heuristic inherited from the
// original behavior, not a parser.
var (
	mathMarkers = []string{
		"=", "+", "-", "*", "/",
		"x", "y",
		"calcola", "risolvi", "equazione", "frazione",
	}
	codeMarkers = []string{
		"codice", "code", "script", "programma",
		"c#", "python",
		"funzione", "classe", "metodo",
	}
	theoryMarkers = []string{
		"spiega", "cos'è", "cosa è", "perché",
		"definizione", "teoria",
	}
)

// Classify is total and deterministic: every input, including the empty
// string, gets a category. Categories are checked in priority order
// math > code > theory; the first match wins.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, mathMarkers):
		return CategoryMath
	case containsAny(lower, codeMarkers):
		return CategoryCode
	case containsAny(lower, theoryMarkers):
		return CategoryTheory
	default:
		return CategoryGeneric
	}
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
