// Package textnorm reduces names to a comparable form: case-folded, without
// diacritics or punctuation, with single spaces.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Normalize folds case, strips accents and punctuation and collapses whitespace.
//
//	Normalize("  José   da Silva! ") == "jose da silva"
func Normalize(s string) string {
	s = stripMarks(s)
	s = cases.Fold().String(s)
	s = reNonWord.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Contains reports whether the normalized name contains the normalized query.
// An empty query never matches.
func Contains(name, query string) bool {
	q := Normalize(query)
	if q == "" {
		return false
	}
	return strings.Contains(Normalize(name), q)
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
