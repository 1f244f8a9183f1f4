// Package compare scores how much two response bodies resemble each other.
package compare

import (
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Similarity returns 2*M/T in [0,1], where M is the number of characters in
// the matching blocks found by the Ratcliff/Obershelp algorithm and T the
// combined length of both bodies.
//
// Identical bodies score 1.0 even when the auto-junk heuristic would discard
// every popular character of a long page, and the pair is matched in a fixed
// order so Similarity(a, b) == Similarity(b, a).
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if b < a {
		a, b = b, a
	}
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

// Comparator scores bodies, optionally normalising dynamic tokens first.
type Comparator struct {
	NormalizeDynamic bool
}

func (c Comparator) Similarity(a, b string) float64 {
	if c.NormalizeDynamic {
		a, b = NormalizeForDiff(a), NormalizeForDiff(b)
	}
	return Similarity(a, b)
}

func splitRunes(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// DiffStats summarises a character diff between two bodies.
type DiffStats struct {
	Inserted    int
	Deleted     int
	Levenshtein int
}

// Diff computes insert/delete counts (in runes) and the Levenshtein distance
// between a and b. It is informational and never feeds the score.
func Diff(a, b string) DiffStats {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)

	var st DiffStats
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			st.Inserted += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffDelete:
			st.Deleted += utf8.RuneCountInString(d.Text)
		}
	}
	st.Levenshtein = dmp.DiffLevenshtein(diffs)
	return st
}
