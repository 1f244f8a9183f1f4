package compare

import (
	"math"
	"strings"
	"testing"
)

func TestSimilarityKnownRatios(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{a: "abcd", b: "bcde", want: 0.75},
		{a: "hello", b: "", want: 0},
		{a: "", b: "", want: 1},
		{a: "<html>hello</html>", b: "<html>hello</html>", want: 1},
		{a: "abc", b: "xyz", want: 0},
		{a: "ab", b: "abcd", want: 2.0 * 2 / 6},
	}

	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("Similarity(%q, %q) got=%v want=%v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"the quick brown fox", "the quick red fox jumps"},
		{"<p>admin panel</p>", "<p>access denied</p>"},
		{strings.Repeat("ab", 150) + "x", strings.Repeat("ba", 140) + "yz"},
		{"", "non-empty"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Fatalf("asymmetric score for %q/%q: %v vs %v", p[0], p[1], ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Fatalf("score out of range: %v", ab)
		}
	}
}

func TestSimilarityReflexiveOnLongRepetitiveBody(t *testing.T) {
	body := strings.Repeat("a", 300)
	if got := Similarity(body, body); got != 1.0 {
		t.Fatalf("Similarity(x, x) got=%v want=1.0", got)
	}
}

func TestSimilarityEmptyProbeAgainstLargePage(t *testing.T) {
	page := strings.Repeat("<div>content</div>", 56)[:1000]
	if got := Similarity(page, ""); got != 0 {
		t.Fatalf("expected 0 for empty probe, got %v", got)
	}
}

func TestComparatorNormalizeDynamic(t *testing.T) {
	a := "<p>generated 2024-01-02T03:04:05Z id=550e8400-e29b-41d4-a716-446655440000</p>"
	b := "<p>generated 2025-06-07T08:09:10Z id=123e4567-e89b-12d3-a456-426614174000</p>"

	if (Comparator{}).Similarity(a, b) == 1.0 {
		t.Fatalf("raw comparison should see the dynamic tokens")
	}
	if got := (Comparator{NormalizeDynamic: true}).Similarity(a, b); got != 1.0 {
		t.Fatalf("normalized comparison got=%v want=1.0", got)
	}
}

func TestNormalizeForDiff(t *testing.T) {
	got := NormalizeForDiff("  Total:   1234 items\n at 2024-01-02 03:04:05 ")
	want := "total: <n> items at <ts>"
	if got != want {
		t.Fatalf("NormalizeForDiff() got=%q want=%q", got, want)
	}
}

func TestDiff(t *testing.T) {
	st := Diff("abcdef", "abXdef")
	if st.Inserted != 1 || st.Deleted != 1 {
		t.Fatalf("unexpected diff stats: %+v", st)
	}
	if st.Levenshtein != 1 {
		t.Fatalf("unexpected levenshtein: %d", st.Levenshtein)
	}

	st = Diff("page", "")
	if st.Deleted != 4 || st.Inserted != 0 || st.Levenshtein != 4 {
		t.Fatalf("unexpected diff stats for empty probe: %+v", st)
	}
}
