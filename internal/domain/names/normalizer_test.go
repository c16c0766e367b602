package names

import "testing"

func TestNormalizer_AliasHit(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(DefaultAliases())

	cases := map[string]string{
		"Man City":        "Manchester City",
		"man city":        "Manchester City",
		"PSG":             "Paris Saint Germain",
		"Manchester City": "Manchester City",
		"Atlético":        "Atletico Madrid",
	}
	for raw, want := range cases {
		if got := n.Normalize(raw); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizer_FuzzyFallback(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(DefaultAliases())

	// One dropped letter still clears the 0.80 LCS threshold.
	if got := n.Normalize("Manchestr City"); got != "Manchester City" {
		t.Fatalf("fuzzy match failed: got %q", got)
	}
}

func TestNormalizer_UnknownReturnsInput(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(DefaultAliases())

	if got := n.Normalize("FC Nowhere"); got != "FC Nowhere" {
		t.Fatalf("unknown name must pass through, got %q", got)
	}
	if got := n.Normalize(""); got != "" {
		t.Fatalf("empty name must pass through, got %q", got)
	}
}

func TestNormalizer_Memoization(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(DefaultAliases())

	first := n.Normalize("Spurs")
	second := n.Normalize("Spurs")
	if first != second || first != "Tottenham" {
		t.Fatalf("memoized result changed: %q vs %q", first, second)
	}
}

func TestLCSSimilarity(t *testing.T) {
	t.Parallel()

	if got := lcsSimilarity("abc", "abc"); got != 1.0 {
		t.Fatalf("identical strings: got %v", got)
	}
	if got := lcsSimilarity("abc", "xyz"); got != 0.0 {
		t.Fatalf("disjoint strings: got %v", got)
	}
	if got := lcsSimilarity("", "abc"); got != 0.0 {
		t.Fatalf("empty input: got %v", got)
	}
}
