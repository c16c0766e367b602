package names

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Similarity threshold below which a fuzzy candidate is rejected.
const defaultThreshold = 0.80

// Normalizer resolves raw team names to their canonical spelling: explicit
// alias first, known canonical second, then a longest-common-subsequence
// similarity match against the alias table. It never fails; an unresolvable
// name is returned unchanged and the downstream lookup miss becomes the
// observable failure.
type Normalizer struct {
	mu        sync.RWMutex
	aliases   map[string]string // folded alias -> canonical
	canonical map[string]string // folded canonical -> canonical
	resolved  map[string]string // raw input -> canonical, memoized
	threshold float64
}

func NewNormalizer(aliases map[string]string) *Normalizer {
	n := &Normalizer{
		aliases:   make(map[string]string, len(aliases)),
		canonical: make(map[string]string, len(aliases)),
		resolved:  make(map[string]string),
		threshold: defaultThreshold,
	}
	for alias, canonical := range aliases {
		n.aliases[fold(alias)] = canonical
		n.canonical[fold(canonical)] = canonical
	}
	return n
}

// DefaultAliases covers the spellings the bundled sources disagree on.
func DefaultAliases() map[string]string {
	return map[string]string{
		"Man City":                 "Manchester City",
		"Man Utd":                  "Manchester United",
		"Man United":               "Manchester United",
		"PSG":                      "Paris Saint Germain",
		"Paris SG":                 "Paris Saint Germain",
		"Spurs":                    "Tottenham",
		"Tottenham Hotspur":        "Tottenham",
		"Wolverhampton":            "Wolves",
		"Newcastle Utd":            "Newcastle United",
		"Nottingham":               "Nottingham Forest",
		"Atletico":                 "Atletico Madrid",
		"Inter Milan":              "Inter",
		"Leeds":                    "Leeds United",
		"West Ham United":          "West Ham",
		"Brighton and Hove Albion": "Brighton",
	}
}

// Normalize returns the canonical form of raw, or raw itself when nothing in
// the alias table comes close enough.
func (n *Normalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}

	n.mu.RLock()
	memo, ok := n.resolved[trimmed]
	n.mu.RUnlock()
	if ok {
		return memo
	}

	out := n.resolve(trimmed)

	n.mu.Lock()
	n.resolved[trimmed] = out
	n.mu.Unlock()

	return out
}

func (n *Normalizer) resolve(name string) string {
	folded := fold(name)

	if canonical, ok := n.aliases[folded]; ok {
		return canonical
	}
	if canonical, ok := n.canonical[folded]; ok {
		return canonical
	}

	best, bestScore := "", 0.0
	for alias, canonical := range n.aliases {
		score := lcsSimilarity(folded, alias)
		if score > bestScore {
			best, bestScore = canonical, score
		}
	}
	for foldedCanonical, canonical := range n.canonical {
		score := lcsSimilarity(folded, foldedCanonical)
		if score > bestScore {
			best, bestScore = canonical, score
		}
	}
	if bestScore >= n.threshold {
		return best
	}

	return name
}

// lcsSimilarity is the longest-common-subsequence length over the longer
// input length, in [0,1].
func lcsSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return float64(prev[len(rb)]) / float64(longer)
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases and strips diacritics so "Atlético" and "atletico" compare equal.
func fold(s string) string {
	stripped, _, err := transform.String(foldTransformer, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}
