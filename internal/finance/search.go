package finance

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestCategories ranks the store's distinct categories by edit distance
// to the query, for a "did you mean" hint when the substring search comes
// back empty. Only near matches (normalized distance < 0.6) qualify.
func (s *Store) SuggestCategories(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]bool)
	type scored struct {
		name string
		dist float64
	}
	var candidates []scored
	for _, t := range s.transactions {
		name := strings.TrimSpace(t.Category)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		d := normalizedDistance(q, key)
		if d < 0.6 {
			candidates = append(candidates, scored{name: name, dist: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

func normalizedDistance(a, b string) float64 {
	maxlen := len(a)
	if len(b) > maxlen {
		maxlen = len(b)
	}
	if maxlen == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(maxlen)
}
