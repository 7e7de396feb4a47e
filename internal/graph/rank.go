package graph

import (
	"sort"

	"github.com/sftools/sferd/pkg/sferd"
)

// RankByConnectivity orders entity names by the number of relationship
// endpoints touching them: one count as source plus one count as target per
// relationship. An entity referenced only as a target, even one that was
// never loaded, still accumulates a count and may appear in the ranking.
//
// The sort is a stable descending sort on the count; ties keep first-seen
// order from count accumulation, so the ranking is deterministic for a
// deterministic relationship sequence.
func RankByConnectivity(rels []sferd.Relationship) []string {
	counts := make(map[string]int)
	var seen []string

	bump := func(name string) {
		if _, ok := counts[name]; !ok {
			seen = append(seen, name)
		}
		counts[name]++
	}

	for _, rel := range rels {
		bump(rel.SourceEntity)
		bump(rel.TargetEntity)
	}

	ranked := make([]string, len(seen))
	copy(ranked, seen)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}

// SelectTop truncates the ranking to its first limit entries.
// If limit is at least the ranking length, the whole ranking is returned.
func SelectTop(ranked []string, limit int) []string {
	if limit < 0 {
		limit = 0
	}
	if limit >= len(ranked) {
		return ranked
	}
	return ranked[:limit]
}
