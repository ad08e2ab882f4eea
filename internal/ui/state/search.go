package state

import (
	"strings"

	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchCategory names the synthetic category that holds search results.
const SearchCategory = "Search results"

// Search returns every entry of the named categories, in the given order,
// whose name or comment contains query case-insensitively. The query is
// matched as typed; surrounding whitespace only decides whether the filter
// is active, so a blank query returns (nil, false). An entry listed under
// several categories appears once per category. A nil names slice searches
// every category in insertion order.
func Search(categories *menu.CategoryMap, names []string, query string) ([]menu.Entry, bool) {
	if strings.TrimSpace(query) == "" {
		return nil, false
	}
	needle := strings.ToLower(query)
	if names == nil {
		names = categories.Names()
	}
	results := make([]menu.Entry, 0)
	for _, name := range names {
		entries, ok := categories.Get(name)
		if !ok {
			continue
		}
		for _, entry := range entries {
			if matches(entry, needle) {
				results = append(results, entry)
			}
		}
	}
	return results, true
}

func matches(entry menu.Entry, needle string) bool {
	return strings.Contains(strings.ToLower(entry.Name), needle) ||
		strings.Contains(strings.ToLower(entry.Comment), needle)
}

// BestMatchIndex picks the entry the grid cursor should land on: an exact
// name match, then the first name prefix, then the closest fuzzy rank among
// names containing the query, then the first comment match, then the
// closest fuzzy rank over every name. It returns -1 for an empty slice.
func BestMatchIndex(entries []menu.Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, entry := range entries {
		if strings.EqualFold(entry.Name, trimmed) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Name), lower) {
			return i
		}
	}
	var contained []int
	for i, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), lower) {
			contained = append(contained, i)
		}
	}
	if idx := closestName(entries, contained, trimmed); idx >= 0 {
		return idx
	}
	for i, entry := range entries {
		if matches(entry, lower) {
			return i
		}
	}
	all := make([]int, len(entries))
	for i := range entries {
		all[i] = i
	}
	if idx := closestName(entries, all, trimmed); idx >= 0 {
		return idx
	}
	return 0
}

// closestName ranks the names of entries at the given indexes against query
// and returns the index with the smallest distance, preferring the earlier
// entry on ties. It returns -1 when nothing ranks.
func closestName(entries []menu.Entry, indexes []int, query string) int {
	if len(indexes) == 0 {
		return -1
	}
	labels := make([]string, len(indexes))
	for i, idx := range indexes {
		labels[i] = entries[idx].Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(indexes) {
		return -1
	}
	return indexes[best.OriginalIndex]
}
