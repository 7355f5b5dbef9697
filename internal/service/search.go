package service

import (
	"sort"
	"strings"

	"github.com/pageza/kcalsnap/backend/internal/catalog"
	"github.com/pageza/kcalsnap/backend/internal/model"
)

// maxSearchResults caps the result list for search-as-you-type.
const maxSearchResults = 10

// SearchService matches free-text queries against catalog entries and
// their aliases. Matching is token-substring containment, not edit
// distance; the catalog is small and curated enough for that.
type SearchService struct {
	catalog *catalog.Catalog
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(cat *catalog.Catalog) *SearchService {
	return &SearchService{catalog: cat}
}

// Search returns up to 10 catalog entries matching the query, most
// relevant first. An empty or whitespace-only query returns an empty list.
func (s *SearchService) Search(query string) []model.FoodItem {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return []model.FoodItem{}
	}

	type scored struct {
		item model.FoodItem
		rank int
	}
	var matches []scored
	for _, item := range s.catalog.All() {
		rank, ok := matchRank(item, tokens)
		if !ok {
			continue
		}
		matches = append(matches, scored{item: item, rank: rank})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})

	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	results := make([]model.FoodItem, len(matches))
	for i, m := range matches {
		results[i] = m.item
	}
	return results
}

// matchRank reports whether every token is contained in the canonical
// name, or every token is contained in at least one alias. Lower ranks
// sort first: exact name, name prefix, name substring, alias-only.
func matchRank(item model.FoodItem, tokens []string) (int, bool) {
	name := strings.ToLower(item.Name)

	if containsAll(name, tokens) {
		query := strings.Join(tokens, " ")
		switch {
		case name == query:
			return 0, true
		case strings.HasPrefix(name, query):
			return 1, true
		default:
			return 2, true
		}
	}

	aliasMatch := true
	for _, token := range tokens {
		found := false
		for _, alias := range item.Aliases {
			if strings.Contains(strings.ToLower(alias), token) {
				found = true
				break
			}
		}
		if !found {
			aliasMatch = false
			break
		}
	}
	if aliasMatch && len(item.Aliases) > 0 {
		return 3, true
	}
	return 0, false
}

func containsAll(s string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(s, token) {
			return false
		}
	}
	return true
}
