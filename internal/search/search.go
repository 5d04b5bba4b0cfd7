package search

import (
	"math/rand"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pageza/mixmaster/backend/internal/ledger"
	"github.com/pageza/mixmaster/backend/internal/model"
)

const (
	// AllCategories disables the category filter.
	AllCategories = "All"
	// DefaultSpotlight is the spotlight length used when none is given.
	DefaultSpotlight = 8
)

// Search filters catalog by category and free text, keeping catalog order.
//
// The category matches as a substring of the display type. The text matches
// as a substring of "name alcoholType tags...", and any recipe whose name
// starts with the query's first character also passes, so a one-letter
// query browses by initial.
func Search(catalog []model.Recipe, query, category string) []model.Recipe {
	term := strings.ToLower(strings.TrimSpace(query))
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == strings.ToLower(AllCategories) {
		cat = ""
	}

	out := []model.Recipe{}
	for _, r := range catalog {
		if matchCategory(r, cat) && matchText(r, term) {
			out = append(out, r)
		}
	}
	return out
}

func matchCategory(r model.Recipe, cat string) bool {
	return cat == "" || strings.Contains(strings.ToLower(r.DisplayType()), cat)
}

func matchText(r model.Recipe, term string) bool {
	if term == "" {
		return true
	}
	hay := strings.ToLower(r.Name + " " + r.AlcoholType + " " + strings.Join(r.Tags, " "))
	if strings.Contains(hay, term) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(term)
	return strings.HasPrefix(strings.ToLower(r.Name), string(first))
}

// Spotlight ranks favorited recipes first and returns the first limit.
// Ties keep catalog order. A limit below 1 uses DefaultSpotlight.
func Spotlight(catalog []model.Recipe, favorites ledger.Favorites, limit int) []model.Recipe {
	if limit < 1 {
		limit = DefaultSpotlight
	}
	ranked := append([]model.Recipe(nil), catalog...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(favorites, ranked[i]) > score(favorites, ranked[j])
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if len(ranked) == 0 {
		return Head(catalog, limit)
	}
	return ranked
}

func score(favorites ledger.Favorites, r model.Recipe) int {
	if favorites.IsFavorite(r.ID) {
		return 1
	}
	return 0
}

// Random picks a recipe uniformly. It reports false for an empty catalog.
func Random(catalog []model.Recipe, rng *rand.Rand) (model.Recipe, bool) {
	if len(catalog) == 0 {
		return model.Recipe{}, false
	}
	return catalog[rng.Intn(len(catalog))], true
}

// Head returns a copy of at most the first n recipes.
func Head(rs []model.Recipe, n int) []model.Recipe {
	if len(rs) > n {
		rs = rs[:n]
	}
	return append([]model.Recipe{}, rs...)
}
