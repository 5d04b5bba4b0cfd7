package search_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/pageza/mixmaster/backend/internal/catalog"
	"github.com/pageza/mixmaster/backend/internal/ledger"
	"github.com/pageza/mixmaster/backend/internal/model"
	"github.com/pageza/mixmaster/backend/internal/search"
	"github.com/pageza/mixmaster/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func library(t *testing.T) []model.Recipe {
	t.Helper()
	s, _ := testhelpers.NewMemoryStore(t)
	c, err := catalog.New(s)
	require.NoError(t, err)
	return c.All()
}

func ids(rs []model.Recipe) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

// assertCatalogOrder checks got is a subsequence of all.
func assertCatalogOrder(t *testing.T, all, got []model.Recipe) {
	t.Helper()
	i := 0
	for _, r := range all {
		if i < len(got) && got[i].ID == r.ID {
			i++
		}
	}
	assert.Equal(t, len(got), i, "result is not in catalog order")
}

func TestSearchEmptyQueryReturnsEverything(t *testing.T) {
	all := library(t)
	assert.Equal(t, ids(all), ids(search.Search(all, "", "All")))
	assert.Equal(t, ids(all), ids(search.Search(all, "   ", search.AllCategories)))
}

func TestSearchFirstLetterFallback(t *testing.T) {
	all := library(t)
	got := search.Search(all, "m", "All")

	var want []string
	for _, r := range all {
		hay := strings.ToLower(r.Name + " " + r.AlcoholType + " " + strings.Join(r.Tags, " "))
		if strings.HasPrefix(strings.ToLower(r.Name), "m") || strings.Contains(hay, "m") {
			want = append(want, r.ID)
		}
	}
	assert.Equal(t, want, ids(got))
	assert.Contains(t, ids(got), "feat-mojo-vegas")
	assert.Contains(t, ids(got), "sm-002")
	assertCatalogOrder(t, all, got)
}

func TestSearchMultiCharacterKeepsFirstLetterPass(t *testing.T) {
	all := library(t)
	got := ids(search.Search(all, "mzzz", "All"))

	// nothing contains "mzzz", so only names starting with m pass
	assert.Equal(t, []string{"feat-mojo-vegas", "rum-002", "wh-004", "wh-007", "rye-005", "sm-002"}, got)
}

func TestSearchCategoryAndText(t *testing.T) {
	all := library(t)

	got := search.Search(all, "gin", "Gin")
	assert.Equal(t, []string{"gin-001", "gin-002", "gin-003", "gin-004", "gin-005"}, ids(got))
	for _, r := range got {
		assert.Contains(t, strings.ToLower(r.DisplayType()), "gin")
	}

	// text alone also finds ginger tags on other spirits
	textOnly := ids(search.Search(all, "gin", "All"))
	assert.Contains(t, textOnly, "wh-008")
	assert.Contains(t, textOnly, "sco-003")

	rye := search.Search(all, "", "rye")
	require.Len(t, rye, 5)
	for _, r := range rye {
		assert.Equal(t, "Rye", r.DisplayType())
	}

	assert.Empty(t, search.Search(all, "", "Slush"))
}

func TestSearchUsesCategoryWhenTypeMissing(t *testing.T) {
	rs := []model.Recipe{
		{ID: "a", Name: "Latte", Category: "Coffee"},
		{ID: "b", Name: "Negroni", Category: "Alcohol", AlcoholType: "Gin"},
	}
	assert.Equal(t, []string{"a"}, ids(search.Search(rs, "", "coffee")))
}

func TestSpotlight(t *testing.T) {
	all := library(t)

	t.Run("favorite first, others in catalog order", func(t *testing.T) {
		got := search.Spotlight(all, ledger.Favorites{"vod-003": true}, 8)
		require.Len(t, got, 8)
		assert.Equal(t, "vod-003", got[0].ID)
		assert.Equal(t, ids(all[:7]), ids(got[1:]))
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		favs := ledger.Favorites{"sm-005": true, "cof-002": true, "gin-004": false}
		got := search.Spotlight(all, favs, 4)
		assert.Equal(t, []string{"cof-002", "sm-005", all[0].ID, all[1].ID}, ids(got))
	})

	t.Run("no favorites is the catalog head", func(t *testing.T) {
		assert.Equal(t, ids(all[:8]), ids(search.Spotlight(all, nil, 0)))
	})

	t.Run("empty catalog", func(t *testing.T) {
		assert.Empty(t, search.Spotlight(nil, ledger.Favorites{"x": true}, 8))
	})

	t.Run("does not reorder the input", func(t *testing.T) {
		before := ids(all)
		search.Spotlight(all, ledger.Favorites{"vod-005": true}, 8)
		assert.Equal(t, before, ids(all))
	})
}

func TestRandom(t *testing.T) {
	all := library(t)
	rng := rand.New(rand.NewSource(7))

	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		r, ok := search.Random(all, rng)
		require.True(t, ok)
		seen[r.ID] = true
	}
	assert.Len(t, seen, len(all))

	_, ok := search.Random(nil, rng)
	assert.False(t, ok)
}

func TestHead(t *testing.T) {
	rs := []model.Recipe{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	assert.Equal(t, []string{"a", "b"}, ids(search.Head(rs, 2)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(search.Head(rs, 10)))
	assert.Empty(t, search.Head(nil, 3))
}
