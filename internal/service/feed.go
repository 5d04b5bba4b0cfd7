package service

import (
	"strings"

	"github.com/pageza/mixmaster/backend/internal/ledger"
	"github.com/pageza/mixmaster/backend/internal/model"
	"github.com/pageza/mixmaster/backend/internal/search"
	"github.com/pageza/mixmaster/backend/internal/store"
)

const (
	homeAllLimit    = 40
	browseHeadLimit = 24
)

// Home is the landing feed.
type Home struct {
	Featured  []model.Recipe `json:"featured"`
	Spotlight []model.Recipe `json:"spotlight"`
	Favorites []model.Recipe `json:"favorites"`
	All       []model.Recipe `json:"all"`
}

// Library is the user's recently opened and favorited recipes.
type Library struct {
	RecentViews []model.Recipe `json:"recentViews"`
	Favorites   []model.Recipe `json:"favorites"`
}

// Home builds the landing feed. query and category only narrow All.
func (s *MixService) Home(query, category string) *Home {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.catalog.All()
	favs := s.favorites()
	return &Home{
		Featured:  s.catalog.Featured(),
		Spotlight: search.Spotlight(all, favs, s.spotlightLimit),
		Favorites: favs.Favorited(all),
		All:       search.Head(search.Search(all, query, category), homeAllLimit),
	}
}

// Browse is the text-only search screen. An empty query shows the head of
// the catalog.
func (s *MixService) Browse(query string) []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.catalog.All()
	if strings.TrimSpace(query) == "" {
		return search.Head(all, browseHeadLimit)
	}
	return search.Search(all, query, search.AllCategories)
}

// Library returns recent views and favorites.
func (s *MixService) Library() *Library {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := ledger.RecentViews{}
	s.store.Get(store.KeyRecentViews, &views)
	return &Library{
		RecentViews: append([]model.Recipe{}, views...),
		Favorites:   s.favorites().Favorited(s.catalog.All()),
	}
}

// RecordSearch remembers trimmed search text and returns the list.
func (s *MixService) RecordSearch(text string) []string {
	s.awaitStore()
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := s.recentSearches()
	if text = strings.TrimSpace(text); text != "" {
		recent = recent.Record(text)
		s.store.Set(store.KeyRecentSearches, recent)
	}
	return append([]string{}, recent...)
}

// RecentSearches returns remembered searches, newest first.
func (s *MixService) RecentSearches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.recentSearches()...)
}

func (s *MixService) recentSearches() ledger.RecentSearches {
	var recent ledger.RecentSearches
	s.store.Get(store.KeyRecentSearches, &recent)
	return recent
}
