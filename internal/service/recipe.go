package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/pageza/mixmaster/backend/internal/catalog"
	"github.com/pageza/mixmaster/backend/internal/ledger"
	"github.com/pageza/mixmaster/backend/internal/model"
	"github.com/pageza/mixmaster/backend/internal/search"
	"github.com/pageza/mixmaster/backend/internal/store"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// Options tune a MixService.
type Options struct {
	Policy         ledger.Policy
	SpotlightLimit int
	// Rand drives Random. Defaults to a time-seeded source.
	Rand *rand.Rand
	// Ready, when set, is closed once the store has loaded. Operations that
	// write a ledger block until then so they start from the saved value.
	Ready <-chan struct{}
}

// MixService owns the catalog and every user ledger. All methods are safe
// for concurrent use; mutations are applied one at a time.
type MixService struct {
	mu             sync.Mutex
	store          store.Store
	catalog        *catalog.Catalog
	policy         ledger.Policy
	spotlightLimit int
	rng            *rand.Rand
	ready          <-chan struct{}
}

// NewMixService creates a new MixService instance
func NewMixService(s store.Store, c *catalog.Catalog, opts Options) *MixService {
	if opts.Policy == "" {
		opts.Policy = ledger.PolicyReject
	}
	if opts.SpotlightLimit < 1 {
		opts.SpotlightLimit = search.DefaultSpotlight
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MixService{
		store:          s,
		catalog:        c,
		policy:         opts.Policy,
		spotlightLimit: opts.SpotlightLimit,
		rng:            opts.Rand,
		ready:          opts.Ready,
	}
}

// awaitStore blocks until hydration is done. A nil ready channel means the
// store was loaded before the service was built.
func (s *MixService) awaitStore() {
	if s.ready != nil {
		<-s.ready
	}
}

// RatingSummary is the state of a recipe's ratings after a submit.
type RatingSummary struct {
	RecipeID string  `json:"recipeId"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// Detail is a recipe as shown on its own screen.
type Detail struct {
	Recipe      model.Recipe     `json:"recipe"`
	Servings    int              `json:"servings"`
	Rating      float64          `json:"rating"`
	RatingCount int              `json:"ratingCount"`
	Favorite    bool             `json:"favorite"`
	Comments    []string         `json:"comments"`
	Gradient    catalog.Gradient `json:"gradient"`
}

// Categories returns the category filter values.
func (s *MixService) Categories() []string {
	return append([]string(nil), catalog.Categories...)
}

// Search filters the full catalog.
func (s *MixService) Search(query, category string) []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return search.Search(s.catalog.All(), query, category)
}

// Random picks any recipe from the full catalog.
func (s *MixService) Random() (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := search.Random(s.catalog.All(), s.rng)
	if !ok {
		return model.Recipe{}, ErrRecipeNotFound
	}
	return r, nil
}

// Spotlight ranks favorites first. A limit below 1 uses the configured one.
func (s *MixService) Spotlight(limit int) []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit < 1 {
		limit = s.spotlightLimit
	}
	return search.Spotlight(s.catalog.All(), s.favorites(), limit)
}

// Recipe looks a recipe up without recording a view.
func (s *MixService) Recipe(id string) (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(id)
}

// Open records a view of the recipe and returns it scaled to servings.
func (s *MixService) Open(id string, servings int) (*Detail, error) {
	s.awaitStore()
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if servings < 1 {
		servings = 1
	}

	var views ledger.RecentViews
	s.store.Get(store.KeyRecentViews, &views)
	s.store.Set(store.KeyRecentViews, views.Record(r))

	ratings := s.ratings()
	return &Detail{
		Recipe:      r.Scaled(servings),
		Servings:    servings,
		Rating:      ratings.Average(id),
		RatingCount: len(ratings[id]),
		Favorite:    s.favorites().IsFavorite(id),
		Comments:    s.comments().For(id),
		Gradient:    catalog.GradientFor(r.DisplayType()),
	}, nil
}

// CreateRecipe adds a user recipe to the front of the user list.
func (s *MixService) CreateRecipe(in catalog.CreateInput) (model.Recipe, error) {
	s.awaitStore()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Create(in)
}

// ToggleFavorite flips the recipe's favorite flag and returns the new value.
func (s *MixService) ToggleFavorite(id string) (bool, error) {
	s.awaitStore()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.find(id); err != nil {
		return false, err
	}
	favs := s.favorites().Toggle(id)
	s.store.Set(store.KeyFavorites, favs)
	return favs.IsFavorite(id), nil
}

// SubmitRating records a rating, clamped to [1,5].
func (s *MixService) SubmitRating(id string, value int) (*RatingSummary, error) {
	s.awaitStore()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.find(id); err != nil {
		return nil, err
	}
	ratings := s.ratings().Submit(id, value)
	s.store.Set(store.KeyRatings, ratings)
	return &RatingSummary{
		RecipeID: id,
		Average:  ratings.Average(id),
		Count:    len(ratings[id]),
	}, nil
}

// PostComment moderates and appends a comment, returning the recipe's
// comments. Blank text changes nothing.
func (s *MixService) PostComment(id, text string) ([]string, error) {
	s.awaitStore()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.find(id); err != nil {
		return nil, err
	}
	comments, posted, err := s.comments().Post(id, text, s.policy)
	if err != nil {
		return nil, err
	}
	if posted {
		s.store.Set(store.KeyComments, comments)
	}
	return comments.For(id), nil
}

func (s *MixService) find(id string) (model.Recipe, error) {
	r, ok := s.catalog.Find(id)
	if !ok {
		return model.Recipe{}, fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}
	return r, nil
}

func (s *MixService) favorites() ledger.Favorites {
	favs := ledger.Favorites{}
	s.store.Get(store.KeyFavorites, &favs)
	return favs
}

func (s *MixService) ratings() ledger.Ratings {
	ratings := ledger.Ratings{}
	s.store.Get(store.KeyRatings, &ratings)
	return ratings
}

func (s *MixService) comments() ledger.Comments {
	comments := ledger.Comments{}
	s.store.Get(store.KeyComments, &comments)
	return comments
}
