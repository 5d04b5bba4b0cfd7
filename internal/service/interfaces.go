package service

import (
	"github.com/pageza/mixmaster/backend/internal/catalog"
	"github.com/pageza/mixmaster/backend/internal/model"
)

// IMixService is the recipe, ledger and profile surface used by the HTTP
// handlers and the CLI.
type IMixService interface {
	Categories() []string
	Search(query, category string) []model.Recipe
	Home(query, category string) *Home
	Browse(query string) []model.Recipe
	Random() (model.Recipe, error)
	Spotlight(limit int) []model.Recipe

	Recipe(id string) (model.Recipe, error)
	Open(id string, servings int) (*Detail, error)
	CreateRecipe(in catalog.CreateInput) (model.Recipe, error)
	ToggleFavorite(id string) (bool, error)
	SubmitRating(id string, value int) (*RatingSummary, error)
	PostComment(id, text string) ([]string, error)
	ShareText(id string) (string, error)

	Library() *Library
	RecordSearch(text string) []string
	RecentSearches() []string

	Onboard(name string, dob model.DOB) model.Profile
	Onboarded() bool
	Profile() model.Profile
}

// Ensure MixService implements IMixService
var _ IMixService = (*MixService)(nil)
