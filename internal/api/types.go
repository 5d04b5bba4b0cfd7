package api

import (
	"encoding/json"
	"strings"

	"github.com/pageza/mixmaster/backend/internal/model"
)

// RatingRequest accepts the rating as a JSON number or string.
type RatingRequest struct {
	Rating json.RawMessage `json:"rating"`
}

func (r RatingRequest) raw() string {
	return strings.Trim(strings.TrimSpace(string(r.Rating)), `"`)
}

type CommentRequest struct {
	Text string `json:"text"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type OnboardingRequest struct {
	Name string    `json:"name"`
	DOB  model.DOB `json:"dob"`
}

// RecipeListResponse wraps a list of recipes.
type RecipeListResponse struct {
	Recipes []model.Recipe `json:"recipes"`
	Count   int            `json:"count"`
}

type FavoriteResponse struct {
	RecipeID string `json:"recipeId"`
	Favorite bool   `json:"favorite"`
}

type CommentsResponse struct {
	RecipeID string   `json:"recipeId"`
	Comments []string `json:"comments"`
}

type SearchesResponse struct {
	Searches []string `json:"searches"`
}

type ProfileResponse struct {
	Onboarded bool          `json:"onboarded"`
	Profile   model.Profile `json:"profile"`
}

func recipeList(rs []model.Recipe) RecipeListResponse {
	if rs == nil {
		rs = []model.Recipe{}
	}
	return RecipeListResponse{Recipes: rs, Count: len(rs)}
}
