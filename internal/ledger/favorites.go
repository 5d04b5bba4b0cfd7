package ledger

import "github.com/pageza/mixmaster/backend/internal/model"

// Favorites maps a recipe id to its favorite flag. A missing id is false.
type Favorites map[string]bool

// Toggle returns a copy with the recipe's flag negated.
func (f Favorites) Toggle(recipeID string) Favorites {
	out := make(Favorites, len(f)+1)
	for id, v := range f {
		out[id] = v
	}
	out[recipeID] = !f[recipeID]
	return out
}

// IsFavorite reports the recipe's flag.
func (f Favorites) IsFavorite(recipeID string) bool {
	return f[recipeID]
}

// Favorited returns the favorite recipes of catalog, in catalog order.
func (f Favorites) Favorited(catalog []model.Recipe) []model.Recipe {
	out := []model.Recipe{}
	for _, r := range catalog {
		if f[r.ID] {
			out = append(out, r)
		}
	}
	return out
}
