package model

import "math"

// Ingredient is one line of a recipe. A nil Amount means "to taste" and is
// never scaled.
type Ingredient struct {
	Name   string   `json:"name" yaml:"name"`
	Amount *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Unit   string   `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Recipe is a drink entry. Recipes are immutable once created; the ID is the
// key every favorite, rating, comment and recent view refers to.
type Recipe struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Category     string       `json:"category" yaml:"category"`
	AlcoholType  string       `json:"alcoholType,omitempty" yaml:"alcohol_type"`
	Image        string       `json:"image,omitempty" yaml:"image,omitempty"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`
	Instructions string       `json:"instructions" yaml:"instructions"`
	Calories     *int         `json:"calories" yaml:"calories,omitempty"`
	Tags         []string     `json:"tags" yaml:"tags"`
}

// DisplayType is the alcohol type, falling back to the category.
func (r Recipe) DisplayType() string {
	if r.AlcoholType != "" {
		return r.AlcoholType
	}
	return r.Category
}

// Scaled returns a copy with every scalable amount multiplied by servings
// and rounded to two decimals. Servings below 1 are treated as 1.
func (r Recipe) Scaled(servings int) Recipe {
	if servings < 1 {
		servings = 1
	}
	out := r
	out.Ingredients = make([]Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		if ing.Amount != nil {
			v := math.Round(*ing.Amount*float64(servings)*100) / 100
			ing.Amount = &v
		}
		out.Ingredients[i] = ing
	}
	return out
}

// Amount is a helper for building ingredients in literals.
func Amount(v float64) *float64 {
	return &v
}
