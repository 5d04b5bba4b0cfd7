package catalog

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/mixmaster/backend/internal/model"
	"github.com/pageza/mixmaster/backend/internal/store"
	"gopkg.in/yaml.v3"
)

//go:embed library.yaml
var libraryYAML []byte

const (
	maxFeatured         = 8
	defaultInstructions = "Build over ice and serve."
	createdTag          = "created"
	userIDPrefix        = "mine-"
)

// ingredientPattern matches "<number> <optional unit> <name>". Longer units
// come first so "cups" is not read as "cup" + "s".
var ingredientPattern = regexp.MustCompile(`(?i)^([\d.]+)\s*(?:(oz|tsp|tbsp|cups|cup|dashes|dash|ml)\b)?\s*(.+)$`)

// ValidationError reports a rejected field on recipe creation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CreateInput is the free-text form a user fills in to author a recipe.
type CreateInput struct {
	Name         string `json:"name"`
	Base         string `json:"base"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

type library struct {
	Featured []string       `yaml:"featured"`
	Recipes  []model.Recipe `yaml:"recipes"`
}

// Catalog is the built-in library plus the user-authored recipes kept in
// the store under KeyMine. It holds no lock; callers serialize mutations.
type Catalog struct {
	builtin  []model.Recipe
	featured []model.Recipe
	store    store.Store
	now      func() time.Time
}

// New loads the embedded library.
func New(s store.Store) (*Catalog, error) {
	return Load(libraryYAML, s)
}

// Load builds a catalog from YAML library data.
func Load(data []byte, s store.Store) (*Catalog, error) {
	var lib library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse recipe library: %w", err)
	}

	seen := make(map[string]bool, len(lib.Recipes))
	for i := range lib.Recipes {
		r := &lib.Recipes[i]
		if r.ID == "" {
			return nil, fmt.Errorf("recipe %d has no id", i)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate recipe id %q", r.ID)
		}
		if strings.HasPrefix(r.ID, userIDPrefix) {
			return nil, fmt.Errorf("built-in recipe id %q uses the reserved %q prefix", r.ID, userIDPrefix)
		}
		seen[r.ID] = true
		if r.Image == "" {
			r.Image = ImageFor(r.DisplayType())
		}
		if r.Tags == nil {
			r.Tags = []string{}
		}
	}

	c := &Catalog{
		builtin: lib.Recipes,
		store:   s,
		now:     time.Now,
	}
	for _, id := range lib.Featured {
		if len(c.featured) == maxFeatured {
			break
		}
		if r, ok := c.findBuiltin(id); ok {
			c.featured = append(c.featured, r)
		}
	}
	return c, nil
}

// Builtin returns the bundled recipes in library order.
func (c *Catalog) Builtin() []model.Recipe {
	return append([]model.Recipe(nil), c.builtin...)
}

// Featured returns up to eight curated built-in recipes.
func (c *Catalog) Featured() []model.Recipe {
	return append([]model.Recipe(nil), c.featured...)
}

// Mine returns the user-authored recipes, newest first.
func (c *Catalog) Mine() []model.Recipe {
	var mine []model.Recipe
	c.store.Get(store.KeyMine, &mine)
	return mine
}

// All returns the built-ins followed by the user-authored recipes.
func (c *Catalog) All() []model.Recipe {
	mine := c.Mine()
	all := make([]model.Recipe, 0, len(c.builtin)+len(mine))
	all = append(all, c.builtin...)
	return append(all, mine...)
}

// Find looks a recipe up by id across the whole catalog.
func (c *Catalog) Find(id string) (model.Recipe, bool) {
	if r, ok := c.findBuiltin(id); ok {
		return r, true
	}
	for _, r := range c.Mine() {
		if r.ID == id {
			return r, true
		}
	}
	return model.Recipe{}, false
}

func (c *Catalog) findBuiltin(id string) (model.Recipe, bool) {
	for _, r := range c.builtin {
		if r.ID == id {
			return r, true
		}
	}
	return model.Recipe{}, false
}

// Create validates the input, builds a recipe and prepends it to the user
// list. Nothing is written when validation fails.
func (c *Catalog) Create(in CreateInput) (model.Recipe, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Recipe{}, &ValidationError{Field: "name", Message: "Name required"}
	}
	base := strings.TrimSpace(in.Base)

	ingredients := ParseIngredients(in.Ingredients)
	if len(ingredients) == 0 {
		spirit := base
		if spirit == "" {
			spirit = "Spirit"
		}
		ingredients = []model.Ingredient{{Name: spirit, Amount: model.Amount(2), Unit: "oz"}}
	}

	category := "Alcohol"
	if strings.Contains(strings.ToLower(base), "coffee") {
		category = "Coffee"
	}
	alcoholType := base
	if alcoholType == "" {
		alcoholType = "Drink"
	}
	instructions := strings.TrimSpace(in.Instructions)
	if instructions == "" {
		instructions = defaultInstructions
	}

	mine := c.Mine()
	r := model.Recipe{
		ID:           c.newID(mine),
		Name:         name,
		Category:     category,
		AlcoholType:  alcoholType,
		Image:        ImageFor(alcoholType),
		Ingredients:  ingredients,
		Instructions: instructions,
		Tags:         []string{createdTag},
	}

	c.store.Set(store.KeyMine, append([]model.Recipe{r}, mine...))
	return r, nil
}

func (c *Catalog) newID(mine []model.Recipe) string {
	id := fmt.Sprintf("%s%d", userIDPrefix, c.now().UnixMilli())
	for _, r := range mine {
		if r.ID == id {
			return id + "-" + uuid.NewString()[:8]
		}
	}
	return id
}

// ParseIngredients splits a free-text block on newlines and semicolons.
// Segments that start with a number become measured ingredients, anything
// else is kept as a name-only ingredient.
func ParseIngredients(block string) []model.Ingredient {
	segments := strings.FieldsFunc(block, func(r rune) bool {
		return r == '\n' || r == ';'
	})

	var out []model.Ingredient
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		out = append(out, parseIngredient(seg))
	}
	return out
}

func parseIngredient(seg string) model.Ingredient {
	m := ingredientPattern.FindStringSubmatch(seg)
	if m == nil {
		return model.Ingredient{Name: seg}
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.Ingredient{Name: seg}
	}
	return model.Ingredient{
		Name:   strings.TrimSpace(m[3]),
		Amount: &amount,
		Unit:   strings.ToLower(m[2]),
	}
}
