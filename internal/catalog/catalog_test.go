package catalog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pageza/mixmaster/backend/internal/model"
	"github.com/pageza/mixmaster/backend/internal/store"
	"github.com/pageza/mixmaster/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (*Catalog, *store.Mirror) {
	t.Helper()
	s, _ := testhelpers.NewMemoryStore(t)
	c, err := New(s)
	require.NoError(t, err)
	return c, s
}

func TestEmbeddedLibrary(t *testing.T) {
	c, _ := newCatalog(t)

	builtin := c.Builtin()
	require.Len(t, builtin, 69)
	assert.Equal(t, "feat-mojo-vegas", builtin[0].ID)
	assert.Equal(t, "vod-005", builtin[len(builtin)-1].ID)

	ids := make(map[string]bool)
	for _, r := range builtin {
		assert.False(t, ids[r.ID], "duplicate id %s", r.ID)
		ids[r.ID] = true
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Image, "recipe %s has no image", r.ID)
		assert.NotEmpty(t, r.Ingredients, "recipe %s has no ingredients", r.ID)
	}

	featured := c.Featured()
	require.Len(t, featured, 4)
	assert.Equal(t, []string{"feat-mojo-vegas", "feat-lashell-mojo", "feat-wannies-blast", "feat-dawandia-dream"},
		recipeIDs(featured))
}

func TestLoadRejectsBadLibraries(t *testing.T) {
	s, _ := testhelpers.NewMemoryStore(t)

	_, err := Load([]byte("recipes: [{id: a, name: A}, {id: a, name: B}]"), s)
	assert.ErrorContains(t, err, "duplicate")

	_, err = Load([]byte("recipes: [{id: mine-1, name: A}]"), s)
	assert.ErrorContains(t, err, "reserved")

	_, err = Load([]byte("recipes: [{name: A}]"), s)
	assert.ErrorContains(t, err, "no id")

	_, err = Load([]byte("recipes: {"), s)
	assert.Error(t, err)
}

func TestCreate(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		c, _ := newCatalog(t)
		_, err := c.Create(CreateInput{Name: "   ", Base: "Gin"})

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "name", verr.Field)
		assert.Empty(t, c.Mine())
		assert.Len(t, c.All(), 69)
	})

	t.Run("parses ingredients", func(t *testing.T) {
		c, _ := newCatalog(t)
		c.now = func() time.Time { return time.UnixMilli(1700000000000) }

		r, err := c.Create(CreateInput{
			Name:         "  Garden Fizz ",
			Base:         "Gin",
			Ingredients:  "2 oz Gin\n1 OZ Lemon; 3 dashes Bitters\n\nsoda to top",
			Instructions: "Shake and top with soda.",
		})
		require.NoError(t, err)

		assert.Equal(t, "mine-1700000000000", r.ID)
		assert.Equal(t, "Garden Fizz", r.Name)
		assert.Equal(t, "Alcohol", r.Category)
		assert.Equal(t, "Gin", r.AlcoholType)
		assert.Equal(t, ImageFor("Gin"), r.Image)
		assert.Equal(t, "Shake and top with soda.", r.Instructions)
		assert.Equal(t, []string{"created"}, r.Tags)
		assert.Nil(t, r.Calories)
		assert.Equal(t, []model.Ingredient{
			{Name: "Gin", Amount: model.Amount(2), Unit: "oz"},
			{Name: "Lemon", Amount: model.Amount(1), Unit: "oz"},
			{Name: "Bitters", Amount: model.Amount(3), Unit: "dashes"},
			{Name: "soda to top"},
		}, r.Ingredients)
	})

	t.Run("defaults", func(t *testing.T) {
		c, _ := newCatalog(t)
		r, err := c.Create(CreateInput{Name: "Morning", Base: "Iced Coffee"})
		require.NoError(t, err)

		assert.Equal(t, "Coffee", r.Category)
		assert.Equal(t, "Iced Coffee", r.AlcoholType)
		assert.Equal(t, "Build over ice and serve.", r.Instructions)
		assert.Equal(t, []model.Ingredient{{Name: "Iced Coffee", Amount: model.Amount(2), Unit: "oz"}}, r.Ingredients)

		r, err = c.Create(CreateInput{Name: "Mystery"})
		require.NoError(t, err)
		assert.Equal(t, "Drink", r.AlcoholType)
		assert.Equal(t, "Alcohol", r.Category)
		assert.Equal(t, []model.Ingredient{{Name: "Spirit", Amount: model.Amount(2), Unit: "oz"}}, r.Ingredients)
	})

	t.Run("newest first after built-ins", func(t *testing.T) {
		c, s := newCatalog(t)
		tick := int64(1000)
		c.now = func() time.Time { tick++; return time.UnixMilli(tick) }

		first, err := c.Create(CreateInput{Name: "First"})
		require.NoError(t, err)
		second, err := c.Create(CreateInput{Name: "Second"})
		require.NoError(t, err)

		all := c.All()
		require.Len(t, all, 71)
		assert.Equal(t, second.ID, all[69].ID)
		assert.Equal(t, first.ID, all[70].ID)

		var stored []model.Recipe
		require.True(t, s.Get(store.KeyMine, &stored))
		assert.Equal(t, []string{second.ID, first.ID}, recipeIDs(stored))

		found, ok := c.Find(first.ID)
		require.True(t, ok)
		assert.Equal(t, "First", found.Name)
	})

	t.Run("same millisecond ids stay unique", func(t *testing.T) {
		c, _ := newCatalog(t)
		c.now = func() time.Time { return time.UnixMilli(42) }

		a, err := c.Create(CreateInput{Name: "A"})
		require.NoError(t, err)
		b, err := c.Create(CreateInput{Name: "B"})
		require.NoError(t, err)

		assert.Equal(t, "mine-42", a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.True(t, strings.HasPrefix(b.ID, "mine-42-"))
	})
}

func TestParseIngredients(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []model.Ingredient
	}{
		{"empty", "  \n ; ", nil},
		{"no unit", "2 Limes", []model.Ingredient{{Name: "Limes", Amount: model.Amount(2)}}},
		{"decimal", "0.5 oz Simple Syrup", []model.Ingredient{{Name: "Simple Syrup", Amount: model.Amount(0.5), Unit: "oz"}}},
		{"plural unit", "1.5 cups Ice", []model.Ingredient{{Name: "Ice", Amount: model.Amount(1.5), Unit: "cups"}}},
		{"singular unit", "1 cup Ice", []model.Ingredient{{Name: "Ice", Amount: model.Amount(1), Unit: "cup"}}},
		{"unit case", "15 ML Cream", []model.Ingredient{{Name: "Cream", Amount: model.Amount(15), Unit: "ml"}}},
		{"no space", "2oz Rum", []model.Ingredient{{Name: "Rum", Amount: model.Amount(2), Unit: "oz"}}},
		{"unit prefix of name", "2 ozark honey", []model.Ingredient{{Name: "ozark honey", Amount: model.Amount(2)}}},
		{"text only", "Mint leaves", []model.Ingredient{{Name: "Mint leaves"}}},
		{"bad number", "1.2.3 oz Vodka", []model.Ingredient{{Name: "1.2.3 oz Vodka"}}},
		{"mixed separators", "1 tsp Sugar;2 tbsp Lime\r\nSalt", []model.Ingredient{
			{Name: "Sugar", Amount: model.Amount(1), Unit: "tsp"},
			{Name: "Lime", Amount: model.Amount(2), Unit: "tbsp"},
			{Name: "Salt"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIngredients(tt.input))
		})
	}
}

func TestTheme(t *testing.T) {
	assert.Equal(t, images["whiskey"], ImageFor("Rye"))
	assert.Equal(t, images["coffee"], ImageFor("Espresso"))
	assert.Equal(t, images["default"], ImageFor("Cognac"))
	assert.Equal(t, images["gin"], ImageFor("Ginger Ale"))

	assert.Equal(t, Gradient{"#c084fc", "#fb923c"}, GradientFor("Cognac"))
	assert.Equal(t, Gradient{"#f97316", "#eab308"}, GradientFor("bourbon"))
	assert.Equal(t, Gradient{"#475569", "#334155"}, GradientFor(""))

	assert.Equal(t, "All", Categories[0])
	assert.Len(t, Categories, 13)
}

func recipeIDs(rs []model.Recipe) []string {
	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}
