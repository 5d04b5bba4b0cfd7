package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pageza/mixmaster/backend/internal/catalog"
	"github.com/pageza/mixmaster/backend/internal/ledger"
	"github.com/pageza/mixmaster/backend/internal/middleware"
	"github.com/pageza/mixmaster/backend/internal/service"
)

type RecipeHandler struct {
	mix         service.IMixService
	createGuard []gin.HandlerFunc
}

// NewRecipeHandler builds the recipe routes. createGuard runs before recipe
// creation only.
func NewRecipeHandler(mix service.IMixService, createGuard ...gin.HandlerFunc) *RecipeHandler {
	return &RecipeHandler{
		mix:         mix,
		createGuard: createGuard,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.ListCategories)
	router.GET("/home", h.GetHome)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/browse", h.BrowseRecipes)
		recipes.GET("/random", h.RandomRecipe)
		recipes.GET("/spotlight", h.GetSpotlight)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/share", h.ShareRecipe)
		recipes.POST("", append(h.createGuard, h.CreateRecipe)...)
		recipes.POST("/:id/favorite", h.ToggleFavorite)
		recipes.POST("/:id/ratings", h.RateRecipe)
		recipes.POST("/:id/comments", h.PostComment)
	}
}

func (h *RecipeHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.mix.Categories()})
}

func (h *RecipeHandler) GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, h.mix.Home(c.Query("q"), c.DefaultQuery("category", "All")))
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, recipeList(h.mix.Search(c.Query("q"), c.DefaultQuery("category", "All"))))
}

func (h *RecipeHandler) BrowseRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, recipeList(h.mix.Browse(c.Query("q"))))
}

func (h *RecipeHandler) RandomRecipe(c *gin.Context) {
	recipe, err := h.mix.Random()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) GetSpotlight(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, recipeList(h.mix.Spotlight(limit)))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	servings, ok := queryInt(c, "servings", 1)
	if !ok {
		return
	}
	detail, err := h.mix.Open(c.Param("id"), servings)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *RecipeHandler) ShareRecipe(c *gin.Context) {
	text, err := h.mix.ShareText(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.String(http.StatusOK, text)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req catalog.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: "invalid request body"})
		return
	}
	recipe, err := h.mix.CreateRecipe(req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	on, err := h.mix.ToggleFavorite(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, FavoriteResponse{RecipeID: id, Favorite: on})
}

func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: "invalid request body"})
		return
	}
	value, err := ledger.ParseRating(req.raw())
	if err != nil {
		_ = c.Error(err)
		return
	}
	summary, err := h.mix.SubmitRating(c.Param("id"), value)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *RecipeHandler) PostComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: "invalid request body"})
		return
	}
	id := c.Param("id")
	comments, err := h.mix.PostComment(id, req.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, CommentsResponse{RecipeID: id, Comments: comments})
}

// queryInt reads an optional integer query parameter, answering 400 itself
// when it is malformed.
func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: key + " must be an integer", Field: key})
		return 0, false
	}
	return n, true
}
