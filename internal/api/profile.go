package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/mixmaster/backend/internal/middleware"
	"github.com/pageza/mixmaster/backend/internal/service"
)

type ProfileHandler struct {
	mix service.IMixService
}

func NewProfileHandler(mix service.IMixService) *ProfileHandler {
	return &ProfileHandler{
		mix: mix,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.GetProfile)
	router.POST("/onboarding", h.Onboard)
	router.GET("/library", h.GetLibrary)
	router.GET("/searches", h.ListSearches)
	router.POST("/searches", h.RecordSearch)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, ProfileResponse{Onboarded: h.mix.Onboarded(), Profile: h.mix.Profile()})
}

func (h *ProfileHandler) Onboard(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: "invalid request body"})
		return
	}
	profile := h.mix.Onboard(req.Name, req.DOB)
	c.JSON(http.StatusOK, ProfileResponse{Onboarded: true, Profile: profile})
}

func (h *ProfileHandler) GetLibrary(c *gin.Context) {
	c.JSON(http.StatusOK, h.mix.Library())
}

func (h *ProfileHandler) ListSearches(c *gin.Context) {
	c.JSON(http.StatusOK, SearchesResponse{Searches: h.mix.RecentSearches()})
}

func (h *ProfileHandler) RecordSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, SearchesResponse{Searches: h.mix.RecordSearch(req.Query)})
}
