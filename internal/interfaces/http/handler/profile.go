package handler

import (
	profileapp "github.com/fridgetofork/pantry-admin/internal/application/profile"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	BaseHandler
	profileService *profileapp.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *profileapp.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

type profileQuery struct {
	Search string `form:"search" binding:"max=255"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
}

// List godoc
// @ID           listProfiles
// @Summary      List profiles with their pantry item counts
// @Tags         profiles
// @Produce      json
// @Param        search query string false "Substring of the name"
// @Param        page   query int    false "Page number" default(1)
// @Success      200 {object} APIResponse[[]profileapp.ProfileResponse]
// @Router       /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	var q profileQuery
	if !h.BindQuery(c, &q) {
		return
	}

	page := pageOf(q.Page)
	profiles, total, err := h.profileService.List(c.Request.Context(), profileapp.ListFilter{
		Search: q.Search,
		Page:   page,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, profiles, total, page)
}

// GetByID godoc
// @ID           getProfile
// @Summary      Get a profile with its pantry and pantry stats
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Profile ID" format(uuid)
// @Success      200 {object} APIResponse[profileapp.ProfileDetailResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /profiles/{id} [get]
func (h *ProfileHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.profileService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}

// RecipeMatches godoc
// @ID           listProfileRecipeMatches
// @Summary      Recipes ranked by how much of them the profile's pantry covers
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Profile ID" format(uuid)
// @Success      200 {object} APIResponse[[]profileapp.RecipeMatchResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /profiles/{id}/recipe-matches [get]
func (h *ProfileHandler) RecipeMatches(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	matches, err := h.profileService.RecipeMatches(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, matches)
}
