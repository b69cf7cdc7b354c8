package handler

import (
	catalogapp "github.com/fridgetofork/pantry-admin/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// RecipeHandler handles recipe-related API endpoints
type RecipeHandler struct {
	BaseHandler
	recipeService *catalogapp.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService *catalogapp.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

type recipeQuery struct {
	Search     string `form:"search" binding:"max=255"`
	MealType   string `form:"meal_type"`
	Difficulty string `form:"difficulty"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
}

// List godoc
// @ID           listRecipes
// @Summary      List recipes, newest first
// @Tags         recipes
// @Produce      json
// @Param        search     query string false "Substring of the title, case-insensitive"
// @Param        meal_type  query string false "breakfast, lunch or dinner"
// @Param        difficulty query string false "easy, medium or hard"
// @Param        page       query int    false "Page number" default(1)
// @Success      200 {object} APIResponse[[]catalogapp.RecipeListResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	var q recipeQuery
	if !h.BindQuery(c, &q) {
		return
	}

	page := pageOf(q.Page)
	recipes, total, err := h.recipeService.List(c.Request.Context(), catalogapp.RecipeListFilter{
		Search:     q.Search,
		MealType:   q.MealType,
		Difficulty: q.Difficulty,
		Page:       page,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, recipes, total, page)
}

// GetByID godoc
// @ID           getRecipe
// @Summary      Get a recipe with its ingredient lines
// @Tags         recipes
// @Produce      json
// @Param        id path string true "Recipe ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.RecipeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, recipe)
}

// Create godoc
// @ID           createRecipe
// @Summary      Create a recipe
// @Description  Lines with a blank ingredient or a non-positive quantity are dropped.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.RecipeRequest true "Recipe"
// @Success      201 {object} APIResponse[catalogapp.RecipeResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	var req catalogapp.RecipeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, recipe)
}

// Update godoc
// @ID           updateRecipe
// @Summary      Replace a recipe and its full line set
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id      path string                   true "Recipe ID" format(uuid)
// @Param        request body catalogapp.RecipeRequest true "Recipe"
// @Success      200 {object} APIResponse[catalogapp.RecipeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req catalogapp.RecipeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, recipe)
}

// Delete godoc
// @ID           deleteRecipe
// @Summary      Soft-delete a recipe
// @Tags         recipes
// @Param        id path string true "Recipe ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
