package handler

import (
	catalogapp "github.com/fridgetofork/pantry-admin/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// IngredientHandler handles ingredient-related API endpoints
type IngredientHandler struct {
	BaseHandler
	ingredientService *catalogapp.IngredientService
}

// NewIngredientHandler creates a new IngredientHandler
func NewIngredientHandler(ingredientService *catalogapp.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
	}
}

// ingredientQuery is the query string of GET /ingredients
type ingredientQuery struct {
	Search   string `form:"search" binding:"max=255"`
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
}

// List godoc
// @ID           listIngredients
// @Summary      List ingredients
// @Tags         ingredients
// @Produce      json
// @Param        search   query string false "Substring of the name, case-insensitive"
// @Param        category query string false "dairy, meat, vegetable, grain or other"
// @Param        page     query int    false "Page number" default(1)
// @Success      200 {object} APIResponse[[]catalogapp.IngredientResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /ingredients [get]
func (h *IngredientHandler) List(c *gin.Context) {
	var q ingredientQuery
	if !h.BindQuery(c, &q) {
		return
	}

	page := pageOf(q.Page)
	items, total, err := h.ingredientService.List(c.Request.Context(), catalogapp.IngredientListFilter{
		Search:   q.Search,
		Category: q.Category,
		Page:     page,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, page)
}

// Options godoc
// @ID           listIngredientOptions
// @Summary      Ingredient picker entries ordered by name
// @Tags         ingredients
// @Produce      json
// @Success      200 {object} APIResponse[[]catalog.IngredientOption]
// @Router       /ingredients/options [get]
func (h *IngredientHandler) Options(c *gin.Context) {
	options, err := h.ingredientService.Options(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, options)
}

// GetByID godoc
// @ID           getIngredient
// @Summary      Get an ingredient
// @Tags         ingredients
// @Produce      json
// @Param        id path string true "Ingredient ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.IngredientResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /ingredients/{id} [get]
func (h *IngredientHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	ingredient, err := h.ingredientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ingredient)
}

// Create godoc
// @ID           createIngredient
// @Summary      Create an ingredient
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.IngredientRequest true "Ingredient"
// @Success      201 {object} APIResponse[catalogapp.IngredientResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /ingredients [post]
func (h *IngredientHandler) Create(c *gin.Context) {
	var req catalogapp.IngredientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ingredient, err := h.ingredientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ingredient)
}

// Update godoc
// @ID           updateIngredient
// @Summary      Replace an ingredient's fields
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Ingredient ID" format(uuid)
// @Param        request body catalogapp.IngredientRequest true "Ingredient"
// @Success      200 {object} APIResponse[catalogapp.IngredientResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /ingredients/{id} [put]
func (h *IngredientHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req catalogapp.IngredientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ingredient, err := h.ingredientService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ingredient)
}

// Delete godoc
// @ID           deleteIngredient
// @Summary      Soft-delete an ingredient
// @Tags         ingredients
// @Param        id path string true "Ingredient ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.ingredientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
