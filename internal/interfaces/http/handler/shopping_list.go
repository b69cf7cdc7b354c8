package handler

import (
	shoppingapp "github.com/fridgetofork/pantry-admin/internal/application/shopping"
	"github.com/gin-gonic/gin"
)

// ShoppingListHandler handles weekly shopping list endpoints
type ShoppingListHandler struct {
	BaseHandler
	shoppingListService *shoppingapp.ShoppingListService
}

// NewShoppingListHandler creates a new ShoppingListHandler
func NewShoppingListHandler(shoppingListService *shoppingapp.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{
		shoppingListService: shoppingListService,
	}
}

type shoppingListQuery struct {
	OwnerID string `form:"owner_id" binding:"omitempty,uuid"`
	UserID  string `form:"user_id" binding:"omitempty,uuid"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
}

// List godoc
// @ID           listShoppingLists
// @Summary      List shopping lists, latest week first
// @Tags         shopping-lists
// @Produce      json
// @Param        owner_id query string false "Owner profile ID (alias user_id)" format(uuid)
// @Param        page     query int    false "Page number" default(1)
// @Success      200 {object} APIResponse[[]shoppingapp.ShoppingListResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /shopping-lists [get]
func (h *ShoppingListHandler) List(c *gin.Context) {
	var q shoppingListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	page := pageOf(q.Page)
	lists, total, err := h.shoppingListService.List(c.Request.Context(), shoppingapp.ListFilter{
		OwnerID: ownerParam(q.OwnerID, q.UserID),
		Page:    page,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, lists, total, page)
}

// GetByID godoc
// @ID           getShoppingList
// @Summary      Get a shopping list with its items
// @Tags         shopping-lists
// @Produce      json
// @Param        id path string true "Shopping list ID" format(uuid)
// @Success      200 {object} APIResponse[shoppingapp.ShoppingListDetailResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /shopping-lists/{id} [get]
func (h *ShoppingListHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	list, err := h.shoppingListService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// Delete godoc
// @ID           deleteShoppingList
// @Summary      Delete a shopping list
// @Tags         shopping-lists
// @Param        id path string true "Shopping list ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /shopping-lists/{id} [delete]
func (h *ShoppingListHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.shoppingListService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
