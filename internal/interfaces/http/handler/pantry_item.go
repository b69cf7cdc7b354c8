package handler

import (
	pantryapp "github.com/fridgetofork/pantry-admin/internal/application/pantry"
	"github.com/gin-gonic/gin"
)

// PantryItemHandler handles pantry inventory endpoints
type PantryItemHandler struct {
	BaseHandler
	pantryService *pantryapp.PantryService
}

// NewPantryItemHandler creates a new PantryItemHandler
func NewPantryItemHandler(pantryService *pantryapp.PantryService) *PantryItemHandler {
	return &PantryItemHandler{
		pantryService: pantryService,
	}
}

type pantryQuery struct {
	Status  string `form:"status"`
	Search  string `form:"search" binding:"max=255"`
	OwnerID string `form:"owner_id" binding:"omitempty,uuid"`
	UserID  string `form:"user_id" binding:"omitempty,uuid"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
}

type ownerQuery struct {
	OwnerID string `form:"owner_id" binding:"omitempty,uuid"`
	UserID  string `form:"user_id" binding:"omitempty,uuid"`
}

// List godoc
// @ID           listPantryItems
// @Summary      List pantry items with their expiry status
// @Description  Stats in the response cover the owner scope and ignore status and search.
// @Tags         pantry-items
// @Produce      json
// @Param        status   query string false "expired, expiring_soon or safe"
// @Param        owner_id query string false "Owner profile ID (alias user_id)" format(uuid)
// @Param        search   query string false "Substring of the ingredient name"
// @Param        page     query int    false "Page number" default(1)
// @Success      200 {object} APIResponse[pantryapp.ListResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /pantry-items [get]
func (h *PantryItemHandler) List(c *gin.Context) {
	var q pantryQuery
	if !h.BindQuery(c, &q) {
		return
	}

	page := pageOf(q.Page)
	resp, total, err := h.pantryService.List(c.Request.Context(), pantryapp.ListFilter{
		Status:  q.Status,
		OwnerID: ownerParam(q.OwnerID, q.UserID),
		Search:  q.Search,
		Page:    page,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resp, total, page)
}

// Stats godoc
// @ID           getPantryStats
// @Summary      Total, expired and expiring-soon counters
// @Tags         pantry-items
// @Produce      json
// @Param        owner_id query string false "Owner profile ID (alias user_id)" format(uuid)
// @Success      200 {object} APIResponse[pantry.Stats]
// @Failure      400 {object} ErrorResponse
// @Router       /pantry-items/stats [get]
func (h *PantryItemHandler) Stats(c *gin.Context) {
	var q ownerQuery
	if !h.BindQuery(c, &q) {
		return
	}

	stats, err := h.pantryService.Stats(c.Request.Context(), ownerParam(q.OwnerID, q.UserID))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// GetByID godoc
// @ID           getPantryItem
// @Summary      Get a pantry item
// @Tags         pantry-items
// @Produce      json
// @Param        id path string true "Pantry item ID" format(uuid)
// @Success      200 {object} APIResponse[pantryapp.ItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /pantry-items/{id} [get]
func (h *PantryItemHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.pantryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete godoc
// @ID           deletePantryItem
// @Summary      Soft-delete a pantry item
// @Tags         pantry-items
// @Param        id path string true "Pantry item ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /pantry-items/{id} [delete]
func (h *PantryItemHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.pantryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
