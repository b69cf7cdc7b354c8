package handler

import (
	mealplanapp "github.com/fridgetofork/pantry-admin/internal/application/mealplan"
	"github.com/gin-gonic/gin"
)

// MealPlanHandler handles meal plan endpoints
type MealPlanHandler struct {
	BaseHandler
	mealPlanService *mealplanapp.MealPlanService
}

// NewMealPlanHandler creates a new MealPlanHandler
func NewMealPlanHandler(mealPlanService *mealplanapp.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanService: mealPlanService,
	}
}

// mealPlanQuery keeps dates as strings; the service parses them so bad
// dates surface as INVALID_DATE
type mealPlanQuery struct {
	OwnerID  string `form:"owner_id" binding:"omitempty,uuid"`
	UserID   string `form:"user_id" binding:"omitempty,uuid"`
	Status   string `form:"status"`
	MealType string `form:"meal_type"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
}

// List godoc
// @ID           listMealPlans
// @Summary      List meal plans, latest date first
// @Tags         meal-plans
// @Produce      json
// @Param        owner_id  query string false "Owner profile ID (alias user_id)" format(uuid)
// @Param        status    query string false "planned, done or skipped"
// @Param        meal_type query string false "breakfast, lunch or dinner"
// @Param        date_from query string false "First planned date, YYYY-MM-DD"
// @Param        date_to   query string false "Last planned date, YYYY-MM-DD"
// @Param        page      query int    false "Page number" default(1)
// @Success      200 {object} APIResponse[mealplanapp.ListResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /meal-plans [get]
func (h *MealPlanHandler) List(c *gin.Context) {
	var q mealPlanQuery
	if !h.BindQuery(c, &q) {
		return
	}

	page := pageOf(q.Page)
	resp, total, err := h.mealPlanService.List(c.Request.Context(), mealplanapp.ListFilter{
		OwnerID:  ownerParam(q.OwnerID, q.UserID),
		Status:   q.Status,
		MealType: q.MealType,
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
		Page:     page,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resp, total, page)
}

// GetByID godoc
// @ID           getMealPlan
// @Summary      Get a meal plan with its recipes
// @Tags         meal-plans
// @Produce      json
// @Param        id path string true "Meal plan ID" format(uuid)
// @Success      200 {object} APIResponse[mealplanapp.MealPlanDetailResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /meal-plans/{id} [get]
func (h *MealPlanHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	plan, err := h.mealPlanService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}

// Delete godoc
// @ID           deleteMealPlan
// @Summary      Delete a meal plan
// @Tags         meal-plans
// @Param        id path string true "Meal plan ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /meal-plans/{id} [delete]
func (h *MealPlanHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.mealPlanService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
