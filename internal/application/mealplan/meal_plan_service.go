package mealplan

import (
	"context"
	"strings"

	"github.com/fridgetofork/pantry-admin/internal/domain/catalog"
	"github.com/fridgetofork/pantry-admin/internal/domain/mealplan"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// MealPlanService lists, shows and deletes meal plans
type MealPlanService struct {
	repo mealplan.MealPlanRepository
}

// NewMealPlanService creates a new MealPlanService
func NewMealPlanService(repo mealplan.MealPlanRepository) *MealPlanService {
	return &MealPlanService{repo: repo}
}

// List returns one page of plans, the match count and the status counts
// over every plan
func (s *MealPlanService) List(ctx context.Context, filter ListFilter) (*ListResponse, int64, error) {
	query, err := filter.toQuery()
	if err != nil {
		return nil, 0, err
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	plans, err := s.repo.FindAll(ctx, query, page, shared.DefaultPageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, 0, err
	}

	items := make([]MealPlanResponse, len(plans))
	for i := range plans {
		items[i] = ToMealPlanResponse(&plans[i])
	}
	return &ListResponse{Items: items, Counts: counts}, total, nil
}

// GetByID returns a plan with its recipes in position order
func (s *MealPlanService) GetByID(ctx context.Context, id uuid.UUID) (*MealPlanDetailResponse, error) {
	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToMealPlanDetailResponse(plan)
	return &resp, nil
}

// Delete removes a plan and its recipe links
func (s *MealPlanService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "meal_plan", "delete", "meal_plan.id", id.String())
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	return nil
}

func (f ListFilter) toQuery() (mealplan.ListQuery, error) {
	q := mealplan.ListQuery{OwnerID: f.OwnerID}

	if v := strings.TrimSpace(f.Status); v != "" {
		st, err := mealplan.ParseStatus(v)
		if err != nil {
			return q, err
		}
		q.Status = st
	}
	if v := strings.TrimSpace(f.MealType); v != "" {
		mt := catalog.MealType(v)
		if !mt.IsValid() {
			return q, shared.NewDomainError("INVALID_MEAL_TYPE", "Meal type must be one of: breakfast, lunch, dinner")
		}
		q.MealType = mt
	}
	if v := strings.TrimSpace(f.DateFrom); v != "" {
		d, err := shared.ParseDate(v)
		if err != nil {
			return q, err
		}
		q.DateFrom = &d
	}
	if v := strings.TrimSpace(f.DateTo); v != "" {
		d, err := shared.ParseDate(v)
		if err != nil {
			return q, err
		}
		q.DateTo = &d
	}
	if q.DateFrom != nil && q.DateTo != nil && q.DateTo.Before(*q.DateFrom) {
		return q, shared.NewDomainError("INVALID_DATE_RANGE", "date_to must not be before date_from")
	}
	return q, nil
}
