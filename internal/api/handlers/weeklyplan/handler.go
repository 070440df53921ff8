package weeklyplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/ndayishimiyefidel/recipe-backend/internal/api/respond"
	"github.com/ndayishimiyefidel/recipe-backend/internal/middlewares"
	"github.com/ndayishimiyefidel/recipe-backend/internal/model"
	reciperepo "github.com/ndayishimiyefidel/recipe-backend/internal/repository/recipe"
	planrepo "github.com/ndayishimiyefidel/recipe-backend/internal/repository/weeklyplan"
	notifsvc "github.com/ndayishimiyefidel/recipe-backend/internal/service/notification"
)

// plannerService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/weeklyplan/mock.go -package=mocks
type plannerService interface {
	UpsertSlot(context.Context, model.WeeklyPlanEntry) (model.WeeklyPlanEntry, error)
	WeekPlan(context.Context, uuid.UUID, time.Time) ([]model.WeeklyPlanEntry, error)
	RemoveSlot(ctx context.Context, userID uuid.UUID, day, mealType string, weekStart time.Time) error
}

// Handler handles HTTP requests for the weekly meal plan and its reminders.
type Handler struct {
	service   plannerService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s plannerService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// UpsertRequest represents the JSON body of a plan slot edit.
type UpsertRequest struct {
	Day             string   `json:"day" validate:"required"`
	MealType        string   `json:"meal_type" validate:"required"`
	RecipeID        string   `json:"recipe_id" validate:"required,uuid"`
	WeekStart       string   `json:"week_start" validate:"required"`
	ReminderEnabled bool     `json:"reminder_enabled"`
	ReminderTime    string   `json:"reminder_time"`
	ReminderDays    []string `json:"reminder_days"`
	PushToken       string   `json:"push_token"`
}

// Upsert handles POST /api/weekly-plan. Editing an occupied slot overwrites
// it; enabling a reminder registers a notification for the next occurrence.
func (h *Handler) Upsert(c *ginext.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing user id"))
		return
	}

	var req UpsertRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	weekStart, err := parseWeekStart(req.WeekStart)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid recipe_id"))
		return
	}

	entry := model.WeeklyPlanEntry{
		UserID:          userID,
		Day:             req.Day,
		MealType:        req.MealType,
		RecipeID:        recipeID,
		WeekStart:       weekStart,
		ReminderEnabled: req.ReminderEnabled,
		ReminderTime:    req.ReminderTime,
		ReminderDays:    req.ReminderDays,
		PushToken:       req.PushToken,
	}

	saved, err := h.service.UpsertSlot(c.Request.Context(), entry)
	if err != nil {
		switch {
		case errors.Is(err, notifsvc.ErrValidation):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		case errors.Is(err, reciperepo.ErrRecipeNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("recipe not found"))
		default:
			zlog.Logger.Error().Err(err).Msg("failed to upsert plan slot")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, saved)
}

// Get handles GET /api/weekly-plan?week_start=.
func (h *Handler) Get(c *ginext.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing user id"))
		return
	}

	weekStart, err := parseWeekStart(c.Query("week_start"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	entries, err := h.service.WeekPlan(c.Request.Context(), userID, weekStart)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get weekly plan")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, formatPlan(entries))
}

// Delete handles DELETE /api/weekly-plan?day=&meal_type=&week_start=.
func (h *Handler) Delete(c *ginext.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing user id"))
		return
	}

	day := c.Query("day")
	mealType := c.Query("meal_type")
	if day == "" || mealType == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("day and meal_type are required"))
		return
	}

	weekStart, err := parseWeekStart(c.Query("week_start"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.RemoveSlot(c.Request.Context(), userID, day, mealType, weekStart); err != nil {
		if errors.Is(err, planrepo.ErrPlanEntryNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("plan entry not found"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to remove plan slot")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "plan entry removed")
}

// parseWeekStart accepts a date ("2006-01-02") or RFC3339 timestamp and
// normalizes it to midnight.
func parseWeekStart(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("week_start is required")
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid week_start format")
		}
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
}

// formatPlan groups entries by day then meal type, the shape the mobile
// client renders directly.
func formatPlan(entries []model.WeeklyPlanEntry) map[string]map[string]model.WeeklyPlanEntry {
	plan := make(map[string]map[string]model.WeeklyPlanEntry)
	for _, e := range entries {
		if plan[e.Day] == nil {
			plan[e.Day] = make(map[string]model.WeeklyPlanEntry)
		}
		plan[e.Day][e.MealType] = e
	}

	return plan
}
