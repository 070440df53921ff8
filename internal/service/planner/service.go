package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/ndayishimiyefidel/recipe-backend/internal/model"
	notifsvc "github.com/ndayishimiyefidel/recipe-backend/internal/service/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/planner/mock.go -package=mocks

type planRepository interface {
	Upsert(context.Context, model.WeeklyPlanEntry) (uuid.UUID, error)
	GetByUserWeek(context.Context, uuid.UUID, time.Time) ([]model.WeeklyPlanEntry, error)
	Delete(ctx context.Context, userID uuid.UUID, day, mealType string, weekStart time.Time) error
}

type recipeRepository interface {
	GetByID(context.Context, uuid.UUID) (model.Recipe, error)
}

type reminderStore interface {
	UpsertPlanNotification(context.Context, model.Notification) (uuid.UUID, error)
}

// Service is the recurrence planner. Each plan edit that enables a reminder
// registers exactly one notification for the slot's next occurrence; there is
// no automatic chaining to later weeks, so every week's reminder has to be
// re-registered.
type Service struct {
	plans     planRepository
	recipes   recipeRepository
	reminders reminderStore
	now       func() time.Time
}

func NewService(plans planRepository, recipes recipeRepository, reminders reminderStore) *Service {
	return &Service{
		plans:     plans,
		recipes:   recipes,
		reminders: reminders,
		now:       time.Now,
	}
}

// UpsertSlot creates or overwrites a plan slot. When the reminder settings
// resolve to a future occurrence and the entry carries a push token, one
// notification is registered for the (user, day, meal type, week start)
// tuple, overwriting any previous registration for it.
func (s *Service) UpsertSlot(ctx context.Context, e model.WeeklyPlanEntry) (model.WeeklyPlanEntry, error) {
	e.Day = strings.TrimSpace(e.Day)
	if e.UserID == uuid.Nil || e.Day == "" || e.MealType == "" || e.RecipeID == uuid.Nil || e.WeekStart.IsZero() {
		return model.WeeklyPlanEntry{}, fmt.Errorf("%w: user, day, meal type, recipe and week start are required", notifsvc.ErrValidation)
	}

	id, err := s.plans.Upsert(ctx, e)
	if err != nil {
		return model.WeeklyPlanEntry{}, fmt.Errorf("upsert plan slot: %w", err)
	}
	e.ID = id

	if !e.ReminderEnabled || e.ReminderTime == "" || e.PushToken == "" {
		return e, nil
	}

	occurrence, err := NextOccurrence(e.WeekStart, e.Day, e.ReminderTime)
	if err != nil {
		return model.WeeklyPlanEntry{}, fmt.Errorf("%w: %v", notifsvc.ErrValidation, err)
	}

	if !occurrence.After(s.now()) {
		zlog.Logger.Info().
			Str("user_id", e.UserID.String()).
			Str("day", e.Day).
			Str("meal_type", e.MealType).
			Time("occurrence", occurrence).
			Msg("reminder occurrence already passed, not registering")
		return e, nil
	}

	recipe, err := s.recipes.GetByID(ctx, e.RecipeID)
	if err != nil {
		return model.WeeklyPlanEntry{}, fmt.Errorf("snapshot recipe: %w", err)
	}

	weekStart := e.WeekStart
	recipeID := recipe.ID
	reminder := model.Notification{
		UserID:        e.UserID,
		Title:         fmt.Sprintf("Time to cook %s!", recipe.Name),
		Body:          fmt.Sprintf("It's time to prepare your %s recipe.", strings.ToLower(e.MealType)),
		RecipeID:      &recipeID,
		RecipeName:    recipe.Name,
		RecipeImage:   recipe.ImageURL,
		MealType:      e.MealType,
		ScheduledTime: occurrence,
		Status:        model.StatusPending,
		PushToken:     e.PushToken,
		PlanDay:       e.Day,
		WeekStart:     &weekStart,
	}

	notifID, err := s.reminders.UpsertPlanNotification(ctx, reminder)
	if err != nil {
		return model.WeeklyPlanEntry{}, fmt.Errorf("register reminder: %w", err)
	}

	zlog.Logger.Info().
		Str("notification_id", notifID.String()).
		Str("user_id", e.UserID.String()).
		Time("scheduled_time", occurrence).
		Msg("reminder registered for plan slot")

	return e, nil
}

// WeekPlan returns the user's plan entries for the week starting at weekStart.
func (s *Service) WeekPlan(ctx context.Context, userID uuid.UUID, weekStart time.Time) ([]model.WeeklyPlanEntry, error) {
	entries, err := s.plans.GetByUserWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("get weekly plan: %w", err)
	}

	return entries, nil
}

// RemoveSlot deletes a plan slot. Any notification already registered for it
// stays in the store until the owner deletes it.
func (s *Service) RemoveSlot(ctx context.Context, userID uuid.UUID, day, mealType string, weekStart time.Time) error {
	if err := s.plans.Delete(ctx, userID, day, mealType, weekStart); err != nil {
		return fmt.Errorf("remove plan slot: %w", err)
	}

	return nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// NextOccurrence resolves a plan slot's day name and "15:04" time of day
// against the week starting at weekStart to an absolute trigger point.
func NextOccurrence(weekStart time.Time, day, timeOfDay string) (time.Time, error) {
	target, ok := weekdays[strings.ToLower(day)]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown day %q", day)
	}

	tod, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder time %q", timeOfDay)
	}

	offset := (int(target) - int(weekStart.Weekday()) + 7) % 7
	date := weekStart.AddDate(0, 0, offset)

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0,
		weekStart.Location(),
	), nil
}
