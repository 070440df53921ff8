package planner

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/ndayishimiyefidel/recipe-backend/internal/mocks/service/planner"
	"github.com/ndayishimiyefidel/recipe-backend/internal/model"
	notifsvc "github.com/ndayishimiyefidel/recipe-backend/internal/service/notification"
)

func setupPlanner(t *testing.T) (*Service, *mocks.MockplanRepository, *mocks.MockrecipeRepository, *mocks.MockreminderStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	plans := mocks.NewMockplanRepository(ctrl)
	recipes := mocks.NewMockrecipeRepository(ctrl)
	reminders := mocks.NewMockreminderStore(ctrl)

	return NewService(plans, recipes, reminders), plans, recipes, reminders
}

func monday() time.Time {
	// 2024-03-04 is a Monday.
	return time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
}

func slotEntry() model.WeeklyPlanEntry {
	return model.WeeklyPlanEntry{
		UserID:          uuid.New(),
		Day:             "Wednesday",
		MealType:        "Dinner",
		RecipeID:        uuid.New(),
		WeekStart:       monday(),
		ReminderEnabled: true,
		ReminderTime:    "18:30",
		PushToken:       "ExponentPushToken[abc]",
	}
}

func TestService_UpsertSlot_RegistersReminder(t *testing.T) {
	svc, plans, recipes, reminders := setupPlanner(t)

	e := slotEntry()
	planID := uuid.New()
	notifID := uuid.New()
	recipe := model.Recipe{ID: e.RecipeID, Name: "Ratatouille", ImageURL: "https://img.example/rat.png"}

	// The slot's Wednesday 18:30 is in the future relative to the frozen clock.
	svc.now = func() time.Time { return monday().Add(12 * time.Hour) }

	plans.EXPECT().Upsert(gomock.Any(), e).Return(planID, nil)
	recipes.EXPECT().GetByID(gomock.Any(), e.RecipeID).Return(recipe, nil)
	reminders.EXPECT().
		UpsertPlanNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) (uuid.UUID, error) {
			assert.Equal(t, e.UserID, n.UserID)
			assert.Equal(t, "Time to cook Ratatouille!", n.Title)
			assert.Equal(t, "It's time to prepare your dinner recipe.", n.Body)
			assert.Equal(t, "Ratatouille", n.RecipeName)
			assert.Equal(t, recipe.ImageURL, n.RecipeImage)
			assert.Equal(t, "Dinner", n.MealType)
			assert.Equal(t, "Wednesday", n.PlanDay)
			require.NotNil(t, n.WeekStart)
			assert.Equal(t, e.WeekStart, *n.WeekStart)
			assert.Equal(t, time.Date(2024, 3, 6, 18, 30, 0, 0, time.UTC), n.ScheduledTime)
			assert.Equal(t, e.PushToken, n.PushToken)
			return notifID, nil
		})

	saved, err := svc.UpsertSlot(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, planID, saved.ID)
}

func TestService_UpsertSlot_NoReminderWhenDisabled(t *testing.T) {
	svc, plans, _, _ := setupPlanner(t)

	e := slotEntry()
	e.ReminderEnabled = false

	plans.EXPECT().Upsert(gomock.Any(), e).Return(uuid.New(), nil)
	// No recipe lookup, no reminder registration.

	_, err := svc.UpsertSlot(context.Background(), e)
	assert.NoError(t, err)
}

func TestService_UpsertSlot_NoReminderWithoutToken(t *testing.T) {
	svc, plans, _, _ := setupPlanner(t)

	e := slotEntry()
	e.PushToken = ""

	plans.EXPECT().Upsert(gomock.Any(), e).Return(uuid.New(), nil)

	_, err := svc.UpsertSlot(context.Background(), e)
	assert.NoError(t, err)
}

func TestService_UpsertSlot_PastOccurrenceNotRegistered(t *testing.T) {
	svc, plans, _, _ := setupPlanner(t)

	e := slotEntry()

	// Clock already past Wednesday 18:30 of that week.
	svc.now = func() time.Time { return monday().AddDate(0, 0, 5) }

	plans.EXPECT().Upsert(gomock.Any(), e).Return(uuid.New(), nil)

	_, err := svc.UpsertSlot(context.Background(), e)
	assert.NoError(t, err)
}

func TestService_UpsertSlot_InvalidReminderTime(t *testing.T) {
	svc, plans, _, _ := setupPlanner(t)

	e := slotEntry()
	e.ReminderTime = "half past six"

	plans.EXPECT().Upsert(gomock.Any(), e).Return(uuid.New(), nil)

	_, err := svc.UpsertSlot(context.Background(), e)
	assert.ErrorIs(t, err, notifsvc.ErrValidation)
}

func TestService_UpsertSlot_MissingFields(t *testing.T) {
	svc, _, _, _ := setupPlanner(t)

	e := slotEntry()
	e.Day = ""

	_, err := svc.UpsertSlot(context.Background(), e)
	assert.ErrorIs(t, err, notifsvc.ErrValidation)
}

func TestService_UpsertSlot_SecondRegistrationOverwrites(t *testing.T) {
	svc, plans, recipes, reminders := setupPlanner(t)

	e := slotEntry()
	notifID := uuid.New()
	recipe := model.Recipe{ID: e.RecipeID, Name: "Ratatouille"}

	svc.now = func() time.Time { return monday() }

	plans.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(2)
	recipes.EXPECT().GetByID(gomock.Any(), e.RecipeID).Return(recipe, nil).Times(2)

	// The store keys the registration on (user, day, meal type, week start):
	// both calls resolve to the same notification id.
	reminders.EXPECT().
		UpsertPlanNotification(gomock.Any(), gomock.Any()).
		Return(notifID, nil).
		Times(2)

	_, err := svc.UpsertSlot(context.Background(), e)
	require.NoError(t, err)

	e.ReminderTime = "19:00"
	_, err = svc.UpsertSlot(context.Background(), e)
	require.NoError(t, err)
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name      string
		day       string
		timeOfDay string
		want      time.Time
		wantErr   bool
	}{
		{"same day as week start", "Monday", "08:00", time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), false},
		{"mid week", "wednesday", "18:30", time.Date(2024, 3, 6, 18, 30, 0, 0, time.UTC), false},
		{"sunday wraps to end of week", "Sunday", "12:00", time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), false},
		{"unknown day", "Someday", "12:00", time.Time{}, true},
		{"bad time", "Monday", "25:99", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(monday(), tt.day, tt.timeOfDay)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
