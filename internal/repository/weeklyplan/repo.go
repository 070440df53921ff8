package weeklyplan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/ndayishimiyefidel/recipe-backend/internal/model"
)

var ErrPlanEntryNotFound = errors.New("weekly plan entry not found")

// Repository provides access to the weekly_plans table. A slot is unique per
// (user, day, meal type, week start); editing an occupied slot overwrites it.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new weekly plan repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Upsert creates or overwrites the plan entry for the slot and returns its ID.
func (r *Repository) Upsert(ctx context.Context, e model.WeeklyPlanEntry) (uuid.UUID, error) {
	query := `
		INSERT INTO weekly_plans (
		    user_id, day, meal_type, recipe_id, week_start,
		    reminder_enabled, reminder_time, reminder_days, push_token
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, day, meal_type, week_start) DO UPDATE
		SET recipe_id = EXCLUDED.recipe_id,
		    reminder_enabled = EXCLUDED.reminder_enabled,
		    reminder_time = EXCLUDED.reminder_time,
		    reminder_days = EXCLUDED.reminder_days,
		    push_token = EXCLUDED.push_token,
		    updated_at = now()
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(
		ctx, query,
		e.UserID, e.Day, e.MealType, e.RecipeID, e.WeekStart,
		e.ReminderEnabled, e.ReminderTime, strings.Join(e.ReminderDays, ","), e.PushToken,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert weekly plan entry: %w", err)
	}

	return id, nil
}

// GetByUserWeek retrieves all plan entries for a user's week ordered by day
// and meal type.
func (r *Repository) GetByUserWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) ([]model.WeeklyPlanEntry, error) {
	query := `
		SELECT id, user_id, day, meal_type, recipe_id, week_start,
		       reminder_enabled, reminder_time, reminder_days, push_token,
		       created_at, updated_at
		FROM weekly_plans
		WHERE user_id = $1 AND week_start >= $2 AND week_start < $3
		ORDER BY day ASC, meal_type ASC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly plan: %w", err)
	}
	defer rows.Close()

	var entries []model.WeeklyPlanEntry
	for rows.Next() {
		var (
			e    model.WeeklyPlanEntry
			days sql.NullString
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Day, &e.MealType, &e.RecipeID, &e.WeekStart,
			&e.ReminderEnabled, &e.ReminderTime, &days, &e.PushToken,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if days.String != "" {
			e.ReminderDays = strings.Split(days.String, ",")
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Delete removes the plan entry for the slot.
func (r *Repository) Delete(ctx context.Context, userID uuid.UUID, day, mealType string, weekStart time.Time) error {
	query := `
		DELETE FROM weekly_plans
		WHERE user_id = $1 AND day = $2 AND meal_type = $3 AND week_start = $4;
    `

	res, err := r.db.ExecContext(ctx, query, userID, day, mealType, weekStart)
	if err != nil {
		return fmt.Errorf("failed to delete weekly plan entry: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrPlanEntryNotFound
	}

	return nil
}
