package notification

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

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAlreadyTerminal      = errors.New("notification already in terminal status")
)

// Repository provides access to the notifications table. It is the single
// source of truth for delivery state; all mutation goes through Create,
// UpdateStatus and UpsertPlanNotification.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

const notificationColumns = `
		id, user_id, title, body, recipe_id, recipe_name, recipe_image,
		meal_type, scheduled_time, status, push_token, plan_day, week_start,
		created_at, updated_at`

// Create inserts a new notification in pending status and returns its ID.
func (r *Repository) Create(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    user_id, title, body, recipe_id, recipe_name, recipe_image,
		    meal_type, scheduled_time, status, push_token, plan_day, week_start
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query,
		n.UserID, n.Title, n.Body, nullUUID(n.RecipeID), n.RecipeName, n.RecipeImage,
		n.MealType, n.ScheduledTime, model.StatusPending, n.PushToken, nullString(n.PlanDay), nullTime(n.WeekStart),
	).Scan(&n.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n.ID, nil
}

// FindDue returns all pending notifications whose scheduled time has passed.
// Callers must not depend on ordering.
func (r *Repository) FindDue(ctx context.Context, now time.Time) ([]model.Notification, error) {
	query := `
		SELECT` + notificationColumns + `
		FROM notifications
		WHERE status = $1 AND scheduled_time <= $2;
    `

	rows, err := r.db.QueryContext(ctx, query, model.StatusPending, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find due notifications: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// UpdateStatus transitions a notification from pending to the given status.
// The update is conditional on the current status still being pending, so a
// terminal record can never be overwritten. Repeating an already-applied
// transition is a no-op; a conflicting one returns ErrAlreadyTerminal.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) error {
	query := `
		UPDATE notifications
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3;
    `

	res, err := r.db.ExecContext(ctx, query, status, id, model.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows > 0 {
		return nil
	}

	// Zero rows: either the record is gone or another transition won the race.
	current, err := r.GetStatusByID(ctx, id)
	if err != nil {
		return err
	}

	if current == status {
		return nil
	}

	return ErrAlreadyTerminal
}

// GetStatusByID retrieves the status of a notification by its ID.
func (r *Repository) GetStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error) {
	query := `
		SELECT status
		FROM notifications
		WHERE id = $1;
    `

	var status model.Status
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotificationNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

// GetByID retrieves a single notification by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `
		SELECT` + notificationColumns + `
		FROM notifications
		WHERE id = $1;
    `

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}
	defer rows.Close()

	notifications, err := scanNotifications(rows)
	if err != nil {
		return model.Notification{}, err
	}
	if len(notifications) == 0 {
		return model.Notification{}, ErrNotificationNotFound
	}

	return notifications[0], nil
}

// FindByOwner retrieves a user's notifications ordered by scheduled time
// descending, optionally filtered by status.
func (r *Repository) FindByOwner(ctx context.Context, ownerID uuid.UUID, status model.Status) ([]model.Notification, error) {
	query := `
		SELECT` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1`

	args := []interface{}{ownerID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += `
		ORDER BY scheduled_time DESC;`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications by owner: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// DeleteByID removes a notification only if it belongs to the given owner.
func (r *Repository) DeleteByID(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1 AND user_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// UpsertPlanNotification registers a planner-created reminder. One record
// exists per (user, day, meal type, week start) tuple: a second registration
// for the same slot overwrites the first and resets it to pending.
func (r *Repository) UpsertPlanNotification(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	selectQuery := `
		SELECT id
		FROM notifications
		WHERE user_id = $1 AND plan_day = $2 AND meal_type = $3 AND week_start = $4;
    `

	var existing uuid.UUID
	err := r.db.Master.QueryRowContext(ctx, selectQuery, n.UserID, n.PlanDay, n.MealType, n.WeekStart).Scan(&existing)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("failed to look up plan notification: %w", err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return r.Create(ctx, n)
	}

	updateQuery := `
		UPDATE notifications
		SET title = $1, body = $2, recipe_id = $3, recipe_name = $4,
		    recipe_image = $5, scheduled_time = $6, push_token = $7,
		    status = $8, updated_at = now()
		WHERE id = $9;
    `

	_, err = r.db.ExecContext(
		ctx, updateQuery,
		n.Title, n.Body, nullUUID(n.RecipeID), n.RecipeName,
		n.RecipeImage, n.ScheduledTime, n.PushToken,
		model.StatusPending, existing,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to update plan notification: %w", err)
	}

	return existing, nil
}

func scanNotifications(rows *sql.Rows) ([]model.Notification, error) {
	var notifications []model.Notification
	for rows.Next() {
		var (
			n         model.Notification
			recipeID  uuid.NullUUID
			planDay   sql.NullString
			weekStart sql.NullTime
		)
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Body, &recipeID, &n.RecipeName, &n.RecipeImage,
			&n.MealType, &n.ScheduledTime, &n.Status, &n.PushToken, &planDay, &weekStart,
			&n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if recipeID.Valid {
			id := recipeID.UUID
			n.RecipeID = &id
		}
		if weekStart.Valid {
			ws := weekStart.Time
			n.WeekStart = &ws
		}
		n.PlanDay = strings.TrimSpace(planDay.String)
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
