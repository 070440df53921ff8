package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the delivery state of a notification. The machine is strictly
// three-state: pending -> sent or pending -> failed, never backward.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Terminal reports whether no further transitions are permitted.
func (s Status) Terminal() bool {
	return s == StatusSent || s == StatusFailed
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusSent || s == StatusFailed
}

// Notification represents a scheduled meal reminder bound for a mobile push
// endpoint. Recipe name/image/meal type are denormalized so the record stays
// displayable even if the recipe is deleted later.
type Notification struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	RecipeID    *uuid.UUID `json:"recipe_id,omitempty"`
	RecipeName  string     `json:"recipe_name,omitempty"`
	RecipeImage string     `json:"recipe_image,omitempty"`
	MealType    string     `json:"meal_type,omitempty"`

	ScheduledTime time.Time `json:"scheduled_time"` // absolute trigger point
	Status        Status    `json:"status"`
	PushToken     string    `json:"push_token,omitempty"` // opaque Expo endpoint, may be empty

	// Plan linkage, set only for notifications registered by the recurrence
	// planner. Together with UserID and MealType it forms the upsert key.
	PlanDay   string     `json:"plan_day,omitempty"`
	WeekStart *time.Time `json:"week_start,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Due reports whether the notification is eligible for dispatch at now.
func (n Notification) Due(now time.Time) bool {
	return n.Status == StatusPending && !n.ScheduledTime.After(now)
}
