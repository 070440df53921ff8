package model

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyPlanEntry is a single meal slot in a user's weekly plan. Reminder
// settings live on the slot itself; each edit that enables a reminder makes
// the planner register one notification for the next occurrence.
type WeeklyPlanEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Day       string    `json:"day"`       // e.g. "Monday"
	MealType  string    `json:"meal_type"` // e.g. "Breakfast"
	RecipeID  uuid.UUID `json:"recipe_id"`
	WeekStart time.Time `json:"week_start"`

	ReminderEnabled bool     `json:"reminder_enabled"`
	ReminderTime    string   `json:"reminder_time,omitempty"` // "15:04" time of day
	ReminderDays    []string `json:"reminder_days,omitempty"`
	PushToken       string   `json:"push_token,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Recipe is the read-only snapshot source used when registering reminders.
type Recipe struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	MealType string    `json:"meal_type,omitempty"`
}
