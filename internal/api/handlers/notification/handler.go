package notification

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
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ndayishimiyefidel/recipe-backend/internal/api/respond"
	"github.com/ndayishimiyefidel/recipe-backend/internal/config"
	"github.com/ndayishimiyefidel/recipe-backend/internal/middlewares"
	"github.com/ndayishimiyefidel/recipe-backend/internal/model"
	notifrepo "github.com/ndayishimiyefidel/recipe-backend/internal/repository/notification"
	notifsvc "github.com/ndayishimiyefidel/recipe-backend/internal/service/notification"
)

// notificationService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Create(context.Context, retry.Strategy, model.Notification) (uuid.UUID, error)
	GetStatusByID(context.Context, retry.Strategy, uuid.UUID) (model.Status, error)
	ListByOwner(context.Context, uuid.UUID, model.Status) ([]model.Notification, error)
	OverrideStatus(ctx context.Context, strategy retry.Strategy, id, ownerID uuid.UUID, status model.Status) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// Handler handles HTTP requests related to notifications.
type Handler struct {
	service   notificationService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s notificationService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// CreateRequest represents the JSON body expected in a notification creation
// request. The push token is opaque here; only the dispatcher validates its
// format.
type CreateRequest struct {
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body"`
	RecipeID      string `json:"recipe_id"`
	RecipeName    string `json:"recipe_name"`
	RecipeImage   string `json:"recipe_image"`
	MealType      string `json:"meal_type"`
	ScheduledTime string `json:"scheduled_time" validate:"required"`
	PushToken     string `json:"push_token"`
}

// StatusRequest represents the JSON body of a manual status override.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create handles POST /api/notifications.
func (h *Handler) Create(c *ginext.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing user id"))
		return
	}

	var req CreateRequest
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

	scheduledTime, err := time.Parse(time.RFC3339, req.ScheduledTime)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to parse scheduled_time")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid scheduled_time format, want RFC3339"))
		return
	}

	notif := model.Notification{
		UserID:        userID,
		Title:         req.Title,
		Body:          req.Body,
		RecipeName:    req.RecipeName,
		RecipeImage:   req.RecipeImage,
		MealType:      req.MealType,
		ScheduledTime: scheduledTime,
		Status:        model.StatusPending,
		PushToken:     req.PushToken,
	}

	if req.RecipeID != "" {
		recipeID, err := uuid.Parse(req.RecipeID)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid recipe_id"))
			return
		}
		notif.RecipeID = &recipeID
	}

	id, err := h.service.Create(c.Request.Context(), h.cfg.Retry, notif)
	if err != nil {
		if errors.Is(err, notifsvc.ErrValidation) {
			zlog.Logger.Warn().Err(err).Msg("invalid notification payload")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("title", notif.Title).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// List handles GET /api/notifications with an optional status filter.
func (h *Handler) List(c *ginext.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing user id"))
		return
	}

	status := model.Status(c.Query("status"))

	notifications, err := h.service.ListByOwner(c.Request.Context(), userID, status)
	if err != nil {
		if errors.Is(err, notifsvc.ErrValidation) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// GetStatus handles GET /api/notifications/:id/status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	status, err := h.service.GetStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// OverrideStatus handles PUT /api/notifications/:id/status, the manual
// override path that bypasses the dispatcher.
func (h *Handler) OverrideStatus(c *ginext.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing user id"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	err = h.service.OverrideStatus(c.Request.Context(), h.cfg.Retry, id, userID, model.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, notifrepo.ErrNotificationNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
		case errors.Is(err, notifsvc.ErrInvalidTransition):
			respond.Fail(c.Writer, http.StatusConflict, err)
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to override notification status")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, "status updated")
}

// Delete handles DELETE /api/notifications/:id.
func (h *Handler) Delete(c *ginext.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing user id"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification deleted")
}
