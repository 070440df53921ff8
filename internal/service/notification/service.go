package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ndayishimiyefidel/recipe-backend/internal/model"
	notifrepo "github.com/ndayishimiyefidel/recipe-backend/internal/repository/notification"
)

var (
	// ErrValidation marks a malformed or incomplete notification payload.
	// It is surfaced to the caller and never retried.
	ErrValidation = errors.New("invalid notification")

	// ErrInvalidTransition marks a status override that would regress a
	// terminal record or set an unknown status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	Create(context.Context, model.Notification) (uuid.UUID, error)
	GetByID(context.Context, uuid.UUID) (model.Notification, error)
	GetStatusByID(context.Context, uuid.UUID) (model.Status, error)
	UpdateStatus(context.Context, uuid.UUID, model.Status) error
	FindByOwner(context.Context, uuid.UUID, model.Status) ([]model.Notification, error)
	DeleteByID(ctx context.Context, id, ownerID uuid.UUID) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service owns the notification record lifecycle: creation, listing, manual
// status overrides, deletion, and the dispatcher's terminal transitions. The
// store stays the single source of truth; redis only caches statuses by id.
type Service struct {
	repo  notificationRepository
	cache cache
}

func NewService(repo notificationRepository, cache cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Create validates and persists a new notification in pending status.
func (s *Service) Create(ctx context.Context, strategy retry.Strategy, n model.Notification) (uuid.UUID, error) {
	if n.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: owner is required", ErrValidation)
	}
	if n.Title == "" {
		return uuid.Nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if n.ScheduledTime.IsZero() {
		return uuid.Nil, fmt.Errorf("%w: scheduled time is required", ErrValidation)
	}

	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create notification: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, model.StatusPending)

	return id, nil
}

// GetStatusByID returns a notification's status, preferring the cache.
func (s *Service) GetStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	if err == nil && model.Status(cached).Valid() {
		return model.Status(cached), nil
	}

	status, err := s.repo.GetStatusByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get notification status: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, status)

	return status, nil
}

// ListByOwner returns a user's notifications, optionally filtered by status.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID, status model.Status) ([]model.Notification, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	notifications, err := s.repo.FindByOwner(ctx, ownerID, status)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// Delete removes a notification owned by the caller. A record that was
// already picked up by a running tick may still be delivered; deleting only
// prevents future ticks from observing it.
func (s *Service) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id, ownerID); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	return nil
}

// OverrideStatus applies a manual status change on behalf of the owner,
// bypassing the dispatcher. Only pending records can transition, and only to
// a valid status.
func (s *Service) OverrideStatus(ctx context.Context, strategy retry.Strategy, id, ownerID uuid.UUID, status model.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get notification: %w", err)
	}

	// Not-owned records are indistinguishable from missing ones.
	if n.UserID != ownerID {
		return notifrepo.ErrNotificationNotFound
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, notifrepo.ErrAlreadyTerminal) {
			return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, n.Status)
		}

		return fmt.Errorf("update notification status: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, status)

	return nil
}

// MarkDispatched records a dispatch outcome. It is the dispatcher's only
// write path and must stay idempotent: repeating an applied transition is a
// no-op, and a terminal record is never overwritten.
func (s *Service) MarkDispatched(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.Status) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("mark dispatched: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, status)

	return nil
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.Status) {
	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}
}
