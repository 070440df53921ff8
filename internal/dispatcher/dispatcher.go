package dispatcher

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ndayishimiyefidel/recipe-backend/internal/model"
	"github.com/ndayishimiyefidel/recipe-backend/pkg/expo"
)

// Outcome is the result of a single dispatch attempt.
type Outcome int

const (
	// Delivered means the gateway accepted the delivery request.
	Delivered Outcome = iota
	// Rejected covers every failure: missing or malformed token, gateway
	// error, timeout, or a non-success acknowledgment. All of them are
	// terminal for the notification; there is no automatic re-send.
	Rejected
)

func (o Outcome) String() string {
	if o == Delivered {
		return "delivered"
	}
	return "rejected"
}

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher/mock.go -package=mocks

type pushGateway interface {
	Send(ctx context.Context, msg expo.Message) (expo.Ticket, error)
}

type statusRecorder interface {
	MarkDispatched(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.Status) error
}

// Dispatcher delivers due notifications through the push gateway and records
// the outcome. It holds no state between invocations, so any number of
// instances can run against the same store.
type Dispatcher struct {
	gateway  pushGateway
	recorder statusRecorder
	strategy retry.Strategy
	timeout  time.Duration // bound on a single gateway call
}

func New(gateway pushGateway, recorder statusRecorder, strategy retry.Strategy, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Dispatcher{
		gateway:  gateway,
		recorder: recorder,
		strategy: strategy,
		timeout:  timeout,
	}
}

// Dispatch performs exactly one delivery attempt for the notification and
// records the terminal status. A missing or malformed destination token
// short-circuits to Rejected without touching the gateway.
func (d *Dispatcher) Dispatch(ctx context.Context, n model.Notification) Outcome {
	if !expo.IsExpoPushToken(n.PushToken) {
		zlog.Logger.Warn().
			Str("id", n.ID.String()).
			Msg("notification has no usable push token, rejecting without gateway call")
		d.record(ctx, n.ID, model.StatusFailed)
		return Rejected
	}

	msg := expo.Message{
		To:    n.PushToken,
		Sound: "default",
		Title: n.Title,
		Body:  n.Body,
		Data:  payloadData(n),
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	ticket, err := d.gateway.Send(sendCtx, msg)
	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("id", n.ID.String()).
			Msg("gateway rejected notification")
		d.record(ctx, n.ID, model.StatusFailed)
		return Rejected
	}

	if !ticket.Accepted() {
		zlog.Logger.Warn().
			Str("id", n.ID.String()).
			Str("ticket_status", ticket.Status).
			Str("ticket_message", ticket.Message).
			Msg("gateway did not accept notification")
		d.record(ctx, n.ID, model.StatusFailed)
		return Rejected
	}

	zlog.Logger.Info().
		Str("id", n.ID.String()).
		Str("ticket_id", ticket.ID).
		Msg("notification delivered")
	d.record(ctx, n.ID, model.StatusSent)

	return Delivered
}

// record writes the terminal status. The status update is the only side
// effect visible to the rest of the system; errors here are logged and never
// abort the tick.
func (d *Dispatcher) record(ctx context.Context, id uuid.UUID, status model.Status) {
	if err := d.recorder.MarkDispatched(ctx, d.strategy, id, status); err != nil {
		zlog.Logger.Error().Err(err).
			Str("id", id.String()).
			Str("status", string(status)).
			Msg("failed to record dispatch outcome")
	}
}

// payloadData builds the structured payload the receiving client uses to
// deep-link into the recipe.
func payloadData(n model.Notification) map[string]string {
	data := map[string]string{
		"recipe_name": n.RecipeName,
		"meal_type":   n.MealType,
	}
	if n.RecipeID != nil {
		data["recipe_id"] = n.RecipeID.String()
	}

	return data
}
