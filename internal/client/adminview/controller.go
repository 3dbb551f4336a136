package adminview

//go:generate go run go.uber.org/mock/mockgen -source=./controller.go -destination=./mocks/client_mock.go -package=mocks

import (
	"context"
	"time"

	"kwagala/internal/client/api"
	"kwagala/internal/domains/booking/model/dto"

	"github.com/rs/zerolog/log"
)

type Client interface {
	VerifyAdminPass(ctx context.Context, pass string) error
	ListBookings(ctx context.Context) ([]dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, id string) error
}

// Controller holds the single view value and runs the API calls its events ask for.
type Controller struct {
	client Client
	now    func() time.Time
	view   View
}

type Option func(*Controller)

// WithClock replaces time.Now, which stamps verification errors.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func NewController(client Client, opts ...Option) *Controller {
	c := &Controller{
		client: client,
		now:    time.Now,
		view:   New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Controller) View() View {
	return c.view
}

// Dispatch applies a UI-only event such as Search, RequestDelete, CancelDelete or Tick.
func (c *Controller) Dispatch(ev Event) (View, error) {
	v, err := Transition(c.view, ev)
	if err != nil {
		return c.view, err
	}

	c.view = v

	return c.view, nil
}

// Verify checks pass with the server and, when it is accepted, loads the list.
func (c *Controller) Verify(ctx context.Context, pass string) (View, error) {
	if _, err := c.Dispatch(Verify{}); err != nil {
		return c.view, err
	}

	if err := c.client.VerifyAdminPass(ctx, pass); err != nil {
		log.Warn().Err(err).Msg("admin pass verification failed")

		return c.Dispatch(VerifyFailed{Message: api.MessageOr(err, MessageVerifyFailed), Now: c.now()})
	}

	if _, err := c.Dispatch(VerifySucceeded{}); err != nil {
		return c.view, err
	}

	return c.fetch(ctx)
}

// Reload fetches the list again.
func (c *Controller) Reload(ctx context.Context) (View, error) {
	if _, err := c.Dispatch(Load{}); err != nil {
		return c.view, err
	}

	return c.fetch(ctx)
}

// Delete removes the booking awaiting confirmation, then reloads the list.
func (c *Controller) Delete(ctx context.Context) (View, error) {
	if _, err := c.Dispatch(ConfirmDelete{}); err != nil {
		return c.view, err
	}

	id := c.view.ConfirmingDelete

	if err := c.client.DeleteBooking(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		return c.Dispatch(DeleteFailed{Message: api.MessageOr(err, MessageDeleteFailed)})
	}

	if _, err := c.Dispatch(Deleted{}); err != nil {
		return c.view, err
	}

	return c.fetch(ctx)
}

func (c *Controller) fetch(ctx context.Context) (View, error) {
	bookings, err := c.client.ListBookings(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return c.Dispatch(LoadFailed{Message: api.MessageOr(err, MessageLoadFailed)})
	}

	return c.Dispatch(Loaded{Bookings: bookings})
}
