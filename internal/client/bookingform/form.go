// Package bookingform is the guest booking form as a state machine: the form is a value
// and every user action is an Event applied by Transition.
package bookingform

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"kwagala/internal/domains/booking/model/dto"
	"kwagala/internal/domains/booking/rate"
	"kwagala/shared/constant"
	"kwagala/shared/timezone"
	"kwagala/shared/validator"

	"github.com/rs/zerolog/log"
)

type State int

const (
	Editing State = iota
	Confirming
	Submitting
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Confirming:
		return "confirming"
	case Submitting:
		return "submitting"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const MessageSubmitFailed = "Booking failed"

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrIncomplete        = errors.New("booking form is incomplete")
	ErrUnknownLocation   = errors.New("unknown location")
	ErrUnknownRoom       = errors.New("room not offered at this location")
	ErrNoLocation        = errors.New("pick a location first")
	ErrDateBooked        = errors.New("date is already booked")
)

// Form is everything the booking card shows. Nights, Nightly and Amount are derived and
// recomputed on every edit.
type Form struct {
	State    State
	Location string
	Room     string
	CheckIn  time.Time
	CheckOut time.Time
	Phone    string

	Nights  int
	Nightly float64
	Amount  float64

	Booking dto.BookingResponse
	Error   string
}

func New() Form {
	return Form{State: Editing}
}

type Event interface {
	apply(f Form) (Form, error)
}

type (
	SetLocation  struct{ Location string }
	SetRoom      struct{ Room string }
	SetCheckIn   struct{ Date time.Time }
	SetCheckOut  struct{ Date time.Time }
	SetPhone     struct{ Phone string }
	Continue     struct{}
	Cancel       struct{}
	Confirm      struct{}
	Submitted    struct{ Booking dto.BookingResponse }
	SubmitFailed struct{ Message string }
	Reset        struct{}
)

// Transition applies ev to f. On error f is returned unchanged.
func Transition(f Form, ev Event) (Form, error) {
	next, err := ev.apply(f)
	if err != nil {
		return f, err
	}

	return next.derive(), nil
}

func invalid(f Form, ev Event) error {
	return fmt.Errorf("%w: %T while %s", ErrInvalidTransition, ev, f.State)
}

func (e SetLocation) apply(f Form) (Form, error) {
	if f.State != Editing {
		return f, invalid(f, e)
	}

	if e.Location != "" && !rate.IsLocation(e.Location) {
		return f, fmt.Errorf("%w: %q", ErrUnknownLocation, e.Location)
	}

	f.Location = e.Location
	f.Room = ""
	f.CheckIn = time.Time{}
	f.CheckOut = time.Time{}

	return f, nil
}

func (e SetRoom) apply(f Form) (Form, error) {
	if f.State != Editing {
		return f, invalid(f, e)
	}

	if e.Room != "" {
		if f.Location == "" {
			return f, ErrNoLocation
		}

		if !slices.Contains(rate.Rooms(f.Location), e.Room) {
			return f, fmt.Errorf("%w: %q at %s", ErrUnknownRoom, e.Room, f.Location)
		}
	}

	f.Room = e.Room

	return f, nil
}

func (e SetCheckIn) apply(f Form) (Form, error) {
	if f.State != Editing {
		return f, invalid(f, e)
	}

	day, err := pickDay(e.Date)
	if err != nil {
		return f, err
	}

	f.CheckIn = day
	f.CheckOut = time.Time{}

	return f, nil
}

func (e SetCheckOut) apply(f Form) (Form, error) {
	if f.State != Editing {
		return f, invalid(f, e)
	}

	day, err := pickDay(e.Date)
	if err != nil {
		return f, err
	}

	f.CheckOut = day

	return f, nil
}

// SetPhone keeps only the digits typed.
func (e SetPhone) apply(f Form) (Form, error) {
	if f.State != Editing {
		return f, invalid(f, e)
	}

	f.Phone = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}

		return -1
	}, e.Phone)

	return f, nil
}

func (e Continue) apply(f Form) (Form, error) {
	if f.State != Editing {
		return f, invalid(f, e)
	}

	if !f.derive().CanContinue() {
		return f, ErrIncomplete
	}

	f.State = Confirming

	return f, nil
}

// Cancel leaves the summary, or a failed submit, with the entries kept.
func (e Cancel) apply(f Form) (Form, error) {
	if f.State != Confirming && f.State != Failed {
		return f, invalid(f, e)
	}

	f.State = Editing
	f.Error = ""

	return f, nil
}

func (e Confirm) apply(f Form) (Form, error) {
	if f.State != Confirming {
		return f, invalid(f, e)
	}

	f.State = Submitting

	return f, nil
}

func (e Submitted) apply(f Form) (Form, error) {
	if f.State != Submitting {
		return f, invalid(f, e)
	}

	f.State = Done
	f.Booking = e.Booking

	return f, nil
}

func (e SubmitFailed) apply(f Form) (Form, error) {
	if f.State != Submitting {
		return f, invalid(f, e)
	}

	f.State = Failed
	f.Error = e.Message

	if f.Error == "" {
		f.Error = MessageSubmitFailed
	}

	return f, nil
}

func (Reset) apply(Form) (Form, error) {
	return New(), nil
}

func pickDay(date time.Time) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, nil
	}

	day := timezone.Day(date)
	if rate.IsBooked(day) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDateBooked, day.Format(constant.DayFormat))
	}

	return day, nil
}

func (f Form) derive() Form {
	f.Nights = rate.Nights(f.CheckIn, f.CheckOut)
	f.Nightly, _ = rate.Nightly(f.Location, f.Room)
	f.Amount = rate.Total(f.Location, f.Room, f.Nights)

	return f
}

func (f Form) PhoneValid() bool {
	return validator.IsPhone(f.Phone)
}

// CanContinue is the enabled state of the Continue button.
func (f Form) CanContinue() bool {
	return f.Location != "" &&
		f.Room != "" &&
		!f.CheckIn.IsZero() &&
		!f.CheckOut.IsZero() &&
		f.PhoneValid() &&
		f.Nights > 0
}

// Locations lists the location choices.
func (f Form) Locations() []string {
	return rate.Locations()
}

// Rooms lists the room choices for the selected location.
func (f Form) Rooms() []string {
	return rate.Rooms(f.Location)
}

// BookedDates are the days the date pickers render as unavailable.
func (f Form) BookedDates() []string {
	return rate.BookedDates()
}

func (f Form) Payload() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Location:    f.Location,
		Room:        f.Room,
		CheckIn:     f.CheckIn.Format(constant.DayFormat),
		CheckOut:    f.CheckOut.Format(constant.DayFormat),
		Nights:      f.Nights,
		Amount:      f.Amount,
		PhoneNumber: f.Phone,
	}
}

type Creator interface {
	CreateBooking(ctx context.Context, payload dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
}

// Submit confirms the summary and sends the booking. A rejected or failed call ends in
// Failed with the generic message; the error is only for a form that was not on the summary.
func Submit(ctx context.Context, client Creator, f Form) (Form, error) {
	f, err := Transition(f, Confirm{})
	if err != nil {
		return f, err
	}

	res, err := client.CreateBooking(ctx, f.Payload())
	if err != nil {
		log.Error().Err(err).Msg("booking submit failed")

		return Transition(f, SubmitFailed{Message: MessageSubmitFailed})
	}

	return Transition(f, Submitted{Booking: res.Booking})
}
