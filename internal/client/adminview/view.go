// Package adminview is the admin dashboard as a state machine. It starts Locked behind the
// admin pass and, once unlocked, lists, searches and deletes bookings.
package adminview

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"kwagala/internal/domains/booking/model/dto"
)

type State int

const (
	Locked State = iota
	Verifying
	Unlocked
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Verifying:
		return "verifying"
	case Unlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	MessageVerifyFailed = "Verification failed"
	MessageLoadFailed   = "Failed to load bookings"
	MessageDeleteFailed = "Failed to delete booking"

	// ErrorDisplay is how long a verification error stays on screen.
	ErrorDisplay = 2 * time.Second
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnknownBooking    = errors.New("booking is not in the list")
	ErrNothingToDelete   = errors.New("no booking selected for deletion")
)

type View struct {
	State State

	// Error is the verification error shown while locked, until ErrorUntil.
	Error      string
	ErrorUntil time.Time

	Bookings  []dto.BookingResponse
	Term      string
	Loading   bool
	LoadError string

	// ConfirmingDelete is the id awaiting confirmation, empty when no dialog is open.
	ConfirmingDelete string
	Deleting         bool
	DeleteError      string
}

func New() View {
	return View{State: Locked}
}

type Event interface {
	apply(v View) (View, error)
}

type (
	Verify          struct{}
	VerifySucceeded struct{}
	VerifyFailed    struct {
		Message string
		Now     time.Time
	}
	Tick          struct{ Now time.Time }
	Load          struct{}
	Loaded        struct{ Bookings []dto.BookingResponse }
	LoadFailed    struct{ Message string }
	Search        struct{ Term string }
	RequestDelete struct{ ID string }
	CancelDelete  struct{}
	ConfirmDelete struct{}
	Deleted       struct{}
	DeleteFailed  struct{ Message string }
)

// Transition applies ev to v. On error v is returned unchanged.
func Transition(v View, ev Event) (View, error) {
	next, err := ev.apply(v)
	if err != nil {
		return v, err
	}

	return next, nil
}

func invalid(v View, ev Event) error {
	return fmt.Errorf("%w: %T while %s", ErrInvalidTransition, ev, v.State)
}

func (e Verify) apply(v View) (View, error) {
	if v.State != Locked {
		return v, invalid(v, e)
	}

	v.State = Verifying
	v.Error = ""
	v.ErrorUntil = time.Time{}

	return v, nil
}

// VerifySucceeded unlocks the view and starts the first list load.
func (e VerifySucceeded) apply(v View) (View, error) {
	if v.State != Verifying {
		return v, invalid(v, e)
	}

	v.State = Unlocked
	v.Loading = true
	v.LoadError = ""

	return v, nil
}

func (e VerifyFailed) apply(v View) (View, error) {
	if v.State != Verifying {
		return v, invalid(v, e)
	}

	v.State = Locked
	v.Error = e.Message
	v.ErrorUntil = e.Now.Add(ErrorDisplay)

	if v.Error == "" {
		v.Error = MessageVerifyFailed
	}

	return v, nil
}

func (e Tick) apply(v View) (View, error) {
	if v.Error != "" && !e.Now.Before(v.ErrorUntil) {
		v.Error = ""
		v.ErrorUntil = time.Time{}
	}

	return v, nil
}

func (e Load) apply(v View) (View, error) {
	if v.State != Unlocked {
		return v, invalid(v, e)
	}

	v.Loading = true
	v.LoadError = ""

	return v, nil
}

func (e Loaded) apply(v View) (View, error) {
	if v.State != Unlocked {
		return v, invalid(v, e)
	}

	v.Bookings = slices.Clone(e.Bookings)
	v.Loading = false

	return v, nil
}

func (e LoadFailed) apply(v View) (View, error) {
	if v.State != Unlocked {
		return v, invalid(v, e)
	}

	v.Loading = false
	v.LoadError = e.Message

	if v.LoadError == "" {
		v.LoadError = MessageLoadFailed
	}

	return v, nil
}

func (e Search) apply(v View) (View, error) {
	if v.State != Unlocked {
		return v, invalid(v, e)
	}

	v.Term = e.Term

	return v, nil
}

func (e RequestDelete) apply(v View) (View, error) {
	if v.State != Unlocked || v.Deleting {
		return v, invalid(v, e)
	}

	if !slices.ContainsFunc(v.Bookings, func(b dto.BookingResponse) bool { return b.ID == e.ID }) {
		return v, fmt.Errorf("%w: %q", ErrUnknownBooking, e.ID)
	}

	v.ConfirmingDelete = e.ID
	v.DeleteError = ""

	return v, nil
}

func (e CancelDelete) apply(v View) (View, error) {
	if v.State != Unlocked || v.Deleting {
		return v, invalid(v, e)
	}

	v.ConfirmingDelete = ""
	v.DeleteError = ""

	return v, nil
}

func (e ConfirmDelete) apply(v View) (View, error) {
	if v.State != Unlocked || v.Deleting {
		return v, invalid(v, e)
	}

	if v.ConfirmingDelete == "" {
		return v, ErrNothingToDelete
	}

	v.Deleting = true
	v.DeleteError = ""

	return v, nil
}

// Deleted closes the dialog and reloads the list.
func (e Deleted) apply(v View) (View, error) {
	if !v.Deleting {
		return v, invalid(v, e)
	}

	v.Deleting = false
	v.ConfirmingDelete = ""
	v.Loading = true
	v.LoadError = ""

	return v, nil
}

// DeleteFailed keeps the dialog open so the delete can be retried or cancelled.
func (e DeleteFailed) apply(v View) (View, error) {
	if !v.Deleting {
		return v, invalid(v, e)
	}

	v.Deleting = false
	v.DeleteError = e.Message

	if v.DeleteError == "" {
		v.DeleteError = MessageDeleteFailed
	}

	return v, nil
}

// Visible returns the bookings matching the search term, case-insensitively, across
// location, room, phone number and status.
func (v View) Visible() []dto.BookingResponse {
	term := strings.ToLower(v.Term)

	visible := make([]dto.BookingResponse, 0, len(v.Bookings))
	for _, b := range v.Bookings {
		haystack := strings.ToLower(strings.Join([]string{b.Location, b.Room, b.PhoneNumber, b.Status}, " "))
		if strings.Contains(haystack, term) {
			visible = append(visible, b)
		}
	}

	return visible
}

// ErrorVisible reports whether the verification error is still on screen at now.
func (v View) ErrorVisible(now time.Time) bool {
	return v.Error != "" && now.Before(v.ErrorUntil)
}
