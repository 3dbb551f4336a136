package dto

import (
	"kwagala/internal/domains/booking/model"
	"kwagala/shared/constant"
	gDto "kwagala/shared/dto"
	gModel "kwagala/shared/model"
	"kwagala/shared/timezone"

	"github.com/google/uuid"
)

// CreateBookingRequest is the body of POST /api/bookings. Dates are YYYY-MM-DD or an
// RFC3339 timestamp, which is reduced to its calendar date. Bounds follow the bookings table.
type CreateBookingRequest struct {
	Location    string  `example:"CBD"         json:"location"    validate:"required,max=64"`
	Room        string  `example:"One bedroom" json:"room"        validate:"required,max=64"`
	CheckIn     string  `example:"2025-03-01"  json:"checkIn"     validate:"required,date"`
	CheckOut    string  `example:"2025-03-03"  json:"checkOut"    validate:"required,date"`
	Nights      int     `example:"2"           json:"nights"      validate:"required"`
	Amount      float64 `example:"8000"        json:"amount"      validate:"required,lt=10000000000,cents"`
	PhoneNumber string  `example:"0790074065"  json:"phoneNumber" validate:"required,phone"`
}

// ToModel assumes the request already passed validation.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := timezone.ParseDay(c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.ParseDay(c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Booking{}, err
	}

	now := timezone.Now()

	return model.Booking{
		ID:          id.String(),
		Location:    c.Location,
		Room:        c.Room,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      c.Nights,
		Amount:      c.Amount,
		PhoneNumber: c.PhoneNumber,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

type BookingResponse struct {
	ID          string  `example:"0190a7e2-7a6c-7cc4-9d3a-3f1c2b9e0a11" json:"_id"`
	Location    string  `example:"CBD"                                  json:"location"`
	Room        string  `example:"One bedroom"                          json:"room"`
	CheckIn     string  `example:"2025-03-01"                           json:"checkIn"`
	CheckOut    string  `example:"2025-03-03"                           json:"checkOut"`
	Nights      int     `example:"2"                                    json:"nights"`
	Amount      float64 `example:"8000"                                 json:"amount"`
	PhoneNumber string  `example:"0790074065"                           json:"phoneNumber"`
	Status      string  `example:"pending"                              json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Location = model.Location
	r.Room = model.Room
	r.CheckIn = model.CheckIn.Format(constant.DayFormat)
	r.CheckOut = model.CheckOut.Format(constant.DayFormat)
	r.Nights = model.Nights
	r.Amount = model.Amount
	r.PhoneNumber = model.PhoneNumber
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// CreateBookingResponse mirrors the body returned by POST /api/bookings.
type CreateBookingResponse struct {
	Message string          `example:"Booking created successfully" json:"message"`
	Booking BookingResponse `json:"booking"`
}
