package model

import (
	"time"

	"kwagala/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID = "id"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID          string    `db:"id"`
	Location    string    `db:"location"`
	Room        string    `db:"room"`
	CheckIn     time.Time `db:"check_in"`
	CheckOut    time.Time `db:"check_out"`
	Nights      int       `db:"nights"`
	Amount      float64   `db:"amount"`
	PhoneNumber string    `db:"phone_number"`
	Status      string    `db:"status"`
	model.Metadata
}
