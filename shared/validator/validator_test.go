package validator_test

import (
	"strings"
	"testing"

	"kwagala/shared/failure"
	"kwagala/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingInput struct {
	Location    string  `json:"location"    validate:"required,max=64"`
	CheckIn     string  `json:"checkIn"     validate:"required,date"`
	Nights      int     `json:"nights"      validate:"required,gte=1"`
	Amount      float64 `json:"amount"      validate:"required,gt=0,lt=10000000000,cents"`
	PhoneNumber string  `json:"phoneNumber" validate:"required,phone"`
	Status      string  `json:"status"      validate:"omitempty,oneof=pending confirmed cancelled"`
}

func validInput() bookingInput {
	return bookingInput{
		Location:    "CBD",
		CheckIn:     "2025-03-01",
		Nights:      2,
		Amount:      8000,
		PhoneNumber: "0712345678",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *bookingInput)
		message string
	}{
		{name: "valid", mutate: func(*bookingInput) {}},
		{name: "missing location", mutate: func(in *bookingInput) { in.Location = "" }, message: "location is required"},
		{name: "zero nights counts as missing", mutate: func(in *bookingInput) { in.Nights = 0 }, message: "nights is required"},
		{name: "zero amount counts as missing", mutate: func(in *bookingInput) { in.Amount = 0 }, message: "amount is required"},
		{name: "short phone", mutate: func(in *bookingInput) { in.PhoneNumber = "071234" }, message: "phoneNumber must be exactly 10 digits"},
		{name: "phone with separators", mutate: func(in *bookingInput) { in.PhoneNumber = "0712-345-678" }, message: "phoneNumber must be exactly 10 digits"},
		{name: "bad date", mutate: func(in *bookingInput) { in.CheckIn = "tomorrow" }, message: "checkIn must be a date (YYYY-MM-DD)"},
		{name: "rfc3339 date", mutate: func(in *bookingInput) { in.CheckIn = "2025-03-01T00:00:00Z" }},
		{name: "location too long", mutate: func(in *bookingInput) { in.Location = strings.Repeat("x", 65) }, message: "location must be at most 64 characters"},
		{name: "location at the limit", mutate: func(in *bookingInput) { in.Location = strings.Repeat("x", 64) }},
		{name: "amount with cents", mutate: func(in *bookingInput) { in.Amount = 1234.56 }},
		{name: "amount with one decimal", mutate: func(in *bookingInput) { in.Amount = 0.1 }},
		{name: "amount below a cent", mutate: func(in *bookingInput) { in.Amount = 1234.567 }, message: "amount must have at most 2 decimal places"},
		{name: "largest storable amount", mutate: func(in *bookingInput) { in.Amount = 9999999999.99 }},
		{name: "amount overflows the column", mutate: func(in *bookingInput) { in.Amount = 10000000000 }, message: "amount must be less than 10000000000"},
		{name: "bad status", mutate: func(in *bookingInput) { in.Status = "archived" }, message: "status must be one of pending confirmed cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := validator.ValidateStruct(&in)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestDecode(t *testing.T) {
	var data bookingInput

	err := validator.Decode(strings.NewReader(`{"location":"Naka","nights":3}`), &data)

	require.NoError(t, err)
	assert.Equal(t, "Naka", data.Location)
	assert.Equal(t, 3, data.Nights)

	err = validator.Decode(strings.NewReader(`not json`), &data)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, validator.IsPhone("0700000000"))
	assert.False(t, validator.IsPhone("+254700000000"))
	assert.False(t, validator.IsPhone(""))
}
