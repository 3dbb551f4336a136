package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"kwagala/internal/domains/booking/model"
	"kwagala/internal/domains/booking/model/dto"
	gModel "kwagala/shared/model"
	"kwagala/shared/timezone"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Location:    "CBD",
		Room:        "One bedroom",
		CheckIn:     "2025-03-01",
		CheckOut:    "2025-03-03",
		Nights:      2,
		Amount:      8000,
		PhoneNumber: "0790074065",
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := request()

	booking, err := req.ToModel()
	require.NoError(t, err)

	id, err := uuid.Parse(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	assert.Equal(t, "CBD", booking.Location)
	assert.Equal(t, "One bedroom", booking.Room)
	assert.Equal(t, "2025-03-01", booking.CheckIn.Format(time.DateOnly))
	assert.Equal(t, "2025-03-03", booking.CheckOut.Format(time.DateOnly))
	assert.Equal(t, 2, booking.Nights)
	assert.InDelta(t, 8000.0, booking.Amount, 0)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, booking.CreatedAt, booking.UpdatedAt)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestCreateBookingRequest_ToModelTimestamps(t *testing.T) {
	req := request()
	req.CheckIn = "2025-03-01T00:00:00Z"
	req.CheckOut = "2025-03-03T00:00:00Z"

	booking, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, timezone.Day(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), booking.CheckIn)
	assert.Equal(t, timezone.Day(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)), booking.CheckOut)
}

func TestCreateBookingRequest_ToModelBadDate(t *testing.T) {
	req := request()
	req.CheckOut = "soon"

	_, err := req.ToModel()
	assert.Error(t, err)
}

func TestBookingResponse_JSON(t *testing.T) {
	created := time.Date(2025, 3, 1, 11, 5, 0, 0, time.UTC)

	res := dto.BookingResponse{}
	res.FromModel(model.Booking{
		ID:          "0190a7e2-7a6c-7cc4-9d3a-3f1c2b9e0a11",
		Location:    "Naka",
		Room:        "Studio",
		CheckIn:     time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
		Nights:      2,
		Amount:      4000,
		PhoneNumber: "0712345678",
		Status:      model.StatusPending,
		Metadata:    gModel.Metadata{CreatedAt: created, UpdatedAt: created},
	})

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "0190a7e2-7a6c-7cc4-9d3a-3f1c2b9e0a11", body["_id"])
	assert.Equal(t, "2025-04-10", body["checkIn"])
	assert.Equal(t, "2025-04-12", body["checkOut"])
	assert.Equal(t, "0712345678", body["phoneNumber"])
	assert.Equal(t, "pending", body["status"])
	assert.Contains(t, body, "createdAt")
	assert.Contains(t, body, "updatedAt")
}

func TestFromModels(t *testing.T) {
	assert.Empty(t, dto.FromModels(nil))
	assert.NotNil(t, dto.FromModels(nil))

	res := dto.FromModels([]model.Booking{{ID: "a"}, {ID: "b"}})
	require.Len(t, res, 2)
	assert.Equal(t, "b", res[1].ID)
}
