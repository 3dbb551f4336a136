package template_test

import (
	"testing"
	"time"

	"kwagala/internal/domains/booking/model/dto"
	"kwagala/internal/domains/notification/template"
	gDto "kwagala/shared/dto"
	"kwagala/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking() dto.BookingResponse {
	return dto.BookingResponse{
		ID:          "0190a7e2-7a6c-7cc4-9d3a-3f1c2b9e0a11",
		Location:    "CBD",
		Room:        "One bedroom",
		CheckIn:     "2025-03-01",
		CheckOut:    "2025-03-03",
		Nights:      2,
		Amount:      8000,
		PhoneNumber: "0790074065",
		Status:      "pending",
		Metadata: gDto.Metadata{
			CreatedAt: "2025-03-01T11:05:00Z",
			UpdatedAt: "2025-03-01T11:05:00Z",
		},
	}
}

func TestRender(t *testing.T) {
	html, err := template.Render(booking())
	require.NoError(t, err)

	assert.Contains(t, html, "<title>New Booking Request</title>")
	assert.Contains(t, html, "Location: <strong>CBD</strong>")
	assert.Contains(t, html, "Room: <strong>One bedroom</strong>")
	assert.Contains(t, html, "Check In: <strong>1 March 2025</strong>")
	assert.Contains(t, html, "Check Out: <strong>3 March 2025</strong>")
	assert.Contains(t, html, "Nights: <strong>2</strong>")
	assert.Contains(t, html, "Total: KES <strong>8,000</strong>")
	assert.Contains(t, html, "Phone Number: <strong>0790074065</strong>")
	assert.Contains(t, html, "Approval is <strong>pending</strong>")
	assert.Contains(t, html, "Kindly confirm this bookings.")
	assert.Contains(t, html, "Kwagala Homes Tech Team.")
}

func TestRender_Escapes(t *testing.T) {
	b := booking()
	b.Room = "<script>alert(1)</script>"

	html, err := template.Render(b)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "1 March 2025", template.LongDate("2025-03-01"))
	assert.Equal(t, "31 December 2024", template.LongDate("2024-12-31"))
	assert.Equal(t, "someday", template.LongDate("someday"))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "8,000", template.Money(8000))
	assert.Equal(t, "120,000", template.Money(120000))
	assert.Equal(t, "1,234.5", template.Money(1234.5))
	assert.Equal(t, "500", template.Money(500))
}

func TestReceived(t *testing.T) {
	stamp := time.Date(2025, 3, 1, 11, 5, 0, 0, time.UTC)

	assert.Equal(t, timezone.Format(stamp, "Jan 2, 2006 15:04"), template.Received(stamp.Format(time.RFC3339)))
	assert.Equal(t, "N/A", template.Received(""))
}
