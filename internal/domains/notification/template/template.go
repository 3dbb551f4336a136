// Package template renders the admin email sent for every new booking.
package template

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"kwagala/internal/domains/booking/model/dto"
	"kwagala/shared/constant"
	"kwagala/shared/timezone"

	"github.com/dustin/go-humanize"
)

const (
	Subject   = "New Booking Request"
	signature = "Kwagala Homes Tech Team."

	longDateLayout = "2 January 2006"
	receivedLayout = "Jan 2, 2006 15:04"
	notAvailable   = "N/A"
)

//go:embed booking.html
var bookingHTML string

var bookingTemplate = template.Must(template.New("booking").Funcs(template.FuncMap{
	"longDate": LongDate,
	"money":    Money,
	"received": Received,
}).Parse(bookingHTML))

type bookingData struct {
	Title     string
	Signature string
	Booking   dto.BookingResponse
}

// Render produces the HTML body for booking. Every value is escaped.
func Render(booking dto.BookingResponse) (string, error) {
	var buf bytes.Buffer

	err := bookingTemplate.Execute(&buf, bookingData{
		Title:     Subject,
		Signature: signature,
		Booking:   booking,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render booking email: %w", err)
	}

	return buf.String(), nil
}

// LongDate turns "2025-03-01" into "1 March 2025". Unparseable input is returned as-is.
func LongDate(day string) string {
	parsed, err := timezone.ParseDay(day)
	if err != nil {
		return day
	}

	return parsed.Format(longDateLayout)
}

// Money groups thousands: 8000 -> "8,000", 1234.5 -> "1,234.5".
func Money(amount float64) string {
	return humanize.Commaf(amount)
}

// Received formats an RFC3339 creation time in the application timezone.
func Received(createdAt string) string {
	stamp, err := time.Parse(constant.DateFormat, createdAt)
	if err != nil {
		return notAvailable
	}

	return timezone.Format(stamp, receivedLayout)
}
