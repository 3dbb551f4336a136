// Package export writes bookings into an .xlsx workbook for the admin.
package export

import (
	"bytes"
	"fmt"

	"kwagala/internal/domains/booking/model/dto"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName = "Bookings"
	FileName  = "bookings.xlsx"
)

var headers = []string{
	"ID", "Location", "Room", "Check In", "Check Out", "Nights", "Amount (KES)", "Phone Number", "Status", "Created At",
}

// Workbook renders one row per booking, in the order given, under a bold header row.
func Workbook(bookings []dto.BookingResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("error writing header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating header style: %w", err)
	}

	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(SheetName, "A1", lastHeader, style)

	for i, booking := range bookings {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)

		row := []any{
			booking.ID,
			booking.Location,
			booking.Room,
			booking.CheckIn,
			booking.CheckOut,
			booking.Nights,
			booking.Amount,
			booking.PhoneNumber,
			booking.Status,
			booking.CreatedAt,
		}

		if err = f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("error writing booking %s: %w", booking.ID, err)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 38)
	_ = f.SetColWidth(SheetName, "B", "J", 16)

	var buf bytes.Buffer
	if err = f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}
