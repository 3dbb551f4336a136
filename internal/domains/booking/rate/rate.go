// Package rate holds the nightly price list the booking form quotes from and the helpers
// that turn a stay into nights and a total.
package rate

import (
	"math"
	"slices"
	"time"
)

const (
	LocationCBD      = "CBD"
	LocationKiamunyi = "Kiamunyi"
	Location58       = "58"
	LocationNaka     = "Naka"
)

const (
	RoomStudio       = "Studio"
	RoomOneBedroom   = "One bedroom"
	RoomTwoBedroom   = "Two bedroom"
	RoomThreeBedroom = "Three bedroom"
)

type Tier struct {
	Room    string
	Nightly float64
}

var (
	locations = []string{LocationCBD, LocationKiamunyi, Location58, LocationNaka}

	cbdTiers = []Tier{
		{Room: RoomOneBedroom, Nightly: 4000},
		{Room: RoomTwoBedroom, Nightly: 6000},
		{Room: RoomThreeBedroom, Nightly: 8000},
	}

	defaultTiers = []Tier{
		{Room: RoomStudio, Nightly: 2000},
		{Room: RoomOneBedroom, Nightly: 3500},
		{Room: RoomTwoBedroom, Nightly: 5000},
		{Room: RoomThreeBedroom, Nightly: 8000},
	}

	// placeholder availability until bookings are checked against the store
	bookedDates = []string{"2025-01-10", "2025-01-15", "2025-01-20"}
)

func Locations() []string {
	return slices.Clone(locations)
}

func IsLocation(location string) bool {
	return slices.Contains(locations, location)
}

// Tiers returns the price list for a location, nil for an unknown one.
func Tiers(location string) []Tier {
	switch {
	case location == LocationCBD:
		return slices.Clone(cbdTiers)
	case IsLocation(location):
		return slices.Clone(defaultTiers)
	default:
		return nil
	}
}

func Rooms(location string) []string {
	tiers := Tiers(location)

	rooms := make([]string, len(tiers))
	for i, tier := range tiers {
		rooms[i] = tier.Room
	}

	return rooms
}

func Nightly(location, room string) (float64, bool) {
	for _, tier := range Tiers(location) {
		if tier.Room == room {
			return tier.Nightly, true
		}
	}

	return 0, false
}

// Nights counts whole days between the two instants, rounding down. A missing date or a
// check-out before check-in gives 0.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	days := math.Floor(checkOut.Sub(checkIn).Hours() / 24)
	if days < 0 {
		return 0
	}

	return int(days)
}

// Total is nights times the nightly rate, 0 for an unknown location or room.
func Total(location, room string, nights int) float64 {
	nightly, ok := Nightly(location, room)
	if !ok || nights <= 0 {
		return 0
	}

	return nightly * float64(nights)
}

func BookedDates() []string {
	return slices.Clone(bookedDates)
}

// IsBooked reports whether the calendar date of day is unavailable.
func IsBooked(day time.Time) bool {
	return slices.Contains(bookedDates, day.Format(time.DateOnly))
}
