// Package availability holds the booking-overlap decision and the price
// breakdown calculation. Both are pure; the repository layer is responsible
// for fetching the candidate bookings.
package availability

import (
	"time"

	"github.com/nattcha/hotel-booking-service/internal/models"
)

// Overlaps reports whether the half-open ranges [aIn, aOut) and [bIn, bOut)
// intersect. Back-to-back ranges, where one checkout equals the other
// check-in, do not overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// Conflicts reports whether any confirmed booking in the list overlaps the
// candidate range. Cancelled bookings never count.
func Conflicts(existing []models.Booking, checkIn, checkOut time.Time) bool {
	for _, b := range existing {
		if b.Status != models.StatusConfirmed {
			continue
		}
		if Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			return true
		}
	}
	return false
}

// Nights returns the stay length in nights, rounding partial days up.
// Callers must reject checkOut <= checkIn first; for any valid range the
// result is >= 1.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// Price builds the breakdown for a stay. Total is the sum of the two stored
// components rather than an independent price*nights*(1+rate) computation,
// so the stored fields can never drift apart.
func Price(pricePerNight float64, nights int, taxRate float64) models.PriceBreakdown {
	room := pricePerNight * float64(nights)
	tax := room * taxRate
	return models.PriceBreakdown{
		Room:  room,
		Tax:   tax,
		Total: room + tax,
	}
}
