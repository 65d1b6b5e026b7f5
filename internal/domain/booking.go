package domain

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/pkg/types"
)

// Booking represents a room reservation for a span of nights
type Booking struct {
	ID      string
	RoomID  string
	GuestID string

	// Denormalized guest data at booking time, kept even if the guest changes later
	GuestName  string
	NationalID string
	Phone      string

	NumberOfPeople int
	TotalAmount    float64
	PaidAmount     float64
	BookingDate    types.Date // check-in
	DurationDays   int

	CreatedAt time.Time
}

// EndDate returns the checkout date (exclusive end of the stay)
func (b *Booking) EndDate() types.Date {
	return b.BookingDate.AddDays(b.DurationDays)
}

// Period returns the half-open interval occupied by the booking
func (b *Booking) Period() DateRange {
	return DateRange{Start: b.BookingDate, End: b.EndDate()}
}

// Overlaps returns true if the booking occupies any night of [start, end)
func (b *Booking) Overlaps(r DateRange) bool {
	return b.Period().Overlaps(r)
}

// OutstandingAmount returns how much is left to pay
func (b *Booking) OutstandingAmount() float64 {
	return b.TotalAmount - b.PaidAmount
}

// IsFullyPaid returns true if nothing is left to pay
func (b *Booking) IsFullyPaid() bool {
	return b.PaidAmount >= b.TotalAmount
}

// DateRange is a half-open calendar interval [Start, End)
type DateRange struct {
	Start types.Date
	End   types.Date
}

// IsValid returns true if End is strictly after Start
func (r DateRange) IsValid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && r.Start.IsBefore(r.End)
}

// Overlaps reports whether two half-open intervals share at least one day.
// A range ending on the day another starts does not overlap it.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.IsBefore(other.End) && other.Start.IsBefore(r.End)
}

// String returns the range as "start..end"
func (r DateRange) String() string {
	return r.Start.String() + ".." + r.End.String()
}

// BookingsFilter фильтр для списка бронирований
type BookingsFilter struct {
	RoomID *string    // Фильтр по номеру (опционально)
	Period *DateRange // Бронирования, пересекающиеся с периодом (опционально)
}

// Matches returns true if the booking passes the filter
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.RoomID != nil && b.RoomID != *f.RoomID {
		return false
	}
	if f.Period != nil && !b.Overlaps(*f.Period) {
		return false
	}
	return true
}

// FirstConflict returns the first booking that overlaps period, or nil if the
// period is free. Used both by advisory checks and at write time.
func FirstConflict(bookings []*Booking, period DateRange) *Booking {
	for _, b := range bookings {
		if b.Overlaps(period) {
			return b
		}
	}
	return nil
}
