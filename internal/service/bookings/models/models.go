package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
)

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	RoomID    *string `json:"roomId,omitempty"`    // Фильтр по номеру (опционально)
	StartDate *string `json:"startDate,omitempty"` // Начало периода "2024-06-10" (опционально)
	EndDate   *string `json:"endDate,omitempty"`   // Конец периода, не включается (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр.
// Если указана только дата начала, период равен одним суткам.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter
	if r == nil {
		return filter, nil
	}

	if r.RoomID != nil {
		roomID := strings.TrimSpace(*r.RoomID)
		if roomID != "" {
			filter.RoomID = &roomID
		}
	}

	period, err := domain.ParsePeriod(ptr.Value(r.StartDate), ptr.Value(r.EndDate))
	if err != nil {
		return filter, err
	}
	filter.Period = period

	return filter, nil
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID      string `json:"id"`
	RoomID  string `json:"roomId"`
	GuestID string `json:"guestId"`

	// Денормализованные данные гостя
	GuestName  string `json:"guestName"`
	NationalID string `json:"nationalId"`
	Phone      string `json:"phone"`

	NumberOfPeople    int     `json:"numberOfPeople"`
	TotalAmount       float64 `json:"totalAmount"`
	PaidAmount        float64 `json:"paidAmount"`
	OutstandingAmount float64 `json:"outstandingAmount"`
	IsFullyPaid       bool    `json:"isFullyPaid"`
	BookingDate       string  `json:"bookingDate"` // "2024-06-10"
	EndDate           string  `json:"endDate"`     // день выезда, не включается
	DurationDays      int     `json:"durationDays"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                b.ID,
		RoomID:            b.RoomID,
		GuestID:           b.GuestID,
		GuestName:         b.GuestName,
		NationalID:        b.NationalID,
		Phone:             b.Phone,
		NumberOfPeople:    b.NumberOfPeople,
		TotalAmount:       b.TotalAmount,
		PaidAmount:        b.PaidAmount,
		OutstandingAmount: b.OutstandingAmount(),
		IsFullyPaid:       b.IsFullyPaid(),
		BookingDate:       b.BookingDate.String(),
		EndDate:           b.EndDate().String(),
		DurationDays:      b.DurationDays,
		CreatedAt:         b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
