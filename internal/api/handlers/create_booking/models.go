package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-HotelBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID         string   `json:"roomId"`
	GuestID        string   `json:"guestId,omitempty"`
	GuestName      string   `json:"guestName"`
	NationalID     string   `json:"nationalId"`
	Phone          string   `json:"phone"`
	NumberOfPeople int      `json:"numberOfPeople"`
	TotalAmount    float64  `json:"totalAmount"`
	PaidAmount     *float64 `json:"paidAmount,omitempty"`
	BookingDate    string   `json:"bookingDate"` // "2024-06-10"
	DurationDays   int      `json:"durationDays"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                string  `json:"id"`
	RoomID            string  `json:"roomId"`
	GuestID           string  `json:"guestId"`
	GuestName         string  `json:"guestName"`
	NationalID        string  `json:"nationalId"`
	Phone             string  `json:"phone"`
	NumberOfPeople    int     `json:"numberOfPeople"`
	TotalAmount       float64 `json:"totalAmount"`
	PaidAmount        float64 `json:"paidAmount"`
	OutstandingAmount float64 `json:"outstandingAmount"`
	BookingDate       string  `json:"bookingDate"`
	EndDate           string  `json:"endDate"`
	DurationDays      int     `json:"durationDays"`
	CreatedAt         string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата передается строкой и разбирается в use case.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		RoomID:         r.RoomID,
		GuestID:        r.GuestID,
		GuestName:      r.GuestName,
		NationalID:     r.NationalID,
		Phone:          r.Phone,
		NumberOfPeople: r.NumberOfPeople,
		TotalAmount:    r.TotalAmount,
		PaidAmount:     r.PaidAmount,
		BookingDate:    r.BookingDate,
		DurationDays:   r.DurationDays,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		RoomID:            resp.RoomID,
		GuestID:           resp.GuestID,
		GuestName:         resp.GuestName,
		NationalID:        resp.NationalID,
		Phone:             resp.Phone,
		NumberOfPeople:    resp.NumberOfPeople,
		TotalAmount:       resp.TotalAmount,
		PaidAmount:        resp.PaidAmount,
		OutstandingAmount: resp.TotalAmount - resp.PaidAmount,
		BookingDate:       resp.BookingDate,
		EndDate:           resp.EndDate,
		DurationDays:      resp.DurationDays,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
