package check_availability

import (
	checkAvailability "github.com/m04kA/SMC-HotelBooking/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID    string            `json:"roomId"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
	Available bool              `json:"available"`
	Conflict  *ConflictResponse `json:"conflict,omitempty"`
}

// ConflictResponse занятый период [startDate, endDate)
type ConflictResponse struct {
	BookingID string `json:"bookingId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		RoomID:    resp.RoomID,
		StartDate: resp.StartDate,
		EndDate:   resp.EndDate,
		Available: resp.Available,
	}
	if resp.Conflict != nil {
		result.Conflict = &ConflictResponse{
			BookingID: resp.Conflict.BookingID,
			StartDate: resp.Conflict.StartDate,
			EndDate:   resp.Conflict.EndDate,
		}
	}
	return result
}
