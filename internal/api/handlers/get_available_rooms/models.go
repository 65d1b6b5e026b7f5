package get_available_rooms

import (
	"net/url"

	getAvailableRooms "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_available_rooms"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	StartDate string         `json:"startDate,omitempty"`
	EndDate   string         `json:"endDate,omitempty"`
	Rooms     []RoomResponse `json:"rooms"`
}

// RoomResponse HTTP response model
type RoomResponse struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"roomNumber"`
	Category     string `json:"category"`
	Beds         int    `json:"beds"`
	MaxOccupants int    `json:"maxOccupants"`
}

func optional(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}

// ToUseCaseRequest собирает запрос из query-параметров ?category=&startDate=&endDate=
func ToUseCaseRequest(q url.Values) *getAvailableRooms.Request {
	return &getAvailableRooms.Request{
		Category:  optional(q, "category"),
		StartDate: optional(q, "startDate"),
		EndDate:   optional(q, "endDate"),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	result := &AvailableRoomsResponse{
		StartDate: resp.StartDate,
		EndDate:   resp.EndDate,
		Rooms:     make([]RoomResponse, 0, len(resp.Rooms)),
	}
	for _, r := range resp.Rooms {
		result.Rooms = append(result.Rooms, RoomResponse{
			ID:           r.ID,
			RoomNumber:   r.RoomNumber,
			Category:     r.Category,
			Beds:         r.Beds,
			MaxOccupants: r.MaxOccupants,
		})
	}
	return result
}
