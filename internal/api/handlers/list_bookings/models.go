package list_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
)

// queryParam возвращает указатель на значение параметра или nil, если его нет
func queryParam(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}

// ToServiceRequest собирает фильтр из query-параметров ?roomId=&startDate=&endDate=
func ToServiceRequest(q url.Values) *models.ListBookingsRequest {
	return &models.ListBookingsRequest{
		RoomID:    queryParam(q, "roomId"),
		StartDate: queryParam(q, "startDate"),
		EndDate:   queryParam(q, "endDate"),
	}
}
