package get_available_rooms

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
)

// parseRequest конвертирует запрос в фильтр номеров и необязательный период
func parseRequest(req *Request) (domain.RoomFilter, *domain.DateRange, error) {
	var filter domain.RoomFilter

	if category := strings.TrimSpace(ptr.Value(req.Category)); category != "" {
		c := domain.RoomCategory(category)
		if !c.IsValid() {
			return filter, nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
		}
		filter.Category = &c
	}

	period, err := domain.ParsePeriod(ptr.Value(req.StartDate), ptr.Value(req.EndDate))
	if err != nil {
		return filter, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return filter, period, nil
}
