package check_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/types"
)

// parseRequest валидирует запрос и возвращает запрошенный период
func parseRequest(req *Request) (domain.DateRange, error) {
	if strings.TrimSpace(req.RoomID) == "" {
		return domain.DateRange{}, fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	start, err := types.NewDateFromString(strings.TrimSpace(req.StartDate))
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: startDate: %v", ErrInvalidInput, err)
	}

	end, err := types.NewDateFromString(strings.TrimSpace(req.EndDate))
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: endDate: %v", ErrInvalidInput, err)
	}

	period := domain.DateRange{Start: start, End: end}
	if !period.IsValid() {
		return domain.DateRange{}, fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	return period, nil
}
