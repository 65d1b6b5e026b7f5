package domain

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-HotelBooking/pkg/types"
)

var (
	// ErrInvalidPeriod возвращается при некорректной паре дат фильтра
	ErrInvalidPeriod = errors.New("invalid period")
)

// ParsePeriod parses an optional pair of YYYY-MM-DD dates into a half-open range.
// No dates at all yield nil. A start without an end covers a single night.
func ParsePeriod(startDate, endDate string) (*DateRange, error) {
	start := strings.TrimSpace(startDate)
	end := strings.TrimSpace(endDate)

	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" {
		return nil, errors.Join(ErrInvalidPeriod, errors.New("startDate is required when endDate is set"))
	}

	from, err := types.NewDateFromString(start)
	if err != nil {
		return nil, errors.Join(ErrInvalidPeriod, err)
	}

	to := from.AddDays(1)
	if end != "" {
		to, err = types.NewDateFromString(end)
		if err != nil {
			return nil, errors.Join(ErrInvalidPeriod, err)
		}
	}

	period := DateRange{Start: from, End: to}
	if !period.IsValid() {
		return nil, errors.Join(ErrInvalidPeriod, errors.New("endDate must be after startDate"))
	}
	return &period, nil
}
