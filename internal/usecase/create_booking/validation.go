package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
	"github.com/m04kA/SMC-HotelBooking/pkg/types"
)

// normalizeRequest обрезает пробелы в строковых полях
func normalizeRequest(req *Request) {
	req.RoomID = strings.TrimSpace(req.RoomID)
	req.GuestID = strings.TrimSpace(req.GuestID)
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.NationalID = strings.TrimSpace(req.NationalID)
	req.Phone = strings.TrimSpace(req.Phone)
	req.BookingDate = strings.TrimSpace(req.BookingDate)
}

// validateRequest валидирует входные данные запроса по тегам и бизнес-правилам,
// не зависящим от состояния системы. Возвращает дату заезда и сумму оплаты.
func validateRequest(v Validator, req *Request) (types.Date, float64, error) {
	if err := v.Struct(req); err != nil {
		return types.Date{}, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookingDate, err := types.NewDateFromString(req.BookingDate)
	if err != nil {
		return types.Date{}, 0, fmt.Errorf("%w: bookingDate: %v", ErrInvalidInput, err)
	}

	paid := ptr.Value(req.PaidAmount)
	if paid > req.TotalAmount {
		return types.Date{}, 0, fmt.Errorf("%w: paidAmount %.2f exceeds totalAmount %.2f",
			ErrInvalidInput, paid, req.TotalAmount)
	}

	return bookingDate, paid, nil
}

// validateBookingDate проверяет, что дата заезда не раньше сегодняшнего дня
func validateBookingDate(bookingDate, today types.Date) error {
	if bookingDate.IsBefore(today) {
		return fmt.Errorf("%w: bookingDate %s is in the past (today is %s)", ErrInvalidInput, bookingDate, today)
	}
	return nil
}

// validateCapacity проверяет, что количество гостей помещается в номер
func validateCapacity(room *domain.Room, numberOfPeople int) error {
	if !room.CanHost(numberOfPeople) {
		return fmt.Errorf("%w: room %s hosts at most %d people, got %d",
			ErrInvalidInput, room.RoomNumber, room.MaxOccupants(), numberOfPeople)
	}
	return nil
}
