package list_guests

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/service/guests/models"
)

type GuestService interface {
	GetAllGuests(ctx context.Context) (*models.GuestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
