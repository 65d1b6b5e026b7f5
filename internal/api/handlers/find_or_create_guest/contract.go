package find_or_create_guest

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/service/guests/models"
)

type GuestService interface {
	FindOrCreateGuest(ctx context.Context, req *models.FindOrCreateGuestRequest) (*models.FindOrCreateGuestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
