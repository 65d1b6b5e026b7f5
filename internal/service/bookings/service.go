package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListBookings получает бронирования в порядке создания
// Поддерживает фильтрацию по номеру и по пересечению с периодом
//
// Примеры использования:
// - Все бронирования: ListBookings(ctx, &ListBookingsRequest{})
// - Бронирования номера: указать RoomID
// - Бронирования, задевающие дату: только StartDate
// - Бронирования, пересекающиеся с периодом: StartDate и EndDate
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	logMsg := "ListBookings: fetching bookings"
	if filter.RoomID != nil {
		logMsg += fmt.Sprintf(", room=%s", *filter.RoomID)
	}
	if filter.Period != nil {
		logMsg += fmt.Sprintf(", period=%s", filter.Period.String())
	}
	s.logger.Info("%s", logMsg)

	// Фильтр по несуществующему номеру - ошибка, а не пустой список
	if filter.RoomID != nil {
		if _, err := s.roomRepo.GetByID(ctx, *filter.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				s.logger.Warn("ListBookings: room id=%s not found", *filter.RoomID)
				return nil, ErrRoomNotFound
			}
			s.logger.Error("ListBookings: failed to get room id=%s: %v", *filter.RoomID, err)
			return nil, fmt.Errorf("%w: ListBookings - room repository error: %v", ErrInternal, err)
		}
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}
