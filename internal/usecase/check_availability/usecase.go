package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
)

// UseCase use case для предварительной проверки доступности номера.
// Результат носит рекомендательный характер: окончательная проверка
// выполняется при создании бронирования.
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute проверяет, свободен ли номер на период [StartDate, EndDate)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%s, start=%s, end=%s", req.RoomID, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	period, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование номера
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования номера, пересекающиеся с периодом
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		RoomID: &room.ID,
		Period: &period,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp := &Response{
		RoomID:    room.ID,
		StartDate: period.Start.String(),
		EndDate:   period.End.String(),
		Available: true,
	}

	// 4. Ищем пересечение
	if conflict := domain.FirstConflict(bookings, period); conflict != nil {
		resp.Available = false
		resp.Conflict = &Conflict{
			BookingID: conflict.ID,
			StartDate: conflict.BookingDate.String(),
			EndDate:   conflict.EndDate().String(),
		}
		uc.logger.Info("CheckAvailability: room=%s is busy, conflicts with booking id=%s [%s)",
			room.ID, conflict.ID, conflict.Period().String())
	}

	uc.metrics.AvailabilityChecked(resp.Available)
	return resp, nil
}
