package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// UseCase use case для поиска номеров, свободных на период
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает номера выбранной категории, свободные на весь период.
// Без периода возвращает все номера категории.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}

	// 1. Валидация входных данных
	filter, period, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номера нужной категории
	rooms, err := uc.roomRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	resp := &Response{Rooms: make([]Room, 0, len(rooms))}

	// 3. Исключаем номера, занятые хотя бы на одну ночь периода
	busy := make(map[string]struct{})
	if period != nil {
		resp.StartDate = period.Start.String()
		resp.EndDate = period.End.String()

		bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{Period: period})
		if err != nil {
			uc.logger.Error("GetAvailableRooms: failed to get bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		for _, b := range bookings {
			busy[b.RoomID] = struct{}{}
		}
	}

	for _, room := range rooms {
		if _, ok := busy[room.ID]; ok {
			continue
		}
		resp.Rooms = append(resp.Rooms, Room{
			ID:           room.ID,
			RoomNumber:   room.RoomNumber,
			Category:     string(room.Category),
			Beds:         room.Beds,
			MaxOccupants: room.MaxOccupants(),
		})
	}

	uc.logger.Info("GetAvailableRooms: found %d of %d rooms, period=%s..%s",
		len(resp.Rooms), len(rooms), resp.StartDate, resp.EndDate)
	return resp, nil
}
