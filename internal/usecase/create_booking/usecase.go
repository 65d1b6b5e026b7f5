package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	guestRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/guest"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	guestRepo    GuestRepository
	locker       RoomLocker
	validator    Validator
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location задает часовой пояс отеля, в котором вычисляется "сегодня".
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	guestRepo GuestRepository,
	locker RoomLocker,
	validator Validator,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		guestRepo:    guestRepo,
		locker:       locker,
		validator:    validator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и сохранение выполняются под блокировкой номера,
// поэтому два одновременных запроса на один номер не создадут двойное бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	normalizeRequest(req)

	uc.logger.Info("CreateBooking: room=%s, nationalId=%s, date=%s, days=%d, people=%d",
		req.RoomID, req.NationalID, req.BookingDate, req.DurationDays, req.NumberOfPeople)

	// 1. Валидация входных данных
	bookingDate, paidAmount, err := validateRequest(uc.validator, req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата заезда не может быть в прошлом
	today := types.DateOf(uc.timeProvider.Now().In(uc.location))
	if err := validateBookingDate(bookingDate, today); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Проверяем вместимость номера
	if err := validateCapacity(room, req.NumberOfPeople); err != nil {
		uc.logger.Warn("CreateBooking: capacity validation failed: %v", err)
		return nil, err
	}

	// 5. Если передан guestId, гость должен существовать и совпадать по национальному ID
	if req.GuestID != "" {
		if err := uc.checkGuest(ctx, req.GuestID, req.NationalID); err != nil {
			return nil, err
		}
	}

	period := domain.DateRange{Start: bookingDate, End: bookingDate.AddDays(req.DurationDays)}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Проверка пересечений и сохранение под блокировкой номера
	err = uc.locker.DoSerializable(ctx, room.ID, func(lockCtx context.Context) error {
		// 6.1. Получаем бронирования номера, пересекающиеся с периодом
		bookings, err := uc.bookingRepo.GetWithFilter(lockCtx, domain.BookingsFilter{
			RoomID: &room.ID,
			Period: &period,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Окончательная проверка доступности
		if conflict := domain.FirstConflict(bookings, period); conflict != nil {
			uc.logger.Warn("CreateBooking: room=%s not available for %s, conflicts with booking id=%s [%s)",
				room.ID, period.String(), conflict.ID, conflict.Period().String())
			return &ConflictError{
				RoomID:    room.ID,
				BookingID: conflict.ID,
				Start:     conflict.BookingDate,
				End:       conflict.EndDate(),
			}
		}

		// 6.3. Находим или создаем гостя только после успешной проверки,
		// чтобы неудачная попытка не меняла реестр гостей
		guestID := req.GuestID
		if guestID == "" {
			guest, created, err := uc.guestRepo.Upsert(lockCtx, req.NationalID, req.GuestName, req.Phone)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to upsert guest nationalId=%s: %v", req.NationalID, err)
				return fmt.Errorf("%w: failed to upsert guest: %v", ErrInternal, err)
			}
			if created {
				uc.metrics.GuestCreated()
			}
			guestID = guest.ID
		}

		// 6.4. Сохраняем бронирование с денормализацией данных гостя
		created, err := uc.bookingRepo.Create(lockCtx, &domain.Booking{
			RoomID:         room.ID,
			GuestID:        guestID,
			GuestName:      req.GuestName,
			NationalID:     req.NationalID,
			Phone:          req.Phone,
			NumberOfPeople: req.NumberOfPeople,
			TotalAmount:    req.TotalAmount,
			PaidAmount:     paidAmount,
			BookingDate:    bookingDate,
			DurationDays:   req.DurationDays,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrRoomNotAvailable) {
			uc.metrics.BookingConflict()
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: room lock failed: %v", err)
		return nil, fmt.Errorf("%w: room lock failed: %v", ErrInternal, err)
	}

	uc.metrics.BookingCreated(string(room.Category))
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:             result.ID,
		RoomID:         result.RoomID,
		GuestID:        result.GuestID,
		GuestName:      result.GuestName,
		NationalID:     result.NationalID,
		Phone:          result.Phone,
		NumberOfPeople: result.NumberOfPeople,
		TotalAmount:    result.TotalAmount,
		PaidAmount:     result.PaidAmount,
		BookingDate:    result.BookingDate.String(),
		EndDate:        result.EndDate().String(),
		DurationDays:   result.DurationDays,
		CreatedAt:      result.CreatedAt,
	}, nil
}

// checkGuest проверяет, что гость существует и относится к указанному национальному ID
func (uc *UseCase) checkGuest(ctx context.Context, guestID, nationalID string) error {
	guest, err := uc.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			uc.logger.Warn("CreateBooking: guest id=%s not found", guestID)
			return ErrGuestNotFound
		}
		uc.logger.Error("CreateBooking: failed to get guest id=%s: %v", guestID, err)
		return fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
	}

	if guest.NationalID != nationalID {
		uc.logger.Warn("CreateBooking: guest id=%s has another nationalId", guestID)
		return fmt.Errorf("%w: guestId does not match nationalId", ErrInvalidInput)
	}
	return nil
}
