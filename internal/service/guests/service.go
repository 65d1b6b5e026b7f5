package guests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	guestRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/guest"
	"github.com/m04kA/SMC-HotelBooking/internal/service/guests/models"
)

// Service сервис реестра гостей
type Service struct {
	guestRepo GuestRepository
	validator Validator
	metrics   Metrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(
	guestRepo GuestRepository,
	validator Validator,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		guestRepo: guestRepo,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
	}
}

// FindOrCreateGuest возвращает ID гостя с указанным национальным ID.
// Если гость уже есть, его имя и телефон перезаписываются значениями из запроса.
// Повторный вызов с тем же национальным ID всегда возвращает тот же ID.
func (s *Service) FindOrCreateGuest(ctx context.Context, req *models.FindOrCreateGuestRequest) (*models.FindOrCreateGuestResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	req.Normalize()

	s.logger.Info("FindOrCreateGuest: nationalId=%s", req.NationalID)

	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("FindOrCreateGuest: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	guest, created, err := s.guestRepo.Upsert(ctx, req.NationalID, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, guestRepo.ErrEmptyNationalID) {
			return nil, fmt.Errorf("%w: nationalId is required", ErrInvalidInput)
		}
		s.logger.Error("FindOrCreateGuest: repository error for nationalId=%s: %v", req.NationalID, err)
		return nil, fmt.Errorf("%w: FindOrCreateGuest - repository error: %v", ErrInternal, err)
	}

	if created {
		s.metrics.GuestCreated()
		s.logger.Info("FindOrCreateGuest: created guest id=%s", guest.ID)
	} else {
		s.logger.Info("FindOrCreateGuest: updated guest id=%s", guest.ID)
	}

	return &models.FindOrCreateGuestResponse{
		GuestID: guest.ID,
		Created: created,
	}, nil
}

// GetAllGuests возвращает снимок всех гостей
func (s *Service) GetAllGuests(ctx context.Context) (*models.GuestListResponse, error) {
	guests, err := s.guestRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAllGuests: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllGuests - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllGuests: fetched %d guests", len(guests))
	return models.FromDomainGuestList(guests), nil
}

// GetGuestByNationalID ищет гостя по национальному ID (автозаполнение формы бронирования)
func (s *Service) GetGuestByNationalID(ctx context.Context, nationalID string) (*models.GuestResponse, error) {
	nationalID = strings.TrimSpace(nationalID)
	if nationalID == "" {
		return nil, fmt.Errorf("%w: nationalId is required", ErrInvalidInput)
	}

	guest, err := s.guestRepo.GetByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("GetGuestByNationalID: nationalId=%s not found", nationalID)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("GetGuestByNationalID: repository error for nationalId=%s: %v", nationalID, err)
		return nil, fmt.Errorf("%w: GetGuestByNationalID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainGuest(guest), nil
}
