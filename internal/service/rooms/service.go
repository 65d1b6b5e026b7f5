package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/service/rooms/models"
)

// Service сервис каталога номеров
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// GetRoomByID получает номер по ID
func (s *Service) GetRoomByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	s.logger.Info("GetRoomByID: fetching room id=%s", id)

	if strings.TrimSpace(id) == "" {
		s.logger.Warn("GetRoomByID: empty room id")
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoomByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetRoomByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// ListRooms возвращает номера в порядке загрузки каталога.
// Опционально фильтрует по категории.
func (s *Service) ListRooms(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListRooms: invalid category=%s", *req.Category)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rooms, err := s.roomRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRooms: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}
