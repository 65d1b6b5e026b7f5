package models

import (
	"errors"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

var (
	// ErrInvalidCategory возвращается при неизвестной категории номера
	ErrInvalidCategory = errors.New("invalid room category")
)

// ListRoomsRequest запрос на получение списка номеров
type ListRoomsRequest struct {
	Category *string `json:"category,omitempty"` // Фильтр по категории (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRoomsRequest) ToDomainFilter() (domain.RoomFilter, error) {
	var filter domain.RoomFilter
	if r == nil || r.Category == nil {
		return filter, nil
	}

	category, err := ToDomainRoomCategory(*r.Category)
	if err != nil {
		return filter, err
	}
	filter.Category = &category
	return filter, nil
}

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"roomNumber"`
	Category     string `json:"category"`
	Beds         int    `json:"beds"`
	MaxOccupants int    `json:"maxOccupants"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:           r.ID,
		RoomNumber:   r.RoomNumber,
		Category:     string(r.Category),
		Beds:         r.Beds,
		MaxOccupants: r.MaxOccupants(),
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, *FromDomainRoom(r))
	}
	return resp
}

// ToDomainRoomCategory конвертирует строку в domain.RoomCategory
func ToDomainRoomCategory(category string) (domain.RoomCategory, error) {
	c := domain.RoomCategory(category)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
