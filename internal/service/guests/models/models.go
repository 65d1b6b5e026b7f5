package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// FindOrCreateGuestRequest запрос на поиск или создание гостя
type FindOrCreateGuestRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	NationalID string `json:"nationalId" validate:"required,max=64"`
	Phone      string `json:"phone" validate:"required,max=32"`
}

// Normalize обрезает пробелы по краям всех полей
func (r *FindOrCreateGuestRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.NationalID = strings.TrimSpace(r.NationalID)
	r.Phone = strings.TrimSpace(r.Phone)
}

// FindOrCreateGuestResponse ответ с ID гостя
type FindOrCreateGuestResponse struct {
	GuestID string `json:"guestId"`
	Created bool   `json:"created"`
}

// GuestResponse ответ с данными гостя
type GuestResponse struct {
	ID         string    `json:"id"`
	NationalID string    `json:"nationalId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// GuestListResponse ответ со списком гостей
type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
}

// FromDomainGuest конвертирует domain модель в DTO
func FromDomainGuest(g *domain.Guest) *GuestResponse {
	if g == nil {
		return nil
	}
	return &GuestResponse{
		ID:         g.ID,
		NationalID: g.NationalID,
		Name:       g.Name,
		Phone:      g.Phone,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

// FromDomainGuestList конвертирует список domain моделей в DTO
func FromDomainGuestList(guests []*domain.Guest) *GuestListResponse {
	resp := &GuestListResponse{Guests: make([]GuestResponse, 0, len(guests))}
	for _, g := range guests {
		resp.Guests = append(resp.Guests, *FromDomainGuest(g))
	}
	return resp
}
