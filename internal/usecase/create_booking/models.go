package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID         string   `validate:"required"` // ID номера
	GuestID        string   // ID гостя (опционально, иначе гость ищется/создается по NationalID)
	GuestName      string   `validate:"required,max=200"` // Имя гостя
	NationalID     string   `validate:"required,max=64"`  // Национальный ID гостя
	Phone          string   `validate:"required,max=32"`  // Телефон гостя
	NumberOfPeople int      `validate:"gte=1"`            // Количество гостей
	TotalAmount    float64  `validate:"gte=0"`            // Полная стоимость
	PaidAmount     *float64 `validate:"omitempty,gte=0"`  // Оплачено (опционально, по умолчанию 0)
	BookingDate    string   `validate:"required"`         // Дата заезда "2024-06-10"
	DurationDays   int      `validate:"gte=1,lte=365"`    // Количество ночей
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID      string // ID созданного бронирования
	RoomID  string // ID номера
	GuestID string // ID гостя

	// Денормализованные данные гостя
	GuestName  string
	NationalID string
	Phone      string

	NumberOfPeople int
	TotalAmount    float64
	PaidAmount     float64
	BookingDate    string // Дата заезда
	EndDate        string // Дата выезда, не включается
	DurationDays   int

	CreatedAt time.Time
}
