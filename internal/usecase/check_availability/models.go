package check_availability

// Request модель запроса на проверку доступности номера
type Request struct {
	RoomID    string // ID номера
	StartDate string // Дата заезда "2024-06-10"
	EndDate   string // Дата выезда, не включается
}

// Response модель ответа с результатом проверки
type Response struct {
	RoomID    string
	StartDate string
	EndDate   string
	Available bool
	Conflict  *Conflict // Первое пересекающееся бронирование, если номер занят
}

// Conflict пересекающееся бронирование и занятый им период [StartDate, EndDate)
type Conflict struct {
	BookingID string
	StartDate string
	EndDate   string
}
