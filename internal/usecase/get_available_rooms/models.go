package get_available_rooms

// Request модель запроса на поиск свободных номеров
type Request struct {
	Category  *string // Категория номера (опционально)
	StartDate *string // Дата заезда (опционально)
	EndDate   *string // Дата выезда, не включается (опционально, по умолчанию StartDate + 1 день)
}

// Response модель ответа со списком свободных номеров
type Response struct {
	StartDate string // Пусто, если период не задан
	EndDate   string
	Rooms     []Room
}

// Room модель свободного номера
type Room struct {
	ID           string
	RoomNumber   string
	Category     string
	Beds         int
	MaxOccupants int
}
