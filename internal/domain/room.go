package domain

// RoomCategory represents the category of a room
type RoomCategory string

const (
	CategoryDouble     RoomCategory = "Double"
	CategoryCouple     RoomCategory = "Couple"
	CategoryConnecting RoomCategory = "Connecting"
)

// RoomCategories closed set of supported categories, in display order
var RoomCategories = []RoomCategory{
	CategoryDouble,
	CategoryCouple,
	CategoryConnecting,
}

// IsValid returns true if the category belongs to the closed set
func (c RoomCategory) IsValid() bool {
	for _, known := range RoomCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Room represents a hotel room. Immutable once the catalog is loaded.
type Room struct {
	ID         string
	RoomNumber string
	Category   RoomCategory
	Beds       int
}

// MaxOccupants returns how many people the room can host
func (r *Room) MaxOccupants() int {
	return r.Beds * OccupantsPerBed
}

// CanHost returns true if numberOfPeople fits the room
func (r *Room) CanHost(numberOfPeople int) bool {
	return numberOfPeople >= 1 && numberOfPeople <= r.MaxOccupants()
}

// RoomFilter фильтр для списка номеров
type RoomFilter struct {
	Category *RoomCategory // Фильтр по категории (опционально)
}

// Matches returns true if the room passes the filter
func (f RoomFilter) Matches(room *Room) bool {
	if f.Category != nil && room.Category != *f.Category {
		return false
	}
	return true
}
