package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrDuplicateRoom возвращается при повторной загрузке номера с тем же ID или номером
	ErrDuplicateRoom = errors.New("room.repository: duplicate room")

	// ErrInvalidRoom возвращается при загрузке некорректного номера
	ErrInvalidRoom = errors.New("room.repository: invalid room")
)
