package guest

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("guest.repository: guest not found")

	// ErrEmptyNationalID возвращается при попытке сохранить гостя без национального ID
	ErrEmptyNationalID = errors.New("guest.repository: national id is empty")
)
