package catalog

import "errors"

var (
	// ErrEmptyCatalog возвращается, если источник не вернул ни одного номера
	ErrEmptyCatalog = errors.New("catalog: no rooms loaded")

	// ErrSourceFailed возвращается при ошибке чтения источника
	ErrSourceFailed = errors.New("catalog: failed to read rooms source")

	// ErrInvalidRoom возвращается, если номер из источника не удалось добавить в каталог
	ErrInvalidRoom = errors.New("catalog: invalid room")
)
