package catalog

import (
	"context"
	"fmt"
)

// Load читает номера из источника и добавляет их в каталог.
// Первый некорректный или повторяющийся номер прерывает загрузку.
func Load(ctx context.Context, src Source, dst RoomWriter, logger Logger) (int, error) {
	rooms, err := src.Rooms(ctx)
	if err != nil {
		logger.Error("LoadCatalog: failed to read source: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrSourceFailed, err)
	}
	if len(rooms) == 0 {
		logger.Warn("LoadCatalog: source returned no rooms")
		return 0, ErrEmptyCatalog
	}

	for i, room := range rooms {
		if err := dst.Add(room); err != nil {
			logger.Error("LoadCatalog: room #%d (number=%s) rejected: %v", i+1, room.RoomNumber, err)
			return i, fmt.Errorf("%w: %v", ErrInvalidRoom, err)
		}
	}

	logger.Info("LoadCatalog: loaded %d rooms", len(rooms))
	return len(rooms), nil
}
