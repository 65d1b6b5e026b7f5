package domain

import "time"

// Guest represents a hotel guest, deduplicated by NationalID
type Guest struct {
	ID         string
	NationalID string
	Name       string
	Phone      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
