package domain

// Business validation constants
const (
	// OccupantsPerBed сколько гостей размещается на одной кровати
	OccupantsPerBed = 2
)
