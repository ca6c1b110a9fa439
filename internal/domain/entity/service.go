package entity

// Service is a bookable salon service from the catalog.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DurationMin int     `json:"duration"`
	Price       float64 `json:"price"`
}
