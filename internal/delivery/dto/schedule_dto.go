package dto

// Request DTOs

type SelectDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type StepDateRequest struct {
	Direction string `json:"direction" validate:"required,oneof=prev next"`
}

// Response DTOs

type StaffResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Initials     string  `json:"initials"`
	Color        string  `json:"color"`
	Position     string  `json:"position"`
	ProfileImage *string `json:"profile_image,omitempty"`
	Selected     bool    `json:"selected"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}

type TimeSlotResponse struct {
	Index       int    `json:"index"`
	Label       string `json:"label"`
	IsHourStart bool   `json:"is_hour_start"`
}

type GridCellResponse struct {
	StaffID     string  `json:"staff_id"`
	SlotIndex   int     `json:"slot_index"`
	BookingID   string  `json:"booking_id"`
	ServiceID   string  `json:"service_id,omitempty"`
	ClientName  string  `json:"client_name"`
	ServiceName string  `json:"service_name"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}

type GridResponse struct {
	Date             string             `json:"date"`
	Slots            []TimeSlotResponse `json:"slots"`
	Staff            []StaffResponse    `json:"staff"`
	Cells            []GridCellResponse `json:"cells"`
	CurrentSlotIndex *int               `json:"current_slot_index,omitempty"`
	CurrentMinute    *int               `json:"current_minute,omitempty"`
}

type DateResponse struct {
	Date string `json:"date"`
}
