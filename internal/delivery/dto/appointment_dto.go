package dto

// Request DTOs

// AppointmentListRequest is filled from query parameters.
type AppointmentListRequest struct {
	Search     string `json:"search"`
	Status     string `json:"status" validate:"omitempty,oneof=pending confirmed booked completed cancelled"`
	TeamMember string `json:"team_member"`
	SortBy     string `json:"sort_by" validate:"omitempty,oneof=scheduled_date created_date price duration"`
	SortDir    string `json:"sort_dir" validate:"omitempty,oneof=asc desc"`
}

// Response DTOs

type AppointmentRowResponse struct {
	ID          string  `json:"id"`
	Ref         string  `json:"ref"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	ScheduledAt string  `json:"scheduled_at"`
	Duration    int     `json:"duration"`
	TeamMember  string  `json:"team_member"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentRowResponse `json:"appointments"`
	Total        int                      `json:"total"`
}
