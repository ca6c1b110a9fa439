package dto

// Response DTOs

type WaitlistEntryResponse struct {
	ID          string  `json:"id"`
	Ref         string  `json:"ref"`
	ClientName  string  `json:"client_name"`
	TeamMembers string  `json:"team_members"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	FinalAmount float64 `json:"final_amount"`
	Duration    int     `json:"duration"`
}

type WaitlistResponse struct {
	Upcoming  []WaitlistEntryResponse `json:"upcoming"`
	Completed []WaitlistEntryResponse `json:"completed"`
	Booked    []WaitlistEntryResponse `json:"booked"`
}
