package dto

// Request DTOs

type WizardDefaultsRequest struct {
	Time    string `json:"time" validate:"omitempty,datetime=15:04"`
	StaffID string `json:"staff_id"`
}

type OpenWizardRequest struct {
	Date     string                 `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Defaults *WizardDefaultsRequest `json:"defaults,omitempty"`
}

type SelectServiceRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
}

type SelectProfessionalRequest struct {
	ProfessionalID string `json:"professional_id" validate:"required"`
}

type SelectTimeSlotRequest struct {
	Label string `json:"label" validate:"required,datetime=15:04"`
}

type SelectClientRequest struct {
	ClientID string `json:"client_id" validate:"required"`
}

type NewClientRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type PaymentMethodRequest struct {
	Method string `json:"method" validate:"required,oneof=cash card"`
}

// Response DTOs

type WizardStateResponse struct {
	SessionID     string                     `json:"session_id"`
	Step          int                        `json:"step"`
	StepName      string                     `json:"step_name"`
	Service       *ServiceResponse           `json:"service,omitempty"`
	Professional  *StaffResponse             `json:"professional,omitempty"`
	TimeSlot      *AvailabilitySlotResponse  `json:"time_slot,omitempty"`
	ClientMode    string                     `json:"client_mode"`
	ClientName    string                     `json:"client_name,omitempty"`
	PaymentMethod string                     `json:"payment_method"`
	Services      []ServiceResponse          `json:"services,omitempty"`
	Professionals []StaffResponse            `json:"professionals,omitempty"`
	TimeSlots     []AvailabilitySlotResponse `json:"time_slots,omitempty"`
}

type WizardSubmitResponse struct {
	BookingID string `json:"booking_id,omitempty"`
	Message   string `json:"message"`
}
