package entity

import (
	"strings"
	"time"
)

// WizardStep is the booking wizard's position in the five-step flow.
// Steps only increase on forward navigation and decrease via explicit back.
type WizardStep int

const (
	StepSelectService WizardStep = iota + 1
	StepSelectProfessional
	StepSelectTimeSlot
	StepClientInfo
	StepPaymentConfirm
)

func (s WizardStep) String() string {
	switch s {
	case StepSelectService:
		return "select_service"
	case StepSelectProfessional:
		return "select_professional"
	case StepSelectTimeSlot:
		return "select_time_slot"
	case StepClientInfo:
		return "client_info"
	case StepPaymentConfirm:
		return "payment_confirm"
	}
	return "unknown"
}

// ClientMode is the nested mini state machine inside the client-info step.
// The three modes are mutually exclusive.
type ClientMode string

const (
	ClientModeSearch   ClientMode = "search"
	ClientModeSelected ClientMode = "selected"
	ClientModeNew      ClientMode = "new"
)

// AvailabilitySlot is one bookable time range returned by the backend.
type AvailabilitySlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Available bool      `json:"available"`
}

// WizardDefaults carries the (time, staff) pre-seed from a grid cell click.
// The time default is one-shot: it is cleared once it auto-advances a step
// and is not reapplied on later slot loads.
type WizardDefaults struct {
	SlotLabel string
	StaffID   string
}

// MatchesSlot reports whether an available slot starts at the default time.
func (d *WizardDefaults) MatchesSlot(slot AvailabilitySlot) bool {
	if d == nil || d.SlotLabel == "" {
		return false
	}
	index, ok := SlotIndexForLabel(d.SlotLabel)
	if !ok {
		return false
	}
	return slot.Available && SlotIndexForTime(slot.StartTime) == index
}

// BookingDraft is the wizard's working state. It is mutated only by the
// wizard and discarded on close, cancel or success.
type BookingDraft struct {
	Step           WizardStep
	Service        *Service
	Professional   *StaffMember
	TimeSlot       *AvailabilitySlot
	ClientMode     ClientMode
	ExistingClient *Client
	NewClient      *ClientRecord
	PaymentMethod  PaymentMethod
}

// NewBookingDraft starts a draft at the service step with cash preselected.
func NewBookingDraft() BookingDraft {
	return BookingDraft{
		Step:          StepSelectService,
		ClientMode:    ClientModeSearch,
		PaymentMethod: PaymentCash,
	}
}

// ClientResolved reports whether the draft carries a usable client identity:
// either a selected existing record or a complete new entry. New-client
// fields must be non-empty after trimming; whitespace does not count.
func (d *BookingDraft) ClientResolved() bool {
	switch d.ClientMode {
	case ClientModeSelected:
		return d.ExistingClient != nil
	case ClientModeNew:
		return d.NewClient != nil &&
			strings.TrimSpace(d.NewClient.FirstName) != "" &&
			strings.TrimSpace(d.NewClient.Email) != "" &&
			strings.TrimSpace(d.NewClient.Phone) != ""
	}
	return false
}

// ClientRecord returns the submission identity for the resolved client.
func (d *BookingDraft) ClientRecord() (ClientRecord, bool) {
	switch d.ClientMode {
	case ClientModeSelected:
		if d.ExistingClient != nil {
			return RecordFromClient(d.ExistingClient), true
		}
	case ClientModeNew:
		if d.ClientResolved() {
			return *d.NewClient, true
		}
	}
	return ClientRecord{}, false
}

// ClientDisplayName is the name shown in the confirmation summary.
func (d *BookingDraft) ClientDisplayName() string {
	if record, ok := d.ClientRecord(); ok {
		if d.ClientMode == ClientModeSelected {
			return d.ExistingClient.FullName()
		}
		return record.FirstName
	}
	return ""
}
