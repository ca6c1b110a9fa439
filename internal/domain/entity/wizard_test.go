package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingDraft(t *testing.T) {
	draft := NewBookingDraft()

	assert.Equal(t, StepSelectService, draft.Step)
	assert.Equal(t, ClientModeSearch, draft.ClientMode)
	assert.Equal(t, PaymentCash, draft.PaymentMethod)
	assert.False(t, draft.ClientResolved())
}

func TestDraftClientResolved(t *testing.T) {
	draft := NewBookingDraft()

	draft.ClientMode = ClientModeSelected
	assert.False(t, draft.ClientResolved())
	draft.ExistingClient = &Client{ID: "c-1", FirstName: "Mia", LastName: "Wong", Email: "mia@example.com", Phone: "555"}
	assert.True(t, draft.ClientResolved())

	draft = NewBookingDraft()
	draft.ClientMode = ClientModeNew
	draft.NewClient = &ClientRecord{FirstName: "Jo", Phone: "555"}
	assert.False(t, draft.ClientResolved(), "missing email")
	draft.NewClient.Email = "jo@example.com"
	assert.True(t, draft.ClientResolved())
}

func TestDraftClientResolvedRejectsWhitespaceFields(t *testing.T) {
	draft := NewBookingDraft()
	draft.ClientMode = ClientModeNew
	draft.NewClient = &ClientRecord{FirstName: "   ", Email: " \t", Phone: "  "}

	assert.False(t, draft.ClientResolved())

	draft.NewClient = &ClientRecord{FirstName: "Jo", Email: "jo@example.com", Phone: "   "}
	assert.False(t, draft.ClientResolved(), "whitespace-only phone")
}

func TestDraftClientRecord(t *testing.T) {
	draft := NewBookingDraft()
	draft.ClientMode = ClientModeSelected
	draft.ExistingClient = &Client{FirstName: "Mia", LastName: "Wong", Email: "mia@example.com", Phone: "555"}

	record, ok := draft.ClientRecord()
	require.True(t, ok)
	assert.Equal(t, "Mia", record.FirstName)
	assert.Equal(t, "Wong", record.LastName)
	assert.Equal(t, "Mia Wong", draft.ClientDisplayName())
}

func TestWizardDefaultsMatchesSlot(t *testing.T) {
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	slot := AvailabilitySlot{StartTime: start, EndTime: start.Add(15 * time.Minute), Available: true}

	defaults := &WizardDefaults{SlotLabel: "09:00"}
	assert.True(t, defaults.MatchesSlot(slot))

	assert.False(t, defaults.MatchesSlot(AvailabilitySlot{StartTime: start, Available: false}))
	assert.False(t, (&WizardDefaults{SlotLabel: "09:15"}).MatchesSlot(slot))
	assert.False(t, (&WizardDefaults{SlotLabel: "not-a-time"}).MatchesSlot(slot))
	assert.False(t, (&WizardDefaults{}).MatchesSlot(slot))
}
