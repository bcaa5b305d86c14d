package appointment

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanderIG123/stylists-api/internal/models"
)

var t0 = time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

func proposed(t *testing.T) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{
		StylistID:     1,
		Purpose:       "  Haircut ",
		Date:          "2025-06-01",
		Time:          "14:00",
		CustomerEmail: " Guest@Example.COM",
	}
	require.NoError(t, New(ap, t0))
	return ap
}

func TestNew_StartsPendingWithoutSuggestion(t *testing.T) {
	ap := proposed(t)

	assert.Equal(t, string(StatusPending), ap.Status)
	assert.Nil(t, ap.SuggestedDate)
	assert.Nil(t, ap.SuggestedTime)
	assert.Equal(t, "Haircut", ap.Purpose)
	assert.Equal(t, "guest@example.com", ap.CustomerEmail)
	assert.Equal(t, []json.RawMessage{}, ap.Services)
	assert.Equal(t, t0, ap.CreatedAt)
	assert.Equal(t, t0, ap.UpdatedAt)
}

func TestNew_RejectsMalformedInput(t *testing.T) {
	cases := map[string]models.Appointment{
		"blank purpose": {Purpose: "   ", Date: "2025-06-01", Time: "14:00"},
		"bad date":      {Purpose: "Cut", Date: "2025-13-01", Time: "14:00"},
		"short date":    {Purpose: "Cut", Date: "2025-6-1", Time: "14:00"},
		"bad time":      {Purpose: "Cut", Date: "2025-06-01", Time: "25:00"},
		"seconds":       {Purpose: "Cut", Date: "2025-06-01", Time: "14:00:00"},
	}
	for name, ap := range cases {
		t.Run(name, func(t *testing.T) {
			ap := ap
			assert.Error(t, New(&ap, t0))
		})
	}
}

func TestAcceptAndReject(t *testing.T) {
	ap := proposed(t)
	later := t0.Add(time.Hour)

	require.NoError(t, Accept(ap, later))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.Equal(t, later, ap.UpdatedAt)
	assert.Equal(t, "2025-06-01", ap.Date)

	require.NoError(t, Accept(ap, later.Add(time.Minute)))
	assert.Equal(t, string(StatusConfirmed), ap.Status, "accepting twice is harmless")

	require.NoError(t, Reject(ap, later.Add(2*time.Minute)))
	assert.Equal(t, string(StatusCancelled), ap.Status)
}

func TestSuggest_ReopensConfirmedAppointment(t *testing.T) {
	ap := proposed(t)
	require.NoError(t, Accept(ap, t0))

	require.NoError(t, Suggest(ap, "2025-06-02", "10:00", t0.Add(time.Hour)))
	assert.Equal(t, string(StatusPending), ap.Status)
	require.NotNil(t, ap.SuggestedDate)
	assert.Equal(t, "2025-06-02", *ap.SuggestedDate)
	assert.Equal(t, "10:00", *ap.SuggestedTime)
	assert.Equal(t, "2025-06-01", ap.Date, "original slot stays until accepted")
}

func TestSuggest_RejectsMalformedSlot(t *testing.T) {
	ap := proposed(t)
	before := ap.Clone()

	assert.ErrorIs(t, Suggest(ap, "tomorrow", "10:00", t0.Add(time.Hour)), ErrInvalidDateOrTime)
	assert.Equal(t, before, *ap)
}

func TestAcceptSuggestion_MovesSlot(t *testing.T) {
	ap := proposed(t)
	require.NoError(t, Suggest(ap, "2025-06-02", "10:00", t0))

	require.NoError(t, AcceptSuggestion(ap, t0.Add(time.Hour)))
	assert.Equal(t, "2025-06-02", ap.Date)
	assert.Equal(t, "10:00", ap.Time)
	assert.Nil(t, ap.SuggestedDate)
	assert.Nil(t, ap.SuggestedTime)
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestAcceptSuggestion_WithoutSuggestionLeavesRecordUnchanged(t *testing.T) {
	ap := proposed(t)
	before := ap.Clone()

	err := AcceptSuggestion(ap, t0.Add(time.Hour))
	assert.ErrorIs(t, err, ErrNoSuggestionPending)
	assert.Equal(t, before, *ap)
}

func TestAcceptSuggestion_SecondCallFails(t *testing.T) {
	ap := proposed(t)
	require.NoError(t, Suggest(ap, "2025-06-02", "10:00", t0))
	require.NoError(t, AcceptSuggestion(ap, t0))

	assert.ErrorIs(t, AcceptSuggestion(ap, t0), ErrNoSuggestionPending)
}

func TestSuggestThenRejectSuggestion_KeepsOriginalSlot(t *testing.T) {
	ap := proposed(t)
	require.NoError(t, Accept(ap, t0))

	require.NoError(t, Suggest(ap, "2025-07-15", "09:30", t0))
	require.NoError(t, RejectSuggestion(ap, t0))

	assert.Equal(t, "2025-06-01", ap.Date)
	assert.Equal(t, "14:00", ap.Time)
	assert.Nil(t, ap.SuggestedDate)
	assert.Nil(t, ap.SuggestedTime)
	assert.Equal(t, string(StatusPending), ap.Status)
}

func TestCancelledIsNotTerminal(t *testing.T) {
	ap := proposed(t)
	require.NoError(t, Reject(ap, t0))

	require.NoError(t, Suggest(ap, "2025-06-03", "11:00", t0))
	require.NoError(t, AcceptSuggestion(ap, t0))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}
