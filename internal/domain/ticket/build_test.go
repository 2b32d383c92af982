package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func buildInput() map[string]any {
	return Normalize(map[string]any{
		"equipment":         "Solar Panel Array",
		"category":          "Production Impacting",
		"issue_start_time":  "2024-01-01T10:00:00",
		"issue_description": "Inverter fault",
	})
}

func TestBuild_OwnerFromCaller(t *testing.T) {
	input := buildInput()
	// A user_id in the payload must never decide ownership.
	input["user_id"] = float64(99)

	built := Build(input, 7)

	assert.Equal(t, uint(7), built.UserID)
}

func TestBuild_DefaultsAndCodes(t *testing.T) {
	built := Build(buildInput(), 1)

	assert.Equal(t, StatusOpen, built.TicketStatus)
	assert.Equal(t, 1, built.StatusCode)
	assert.Equal(t, "Production Impacting", built.Category)
	assert.Equal(t, 1, built.CategoryCode)
	assert.Equal(t, "Medium", built.Priority)
	assert.Equal(t, "No", built.SiteOutage)
	assert.Equal(t, "Asset 1", built.AssetName)
	assert.Nil(t, built.IssueNotes)
	assert.Nil(t, built.KilowattsDown)
}

func TestApply_CloseStampsClosedAt(t *testing.T) {
	tk := Build(buildInput(), 1)
	now := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	Apply(tk, map[string]any{"ticket_status": StatusClosed}, now)

	assert.Equal(t, StatusClosed, tk.TicketStatus)
	assert.Equal(t, 2, tk.StatusCode)
	if assert.NotNil(t, tk.ClosedAt) {
		assert.Equal(t, now, *tk.ClosedAt)
	}
}

func TestApply_ReopenClearsClosedAt(t *testing.T) {
	tk := Build(buildInput(), 1)
	now := time.Now()
	Apply(tk, map[string]any{"ticket_status": StatusClosed}, now)

	Apply(tk, map[string]any{"ticket_status": StatusOpen}, now.Add(time.Hour))

	assert.Equal(t, StatusOpen, tk.TicketStatus)
	assert.Nil(t, tk.ClosedAt)
}

func TestApply_ExplicitClosedAtWins(t *testing.T) {
	tk := Build(buildInput(), 1)
	now := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	Apply(tk, map[string]any{
		"ticket_status": StatusClosed,
		"closed_at":     "2024-01-31T23:59:00",
	}, now)

	if assert.NotNil(t, tk.ClosedAt) {
		assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC), *tk.ClosedAt)
	}
}

func TestApply_IgnoresFieldsOutsideAllowList(t *testing.T) {
	tk := Build(buildInput(), 1)

	Apply(tk, map[string]any{"customer_name": "Globex", "equipment": "Transformer"}, time.Now())

	assert.Empty(t, tk.CustomerName)
	assert.Equal(t, "Solar Panel Array", tk.Equipment)
}

func TestApply_KilowattsDownFromString(t *testing.T) {
	tk := Build(buildInput(), 1)

	Apply(tk, map[string]any{"kilowatts_down": "12.5"}, time.Now())

	if assert.NotNil(t, tk.KilowattsDown) {
		assert.Equal(t, 12.5, *tk.KilowattsDown)
	}
}

func TestApply_EmptyStringClearsPointerField(t *testing.T) {
	tk := Build(buildInput(), 1)
	notes := "old notes"
	tk.IssueNotes = &notes

	Apply(tk, map[string]any{"issue_notes": ""}, time.Now())

	assert.Nil(t, tk.IssueNotes)
}
