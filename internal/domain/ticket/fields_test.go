package ticket

import (
	"testing"
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_AliasMapping(t *testing.T) {
	out := Normalize(map[string]any{
		"issueStartTime":   "2024-01-01T10:00:00",
		"issueDescription": "Inverter fault",
		"caseNumber":       "C-42",
	})

	assert.Equal(t, "2024-01-01T10:00:00", out["issue_start_time"])
	assert.Equal(t, "Inverter fault", out["issue_description"])
	assert.Equal(t, "C-42", out["case_number"])
	assert.NotContains(t, out, "issueStartTime")
	assert.NotContains(t, out, "caseNumber")
}

func TestNormalize_CanonicalKeyWins(t *testing.T) {
	out := Normalize(map[string]any{
		"ticketStatus":  "Pending",
		"ticket_status": "Closed",
	})

	assert.Equal(t, "Closed", out["ticket_status"])
}

func TestNormalize_Defaults(t *testing.T) {
	out := Normalize(map[string]any{})

	assert.Equal(t, config.DefaultCustomerType, out["customer_type"])
	assert.Equal(t, AssetNameDefault, out["asset_name"])
	assert.Equal(t, SiteOutageDefault, out["site_outage"])
	assert.Equal(t, StatusOpen, out["ticket_status"])
	assert.Equal(t, PriorityDefault, out["priority"])
}

func TestNormalize_DefaultsDoNotOverride(t *testing.T) {
	out := Normalize(map[string]any{
		"ticket_status": "Pending",
		"priority":      "High",
	})

	assert.Equal(t, "Pending", out["ticket_status"])
	assert.Equal(t, "High", out["priority"])
}

func TestNormalizeUpdate_NoDefaults(t *testing.T) {
	out := NormalizeUpdate(map[string]any{"issueNotes": "checked"})

	assert.Equal(t, map[string]any{"issue_notes": "checked"}, out)
}

func TestMissingRequired(t *testing.T) {
	missing := MissingRequired(Normalize(map[string]any{
		"equipment": "Inverter",
	}))

	assert.Equal(t, []string{"category", "issue_description", "issue_start_time"}, missing)
}

func TestMissingRequired_EmptyStringCounts(t *testing.T) {
	missing := MissingRequired(Normalize(map[string]any{
		"equipment":         "",
		"category":          "Production Impacting",
		"issue_start_time":  "2024-01-01T10:00:00",
		"issue_description": "down",
	}))

	assert.Equal(t, []string{"equipment"}, missing)
}

func TestMissingRequired_AllPresent(t *testing.T) {
	missing := MissingRequired(Normalize(map[string]any{
		"equipment":         "Inverter",
		"category":          "Production Impacting",
		"issue_start_time":  "2024-01-01T10:00:00",
		"issue_description": "down",
	}))

	assert.Empty(t, missing)
}

func TestCategoryAndStatusCodes(t *testing.T) {
	assert.Equal(t, 1, CategoryCode(CategoryProductionImpacting))
	assert.Equal(t, 2, CategoryCode(CategoryNonProduction))
	assert.Equal(t, 3, CategoryCode(CategoryPreventive))
	assert.Equal(t, 1, CategoryCode("Something Else"))

	assert.Equal(t, 1, StatusCode(StatusOpen))
	assert.Equal(t, 2, StatusCode(StatusClosed))
	assert.Equal(t, 3, StatusCode(StatusPending))
	assert.Equal(t, 1, StatusCode("Unknown"))
}

func TestStringify(t *testing.T) {
	s := "abc"
	f := 7.5

	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "abc", Stringify("abc"))
	assert.Equal(t, "5", Stringify(float64(5)))
	assert.Equal(t, "7.5", Stringify(7.5))
	assert.Equal(t, "abc", Stringify(&s))
	assert.Equal(t, "7.5", Stringify(&f))
	assert.Equal(t, "", Stringify((*string)(nil)))
	assert.Equal(t, "", Stringify((*float64)(nil)))
}

func TestDiff_ReportsOnlyChangedFields(t *testing.T) {
	current := &Ticket{
		TicketStatus:     StatusOpen,
		Priority:         "Medium",
		IssueDescription: "down",
	}

	changes := Diff(current, map[string]any{
		"ticket_status":     "Closed",
		"priority":          "Medium",
		"issue_description": "down",
	})

	assert.Len(t, changes, 1)
	assert.Equal(t, Change{Old: "Open", New: "Closed"}, changes["ticket_status"])
}

func TestDiff_NilAndEmptyAreEqual(t *testing.T) {
	current := &Ticket{IssueNotes: nil}

	changes := Diff(current, map[string]any{"issue_notes": ""})

	assert.Empty(t, changes)
}

func TestDiff_NumericStringEquality(t *testing.T) {
	kw := 5.0
	current := &Ticket{KilowattsDown: &kw}

	// 5 and 5.0 stringify identically, so no change is recorded.
	changes := Diff(current, map[string]any{"kilowatts_down": float64(5)})
	assert.Empty(t, changes)

	changes = Diff(current, map[string]any{"kilowatts_down": 7.5})
	assert.Equal(t, Change{Old: "5", New: "7.5"}, changes["kilowatts_down"])
}

func TestDiff_IgnoresNonAllowListedFields(t *testing.T) {
	current := &Ticket{CustomerName: "Acme"}

	changes := Diff(current, map[string]any{"customer_name": "Globex", "user_id": float64(99)})

	assert.Empty(t, changes)
}

func TestDiff_ClosedAtFormatting(t *testing.T) {
	closed := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	current := &Ticket{ClosedAt: &closed}

	changes := Diff(current, map[string]any{"closed_at": "2024-03-01T12:30:00"})
	assert.Empty(t, changes)

	changes = Diff(current, map[string]any{"closed_at": "2024-03-02T09:00:00"})
	assert.Equal(t, Change{Old: "2024-03-01T12:30:00", New: "2024-03-02T09:00:00"}, changes["closed_at"])
}
