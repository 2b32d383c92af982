package ticket

import (
	"strconv"
	"time"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Build constructs a Ticket row from a normalized payload. The owner is always
// the authenticated caller; a user_id in the payload is ignored.
func Build(normalized map[string]any, ownerID uint) *Ticket {
	category := Stringify(normalized["category"])
	status := Stringify(normalized["ticket_status"])

	t := &Ticket{
		UserID:           ownerID,
		CustomerName:     Stringify(normalized["customer_name"]),
		CustomerType:     Stringify(normalized["customer_type"]),
		SiteName:         Stringify(normalized["site_name"]),
		AssetName:        Stringify(normalized["asset_name"]),
		Equipment:        Stringify(normalized["equipment"]),
		Category:         category,
		CategoryCode:     CategoryCode(category),
		TicketStatus:     status,
		StatusCode:       StatusCode(status),
		SiteOutage:       Stringify(normalized["site_outage"]),
		IssueStartTime:   Stringify(normalized["issue_start_time"]),
		IssueEndTime:     asStringPtr(normalized["issue_end_time"]),
		Duration:         asStringPtr(normalized["duration"]),
		Priority:         Stringify(normalized["priority"]),
		IssueDescription: Stringify(normalized["issue_description"]),
		IssueNotes:       asStringPtr(normalized["issue_notes"]),
		KilowattsDown:    asFloatPtr(normalized["kilowatts_down"]),
		CaseNumber:       asStringPtr(normalized["case_number"]),
	}
	return t
}

// Apply writes the allow-listed fields from a normalized update payload onto
// the row. Status changes keep StatusCode and ClosedAt in sync: closing stamps
// the close time, reopening clears it, unless the payload sets closed_at
// itself.
func Apply(t *Ticket, updates map[string]any, now time.Time) {
	_, explicitClose := updates["closed_at"]

	for _, field := range UpdatableFields {
		v, ok := updates[field]
		if !ok {
			continue
		}
		switch field {
		case "ticket_status":
			status := Stringify(v)
			if status != t.TicketStatus && !explicitClose {
				if status == StatusClosed {
					closed := now
					t.ClosedAt = &closed
				} else {
					t.ClosedAt = nil
				}
			}
			t.TicketStatus = status
			t.StatusCode = StatusCode(status)
		case "closed_at":
			t.ClosedAt = asTimePtr(v)
		case "issue_start_time":
			t.IssueStartTime = Stringify(v)
		case "issue_end_time":
			t.IssueEndTime = asStringPtr(v)
		case "issue_description":
			t.IssueDescription = Stringify(v)
		case "issue_notes":
			t.IssueNotes = asStringPtr(v)
		case "priority":
			t.Priority = Stringify(v)
		case "kilowatts_down":
			t.KilowattsDown = asFloatPtr(v)
		case "case_number":
			t.CaseNumber = asStringPtr(v)
		case "site_outage":
			t.SiteOutage = Stringify(v)
		}
	}
}

func asStringPtr(v any) *string {
	if v == nil {
		return nil
	}
	s := Stringify(v)
	if s == "" {
		return nil
	}
	return &s
}

func asFloatPtr(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return &t
	case int:
		f := float64(t)
		return &f
	case string:
		if t == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return &f
		}
		return nil
	case *float64:
		return t
	default:
		return nil
	}
}

func asTimePtr(v any) *time.Time {
	s := Stringify(v)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return &parsed
		}
	}
	return nil
}
