package ticket

import (
	"fmt"
	"sort"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/config"
)

// fieldAliases maps the camelCase keys older clients still send to the
// canonical snake_case column names. Normalization happens once, here, instead
// of per-field fallback chains in the handlers.
var fieldAliases = map[string]string{
	"customerName":     "customer_name",
	"customerType":     "customer_type",
	"siteName":         "site_name",
	"assetName":        "asset_name",
	"siteOutage":       "site_outage",
	"issueStartTime":   "issue_start_time",
	"issueEndTime":     "issue_end_time",
	"issueDescription": "issue_description",
	"issueNotes":       "issue_notes",
	"ticketStatus":     "ticket_status",
	"kilowattsDown":    "kilowatts_down",
	"caseNumber":       "case_number",
	"closedAt":         "closed_at",
}

// requiredFields must be non-empty for ticket creation.
var requiredFields = []string{"equipment", "category", "issue_start_time", "issue_description"}

// categoryCodes and statusCodes resolve loosely-typed strings to the legacy
// numeric columns. Unrecognized values fall back to 1; that is deliberate, not
// a validation error.
var categoryCodes = map[string]int{
	CategoryProductionImpacting: 1,
	CategoryNonProduction:       2,
	CategoryPreventive:          3,
}

var statusCodes = map[string]int{
	StatusOpen:    1,
	StatusClosed:  2,
	StatusPending: 3,
}

// UpdatableFields is the allow-list for PUT /tickets/:id. Anything else in the
// payload is ignored, including user_id.
var UpdatableFields = []string{
	"ticket_status",
	"closed_at",
	"issue_start_time",
	"issue_end_time",
	"issue_description",
	"issue_notes",
	"priority",
	"kilowatts_down",
	"case_number",
	"site_outage",
}

func CategoryCode(name string) int {
	if code, ok := categoryCodes[name]; ok {
		return code
	}
	return 1
}

func StatusCode(name string) int {
	if code, ok := statusCodes[name]; ok {
		return code
	}
	return 1
}

// Normalize rewrites aliased keys to their canonical names and fills in
// defaults so the store always receives a complete row shape. Canonical keys
// win when both spellings are present.
func Normalize(raw map[string]any) map[string]any {
	out := NormalizeUpdate(raw)

	applyDefault(out, "customer_type", config.DefaultCustomerType)
	applyDefault(out, "asset_name", AssetNameDefault)
	applyDefault(out, "site_outage", SiteOutageDefault)
	applyDefault(out, "ticket_status", StatusOpen)
	applyDefault(out, "priority", PriorityDefault)

	return out
}

// NormalizeUpdate rewrites aliased keys only. Updates get no defaults: a key
// the client did not send must stay absent so it is neither diffed nor
// overwritten.
func NormalizeUpdate(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		if canonical, ok := fieldAliases[key]; ok {
			if _, exists := raw[canonical]; exists {
				continue
			}
			key = canonical
		}
		out[key] = value
	}
	return out
}

func applyDefault(m map[string]any, key, fallback string) {
	if v, ok := m[key]; !ok || v == nil || v == "" {
		m[key] = fallback
	}
}

// MissingRequired reports which required creation fields are absent or empty
// in an already-normalized payload, in a stable order.
func MissingRequired(normalized map[string]any) []string {
	var missing []string
	for _, field := range requiredFields {
		v, ok := normalized[field]
		if !ok || v == nil || Stringify(v) == "" {
			missing = append(missing, field)
		}
	}
	sort.Strings(missing)
	return missing
}

// Change records one field's transition inside a history entry.
type Change struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// Stringify casts a value to the canonical comparison form. nil becomes the
// empty string, numbers drop a trailing ".0" so 5 and 5.0 compare equal.
// Statistics and the history protocol depend on this tolerant equality.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case *float64:
		if t == nil {
			return ""
		}
		return Stringify(*t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Diff compares the allow-listed fields present in updates against the current
// row and returns one Change per field whose stringified value differs.
func Diff(current *Ticket, updates map[string]any) map[string]Change {
	changes := make(map[string]Change)
	for _, field := range UpdatableFields {
		newVal, ok := updates[field]
		if !ok {
			continue
		}
		oldStr := Stringify(currentValue(current, field))
		newStr := Stringify(newVal)
		if oldStr != newStr {
			changes[field] = Change{Old: oldStr, New: newStr}
		}
	}
	return changes
}

func currentValue(t *Ticket, field string) any {
	switch field {
	case "ticket_status":
		return t.TicketStatus
	case "closed_at":
		if t.ClosedAt == nil {
			return nil
		}
		return t.ClosedAt.Format("2006-01-02T15:04:05")
	case "issue_start_time":
		return t.IssueStartTime
	case "issue_end_time":
		return t.IssueEndTime
	case "issue_description":
		return t.IssueDescription
	case "issue_notes":
		return t.IssueNotes
	case "priority":
		return t.Priority
	case "kilowatts_down":
		return t.KilowattsDown
	case "case_number":
		return t.CaseNumber
	case "site_outage":
		return t.SiteOutage
	default:
		return nil
	}
}
