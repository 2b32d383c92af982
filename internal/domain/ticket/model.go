package ticket

import (
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/user"
	"gorm.io/datatypes"
)

// Canonical status and category values. Anything else is stored opaquely but
// never counted by the statistics endpoint.
const (
	StatusOpen    = "Open"
	StatusClosed  = "Closed"
	StatusPending = "Pending"

	CategoryProductionImpacting = "Production Impacting"
	CategoryNonProduction       = "Non-Production Impacting"
	CategoryPreventive          = "Preventive Maintenance"

	PriorityDefault   = "Medium"
	SiteOutageDefault = "No"
	AssetNameDefault  = "Asset 1"
)

type Ticket struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TicketNumber string `gorm:"size:20;uniqueIndex" json:"ticket_number"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`

	CustomerName string `gorm:"size:255" json:"customer_name"`
	CustomerType string `gorm:"size:100" json:"customer_type"`
	SiteName     string `gorm:"size:255" json:"site_name"`
	AssetName    string `gorm:"size:255" json:"asset_name"`
	Equipment    string `gorm:"size:255;not null" json:"equipment"`

	Category     string `gorm:"size:100;not null" json:"category"`
	CategoryCode int    `gorm:"default:1" json:"category_code"`
	TicketStatus string `gorm:"size:50;default:'Open'" json:"ticket_status"`
	StatusCode   int    `gorm:"default:1" json:"status_code"`
	SiteOutage   string `gorm:"size:10;default:'No'" json:"site_outage"`

	// Issue times are stored as ISO text on purpose: the update path compares
	// old and new values as strings, tolerating representation drift.
	IssueStartTime   string  `gorm:"size:40;not null" json:"issue_start_time"`
	IssueEndTime     *string `gorm:"size:40" json:"issue_end_time"`
	Duration         *string `gorm:"size:40" json:"duration"`
	Priority         string  `gorm:"size:20;default:'Medium'" json:"priority"`
	IssueDescription string  `gorm:"type:text;not null" json:"issue_description"`
	IssueNotes       *string `gorm:"type:text" json:"issue_notes"`

	KilowattsDown *float64 `json:"kilowatts_down"`
	CaseNumber    *string  `gorm:"size:100" json:"case_number"`

	ClosedAt  *time.Time `json:"closed_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	User user.User `gorm:"foreignKey:UserID" json:"user"`
}

// TicketHistory is an append-only audit record of one ticket update. Rows are
// never modified or deleted, and a failed insert never fails the update that
// produced it.
type TicketHistory struct {
	ID       uint              `gorm:"primaryKey" json:"id"`
	TicketID uint              `gorm:"not null;index" json:"ticket_id"`
	UserID   uint              `gorm:"not null" json:"user_id"`
	Changes  datatypes.JSONMap `json:"changes"`
	Reason   string            `gorm:"type:text" json:"reason"`

	CreatedAt time.Time `json:"created_at"`

	User user.User `gorm:"foreignKey:UserID" json:"user"`
}

// DefaultHistoryReason is recorded when the caller supplies no reason.
const DefaultHistoryReason = "No reason provided"

// Stats is a point-in-time snapshot of ticket counts.
type Stats struct {
	Total int `json:"total"`

	Open    int `json:"open"`
	Closed  int `json:"closed"`
	Pending int `json:"pending"`

	ProductionImpacting int `json:"production_impacting"`
	NonProduction       int `json:"non_production_impacting"`
	Preventive          int `json:"preventive_maintenance"`

	CreatedToday int `json:"created_today"`
	CreatedWeek  int `json:"created_last_7_days"`
	CreatedMonth int `json:"created_last_30_days"`

	LastUpdated time.Time `json:"last_updated"`
}
