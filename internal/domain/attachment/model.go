package attachment

import "time"

// Attachment metadata lives in Postgres; the bytes live in MinIO under
// ObjectKey.
type Attachment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TicketID    uint      `gorm:"not null;index" json:"ticket_id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	ObjectKey   string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
