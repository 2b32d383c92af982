package comment

import (
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/user"
)

// Comment belongs to exactly one ticket and one author. Only the author may
// update or delete it.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"not null;index" json:"ticket_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User user.User `gorm:"foreignKey:UserID" json:"user"`
}

type CreateCommentInput struct {
	TicketID uint   `json:"ticket_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

type UpdateCommentInput struct {
	Content string `json:"content" binding:"required"`
}
