package db

import (
	"fmt"
	"log"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/config"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/attachment"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/comment"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/reference"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/ticket"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the services match on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	log.Println("Database connected")
}

// InitWithGormDB swaps in an externally managed connection, used by the
// integration tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&ticket.Ticket{},
		&ticket.TicketHistory{},
		&comment.Comment{},
		&reference.Category{},
		&reference.Status{},
		&reference.Equipment{},
		&reference.ClientType{},
		&reference.Site{},
		&attachment.Attachment{},
	)
}
