package infrastructures

import (
	"os"

	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	db, err := gorm.Open(postgres.Open(os.Getenv("DATABASE_URL")), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	// Unique indexes on business identifiers are the backstop against
	// concurrent generation of the same number.
	if err := db.AutoMigrate(
		&models.Client{},
		&models.ClientContact{},
		&models.Quote{},
		&models.QuoteItem{},
		&models.Proposal{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.ServiceOrder{},
		&models.AuditLog{},
	); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	return db
}
