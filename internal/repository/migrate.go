package repository

import (
	"workshop-invoicing-backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema. Users go first so the foreign keys
// from workshop_infos and invoices can be applied.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WorkshopInfo{},
		&models.Invoice{},
		&models.Service{},
		&models.InvoiceSequence{},
		&models.AuditLog{},
	)
}
