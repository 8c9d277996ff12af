package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AuditInvoiceCreated = "invoice_created"
	AuditInvoiceDeleted = "invoice_deleted"
)

// AuditLog records invoice mutations. InvoiceID is not a foreign key so rows
// outlive the invoice they describe.
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index"`
	Action    string    `gorm:"size:32;index"`
	Details   datatypes.JSON
	CreatedAt time.Time
}
