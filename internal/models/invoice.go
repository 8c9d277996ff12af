package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_user_seq" json:"userId"`
	Seq          int       `gorm:"not null;uniqueIndex:idx_invoices_user_seq" json:"-"`
	SNo          string    `gorm:"column:s_no;size:16;not null" json:"sNo"` // Seq zero-padded to 3 digits
	CustomerName string    `gorm:"size:255;not null" json:"customerName"`
	Date         string    `gorm:"size:16;not null" json:"date"` // dd/mm/yyyy
	Total        float64   `gorm:"not null" json:"total"`
	Services     []Service `gorm:"foreignKey:InvoiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}

// Service is one billed line item. Amount always mirrors Rate.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Position    int       `gorm:"not null" json:"-"`
	Description string    `gorm:"size:512;not null" json:"description"`
	Rate        float64   `gorm:"not null" json:"rate"`
	Amount      float64   `gorm:"not null" json:"amount"`
}

// InvoiceSequence is the per-user counter behind Invoice.SNo.
type InvoiceSequence struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	LastValue int       `gorm:"not null"`
	UpdatedAt time.Time
}
