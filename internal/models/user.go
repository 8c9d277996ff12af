package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a credential holder. Users are created by the admin bootstrap and
// own exactly one WorkshopInfo and any number of invoices.
type User struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Username       string        `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Email          string        `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword []byte        `gorm:"not null" json:"-"`
	WorkshopInfo   *WorkshopInfo `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Invoices       []Invoice     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"-"`
}
