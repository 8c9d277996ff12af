package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WorkshopInfo is the business profile printed on invoices (one per user).
// The offered service categories are kept in ServiceList and persisted as a
// single JSON-encoded column.
type WorkshopInfo struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	Name          string         `gorm:"size:255" json:"name"`
	Tagline       string         `gorm:"size:255" json:"tagline"`
	ReferenceNo   string         `gorm:"size:64" json:"referenceNo"`
	VendorNo      string         `gorm:"size:64" json:"vendorNo"`
	STRN          string         `gorm:"column:strn;size:64" json:"strn"`
	ContactPerson string         `gorm:"size:255" json:"contactPerson"`
	Phone         string         `gorm:"size:64" json:"phone"`
	Email         string         `gorm:"size:255" json:"email"`
	Address       string         `gorm:"size:512" json:"address"`
	Facebook      string         `gorm:"size:255" json:"facebook"`
	Instagram     string         `gorm:"size:255" json:"instagram"`
	Services      datatypes.JSON `json:"-"`
	ServiceList   []string       `gorm:"-" json:"services"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (w *WorkshopInfo) BeforeSave(tx *gorm.DB) error {
	encoded, err := EncodeServices(w.ServiceList)
	if err != nil {
		return err
	}
	w.Services = encoded
	return nil
}

func (w *WorkshopInfo) AfterFind(tx *gorm.DB) error {
	list, err := DecodeServices(w.Services)
	if err != nil {
		return err
	}
	w.ServiceList = list
	return nil
}

// EncodeServices flattens a service list into its stored form. A nil list is
// stored as an empty array.
func EncodeServices(services []string) (datatypes.JSON, error) {
	if services == nil {
		services = []string{}
	}
	b, err := json.Marshal(services)
	if err != nil {
		return nil, fmt.Errorf("encode services: %w", err)
	}
	return datatypes.JSON(b), nil
}

func DecodeServices(raw datatypes.JSON) ([]string, error) {
	services := []string{}
	if len(raw) == 0 || string(raw) == "null" {
		return services, nil
	}
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	if services == nil {
		services = []string{}
	}
	return services, nil
}
