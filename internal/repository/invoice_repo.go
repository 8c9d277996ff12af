package repository

import (
	"context"
	"errors"
	"fmt"

	"workshop-invoicing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Transaction runs fn with a repository bound to a single transaction.
func (r *InvoiceRepository) Transaction(ctx context.Context, fn func(repo *InvoiceRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&InvoiceRepository{db: tx})
	})
}

func orderedServices(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// ListByUser returns the user's invoices with their line items, newest first.
func (r *InvoiceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := r.db.WithContext(ctx).
		Preload("Services", orderedServices).
		Where("user_id = ?", userID).
		Order("seq DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	for i := range invoices {
		withServices(&invoices[i])
	}
	return invoices, nil
}

// GetByID fetches a single invoice owned by userID.
func (r *InvoiceRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Services", orderedServices).
		Where("id = ? AND user_id = ?", id, userID).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	withServices(&invoice)
	return &invoice, nil
}

// withServices keeps an invoice without line items encoding services as [].
func withServices(invoice *models.Invoice) {
	if invoice.Services == nil {
		invoice.Services = []models.Service{}
	}
}

// NextSequence bumps and returns the user's invoice counter. The counter row
// is seeded from the highest existing invoice number the first time.
func (r *InvoiceRepository) NextSequence(ctx context.Context, userID uuid.UUID) (int, error) {
	db := r.db.WithContext(ctx)

	bumped, err := r.bumpSequence(db, userID)
	if err != nil {
		return 0, err
	}
	if !bumped {
		var maxSeq int
		err := db.Model(&models.Invoice{}).
			Where("user_id = ?", userID).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&maxSeq).Error
		if err != nil {
			return 0, fmt.Errorf("failed to read last invoice number: %w", err)
		}

		seed := models.InvoiceSequence{UserID: userID, LastValue: maxSeq}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return 0, fmt.Errorf("failed to seed invoice sequence: %w", err)
		}
		if bumped, err = r.bumpSequence(db, userID); err != nil {
			return 0, err
		}
		if !bumped {
			return 0, fmt.Errorf("invoice sequence for user %s missing after seed", userID)
		}
	}

	var seq models.InvoiceSequence
	if err := db.First(&seq, "user_id = ?", userID).Error; err != nil {
		return 0, fmt.Errorf("failed to read invoice sequence: %w", err)
	}
	return seq.LastValue, nil
}

func (r *InvoiceRepository) bumpSequence(db *gorm.DB, userID uuid.UUID) (bool, error) {
	res := db.Model(&models.InvoiceSequence{}).
		Where("user_id = ?", userID).
		UpdateColumn("last_value", gorm.Expr("last_value + ?", 1))
	if res.Error != nil {
		return false, fmt.Errorf("failed to bump invoice sequence: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Create inserts the invoice together with its line items.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// Delete removes the invoice and its line items. ErrNotFound is returned when
// the user owns no invoice with that id.
func (r *InvoiceRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	db := r.db.WithContext(ctx)

	res := db.Where("invoice_id IN (?)",
		db.Model(&models.Invoice{}).Select("id").Where("id = ? AND user_id = ?", id, userID),
	).Delete(&models.Service{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete invoice services: %w", res.Error)
	}

	res = db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Invoice{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete invoice: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) ListAuditLogs(ctx context.Context, userID uuid.UUID) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}
