package invoicing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"workshop-invoicing-backend/internal/models"
	"workshop-invoicing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var (
	ErrValidation = errors.New("invalid invoice")
	ErrNotFound   = errors.New("invoice not found")
)

// MaxServices caps the line items on a single invoice.
const MaxServices = 200

// DateLayout is the en-GB day/month/year format printed on invoices.
const DateLayout = "02/01/2006"

type ServiceInput struct {
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
}

type CreateInput struct {
	CustomerName string         `json:"customerName"`
	Services     []ServiceInput `json:"services"`
}

// FormatSNo renders a sequence value as the display number: at least three
// digits, zero-padded.
func FormatSNo(seq int) string {
	return fmt.Sprintf("%03d", seq)
}

// ComputeTotal sums the line item rates.
func ComputeTotal(services []ServiceInput) float64 {
	total := 0.0
	for _, s := range services {
		total += s.Rate
	}
	return total
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.CustomerName) == "" || in.Services == nil {
		return fmt.Errorf("%w: customer name and services are required", ErrValidation)
	}
	if len(in.Services) > MaxServices {
		return fmt.Errorf("%w: at most %d services per invoice", ErrValidation, MaxServices)
	}
	for i, s := range in.Services {
		if math.IsNaN(s.Rate) || math.IsInf(s.Rate, 0) {
			return fmt.Errorf("%w: service %d has an invalid rate", ErrValidation, i+1)
		}
		if s.Rate < 0 {
			return fmt.Errorf("%w: service %d has a negative rate", ErrValidation, i+1)
		}
	}
	// Finite rates can still overflow when summed.
	if math.IsInf(ComputeTotal(in.Services), 0) {
		return fmt.Errorf("%w: total is out of range", ErrValidation)
	}
	return nil
}

type InvoiceService struct {
	repo *repository.InvoiceRepository
	log  logrus.FieldLogger
	now  func() time.Time
}

func NewInvoiceService(repo *repository.InvoiceRepository, log logrus.FieldLogger) *InvoiceService {
	return &InvoiceService{repo: repo, log: log, now: time.Now}
}

// WithClock replaces the time source used to date new invoices.
func (s *InvoiceService) WithClock(now func() time.Time) *InvoiceService {
	s.now = now
	return s
}

func (s *InvoiceService) List(ctx context.Context, userID uuid.UUID) ([]models.Invoice, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *InvoiceService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Invoice, error) {
	invoice, err := s.repo.GetByID(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return invoice, err
}

// Create numbers, totals and stores a new invoice. The sequence bump, the
// invoice with its line items and the audit entry commit together.
func (s *InvoiceService) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (*models.Invoice, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		ID:           uuid.New(),
		UserID:       userID,
		CustomerName: strings.TrimSpace(in.CustomerName),
		Date:         s.now().Format(DateLayout),
		Total:        ComputeTotal(in.Services),
		Services:     make([]models.Service, 0, len(in.Services)),
	}
	for i, item := range in.Services {
		invoice.Services = append(invoice.Services, models.Service{
			ID:          uuid.New(),
			InvoiceID:   invoice.ID,
			Position:    i,
			Description: strings.TrimSpace(item.Description),
			Rate:        item.Rate,
			Amount:      item.Rate,
		})
	}

	err := s.repo.Transaction(ctx, func(tx *repository.InvoiceRepository) error {
		seq, err := tx.NextSequence(ctx, userID)
		if err != nil {
			return err
		}
		invoice.Seq = seq
		invoice.SNo = FormatSNo(seq)

		if err := tx.Create(ctx, invoice); err != nil {
			return err
		}
		return tx.CreateAuditLog(ctx, auditEntry(models.AuditInvoiceCreated, invoice))
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"invoice_id": invoice.ID,
		"s_no":       invoice.SNo,
		"total":      invoice.Total,
	}).Info("invoice created")
	return invoice, nil
}

// Delete removes an invoice and its line items.
func (s *InvoiceService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.repo.Transaction(ctx, func(tx *repository.InvoiceRepository) error {
		invoice, err := tx.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(ctx, userID, id); err != nil {
			return err
		}
		return tx.CreateAuditLog(ctx, auditEntry(models.AuditInvoiceDeleted, invoice))
	})
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "invoice_id": id}).Info("invoice deleted")
	return nil
}

func auditEntry(action string, invoice *models.Invoice) *models.AuditLog {
	details, _ := json.Marshal(map[string]interface{}{
		"s_no":          invoice.SNo,
		"customer_name": invoice.CustomerName,
		"total":         invoice.Total,
		"service_count": len(invoice.Services),
	})
	return &models.AuditLog{
		ID:        uuid.New(),
		UserID:    invoice.UserID,
		InvoiceID: invoice.ID,
		Action:    action,
		Details:   datatypes.JSON(details),
	}
}
