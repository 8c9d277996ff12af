package workshop

import (
	"context"
	"errors"

	"workshop-invoicing-backend/internal/models"
	"workshop-invoicing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("workshop info not found")

// UpdateInput carries a partial update. Nil fields keep their stored value.
type UpdateInput struct {
	Name          *string   `json:"name"`
	Tagline       *string   `json:"tagline"`
	ReferenceNo   *string   `json:"referenceNo"`
	VendorNo      *string   `json:"vendorNo"`
	STRN          *string   `json:"strn"`
	ContactPerson *string   `json:"contactPerson"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Address       *string   `json:"address"`
	Facebook      *string   `json:"facebook"`
	Instagram     *string   `json:"instagram"`
	Services      *[]string `json:"services"`
}

func (in UpdateInput) applyTo(info *models.WorkshopInfo) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&info.Name, in.Name)
	set(&info.Tagline, in.Tagline)
	set(&info.ReferenceNo, in.ReferenceNo)
	set(&info.VendorNo, in.VendorNo)
	set(&info.STRN, in.STRN)
	set(&info.ContactPerson, in.ContactPerson)
	set(&info.Phone, in.Phone)
	set(&info.Email, in.Email)
	set(&info.Address, in.Address)
	set(&info.Facebook, in.Facebook)
	set(&info.Instagram, in.Instagram)
	if in.Services != nil {
		info.ServiceList = append([]string{}, (*in.Services)...)
	}
}

type WorkshopService struct {
	repo *repository.WorkshopRepository
	log  logrus.FieldLogger
}

func NewWorkshopService(repo *repository.WorkshopRepository, log logrus.FieldLogger) *WorkshopService {
	return &WorkshopService{repo: repo, log: log}
}

func (s *WorkshopService) Get(ctx context.Context, userID uuid.UUID) (*models.WorkshopInfo, error) {
	info, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return info, err
}

// Update applies in to the user's workshop info, creating the record on
// first use. Fields absent from in keep their stored values; this includes
// Services, so a request without a services list leaves the list untouched
// rather than resetting it to empty.
func (s *WorkshopService) Update(ctx context.Context, userID uuid.UUID, in UpdateInput) (*models.WorkshopInfo, error) {
	info, err := s.repo.GetByUserID(ctx, userID)
	created := false
	switch {
	case errors.Is(err, repository.ErrNotFound):
		info = &models.WorkshopInfo{ID: uuid.New(), UserID: userID, ServiceList: []string{}}
		created = true
	case err != nil:
		return nil, err
	}

	in.applyTo(info)
	if err := s.repo.Save(ctx, info); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  userID,
		"created":  created,
		"services": len(info.ServiceList),
	}).Info("workshop info saved")
	return info, nil
}
