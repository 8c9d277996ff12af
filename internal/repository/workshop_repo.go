package repository

import (
	"context"
	"errors"
	"fmt"

	"workshop-invoicing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkshopRepository struct {
	db *gorm.DB
}

func NewWorkshopRepository(db *gorm.DB) *WorkshopRepository {
	return &WorkshopRepository{db: db}
}

func (r *WorkshopRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WorkshopInfo, error) {
	var info models.WorkshopInfo
	if err := r.db.WithContext(ctx).First(&info, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workshop info: %w", err)
	}
	return &info, nil
}

// Save inserts the record when it has no primary key yet and updates every
// column otherwise.
func (r *WorkshopRepository) Save(ctx context.Context, info *models.WorkshopInfo) error {
	if err := r.db.WithContext(ctx).Save(info).Error; err != nil {
		return fmt.Errorf("failed to save workshop info: %w", err)
	}
	return nil
}
