package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/payrec/backend/internal/domain/billing"
	"github.com/payrec/backend/internal/domain/shared"
	"github.com/payrec/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEvidenceRepository implements EvidenceRepository using GORM
type GormEvidenceRepository struct {
	db *gorm.DB
}

// NewGormEvidenceRepository creates a new GormEvidenceRepository
func NewGormEvidenceRepository(db *gorm.DB) *GormEvidenceRepository {
	return &GormEvidenceRepository{db: db}
}

// FindByID finds an evidence record by its ID
func (r *GormEvidenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Evidence, error) {
	var model models.EvidenceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Insert persists a new evidence record
func (r *GormEvidenceRepository) Insert(ctx context.Context, evidence *billing.Evidence) error {
	var model models.EvidenceModel
	model.FromDomain(evidence)
	return r.db.WithContext(ctx).Create(&model).Error
}

// Delete permanently deletes an evidence record. Deleting a missing
// record is not an error.
func (r *GormEvidenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.EvidenceModel{}, "id = ?", id).Error
}

// Compile-time interface compliance check
var _ billing.EvidenceRepository = (*GormEvidenceRepository)(nil)
