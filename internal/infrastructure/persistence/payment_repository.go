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

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPayeeName finds payments whose payee first or last name contains
// the search term, in insertion order
func (r *GormPaymentRepository) FindByPayeeName(ctx context.Context, search string, limit int) ([]billing.Payment, error) {
	var paymentModels []models.PaymentModel

	query := r.applySearch(r.db.WithContext(ctx).Model(&models.PaymentModel{}), search).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]billing.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// CountByPayeeName counts payments matching the search term
func (r *GormPaymentRepository) CountByPayeeName(ctx context.Context, search string) (int64, error) {
	var count int64
	if err := r.applySearch(r.db.WithContext(ctx).Model(&models.PaymentModel{}), search).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Insert persists a new payment
func (r *GormPaymentRepository) Insert(ctx context.Context, payment *billing.Payment) error {
	var model models.PaymentModel
	model.FromDomain(payment)
	return r.db.WithContext(ctx).Create(&model).Error
}

// InsertMany persists a batch of payments in one call
func (r *GormPaymentRepository) InsertMany(ctx context.Context, payments []billing.Payment) error {
	if len(payments) == 0 {
		return nil
	}
	paymentModels := make([]models.PaymentModel, len(payments))
	for i := range payments {
		paymentModels[i].FromDomain(&payments[i])
	}
	return r.db.WithContext(ctx).Create(&paymentModels).Error
}

// Replace overwrites the full row for the payment's ID
func (r *GormPaymentRepository) Replace(ctx context.Context, payment *billing.Payment) error {
	var model models.PaymentModel
	model.FromDomain(payment)

	result := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SetEvidenceID updates only the evidence reference on a payment
func (r *GormPaymentRepository) SetEvidenceID(ctx context.Context, paymentID uuid.UUID, evidenceID *uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("id = ?", paymentID).
		Update("evidence_id", evidenceID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete permanently deletes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applySearch applies the payee name search to the query
func (r *GormPaymentRepository) applySearch(query *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return query
	}
	pattern := "%" + search + "%"
	return query.Where("payee_first_name ILIKE ? OR payee_last_name ILIKE ?", pattern, pattern)
}

// Compile-time interface compliance check
var _ billing.PaymentRepository = (*GormPaymentRepository)(nil)
