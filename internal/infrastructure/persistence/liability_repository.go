package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/persistence/models"
)

// GormLiabilityRepository implements zakat.LiabilityRepository using GORM
type GormLiabilityRepository struct {
	db *gorm.DB
}

// NewGormLiabilityRepository creates a new GormLiabilityRepository
func NewGormLiabilityRepository(db *gorm.DB) *GormLiabilityRepository {
	return &GormLiabilityRepository{db: db}
}

// Save creates or updates a liability
func (r *GormLiabilityRepository) Save(ctx context.Context, liability *zakat.Liability) error {
	model := models.LiabilityModelFromDomain(liability)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a liability by its ID
func (r *GormLiabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*zakat.Liability, error) {
	var model models.LiabilityModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUser finds a liability by ID owned by the given user
func (r *GormLiabilityRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*zakat.Liability, error) {
	var model models.LiabilityModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForUser finds all liabilities owned by the given user
func (r *GormLiabilityRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*zakat.Liability, error) {
	var liabilityModels []models.LiabilityModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.LiabilityModel{}).Where("user_id = ?", userID),
		filter,
	)

	if err := query.Find(&liabilityModels).Error; err != nil {
		return nil, err
	}

	liabilities := make([]*zakat.Liability, len(liabilityModels))
	for i := range liabilityModels {
		liabilities[i] = liabilityModels[i].ToDomain()
	}
	return liabilities, nil
}

// CountForUser counts the liabilities owned by the given user
func (r *GormLiabilityRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LiabilityModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Delete deletes a liability
func (r *GormLiabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LiabilityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
