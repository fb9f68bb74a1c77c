package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/persistence/models"
)

// GormAssetRepository implements zakat.AssetRepository using GORM
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GormAssetRepository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

// Save creates or updates an asset
func (r *GormAssetRepository) Save(ctx context.Context, asset *zakat.Asset) error {
	model := models.AssetModelFromDomain(asset)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds an asset by its ID
func (r *GormAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*zakat.Asset, error) {
	var model models.AssetModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUser finds an asset by ID owned by the given user
func (r *GormAssetRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*zakat.Asset, error) {
	var model models.AssetModel
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

// FindAllForUser finds all assets owned by the given user
func (r *GormAssetRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*zakat.Asset, error) {
	var assetModels []models.AssetModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.AssetModel{}).Where("user_id = ?", userID),
		filter,
	)

	if err := query.Find(&assetModels).Error; err != nil {
		return nil, err
	}

	assets := make([]*zakat.Asset, len(assetModels))
	for i := range assetModels {
		assets[i] = assetModels[i].ToDomain()
	}
	return assets, nil
}

// CountForUser counts the assets owned by the given user
func (r *GormAssetRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AssetModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Delete deletes an asset
func (r *GormAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AssetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies pagination, ordering and search to a query.
// Shared by the zakat repositories; search matches the name column.
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}
