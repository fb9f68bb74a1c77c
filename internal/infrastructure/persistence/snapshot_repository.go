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

// GormSnapshotRepository implements zakat.SnapshotRepository using GORM
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GormSnapshotRepository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Save creates or updates a calculation snapshot
func (r *GormSnapshotRepository) Save(ctx context.Context, snapshot *zakat.CalculationSnapshot) error {
	model := models.SnapshotModelFromDomain(snapshot)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByIDForUser finds a snapshot by ID owned by the given user
func (r *GormSnapshotRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*zakat.CalculationSnapshot, error) {
	var model models.SnapshotModel
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

// FindAllForUser finds all snapshots owned by the given user, newest first by default
func (r *GormSnapshotRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*zakat.CalculationSnapshot, error) {
	var snapshotModels []models.SnapshotModel
	query := r.db.WithContext(ctx).
		Model(&models.SnapshotModel{}).
		Where("user_id = ?", userID).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Order("reference_date DESC, created_at DESC")

	if err := query.Find(&snapshotModels).Error; err != nil {
		return nil, err
	}

	snapshots := make([]*zakat.CalculationSnapshot, len(snapshotModels))
	for i := range snapshotModels {
		snapshots[i] = snapshotModels[i].ToDomain()
	}
	return snapshots, nil
}

// Delete deletes a snapshot
func (r *GormSnapshotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SnapshotModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
