package zakat

import (
	"context"

	"github.com/google/uuid"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
)

// AssetRepository defines persistence operations for assets
type AssetRepository interface {
	Save(ctx context.Context, asset *Asset) error
	FindByID(ctx context.Context, id uuid.UUID) (*Asset, error)
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Asset, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*Asset, error)
	CountForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LiabilityRepository defines persistence operations for liabilities
type LiabilityRepository interface {
	Save(ctx context.Context, liability *Liability) error
	FindByID(ctx context.Context, id uuid.UUID) (*Liability, error)
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Liability, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*Liability, error)
	CountForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SnapshotRepository defines persistence operations for calculation snapshots
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *CalculationSnapshot) error
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*CalculationSnapshot, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*CalculationSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
