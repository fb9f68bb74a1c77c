package zakat

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
)

// AssetCreatedEvent is raised when a new asset is created
type AssetCreatedEvent struct {
	shared.BaseDomainEvent
	AssetID  uuid.UUID       `json:"asset_id"`
	UserID   uuid.UUID       `json:"user_id"`
	Name     string          `json:"name"`
	Category AssetCategory   `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// EventType returns the event type name
func (e *AssetCreatedEvent) EventType() string {
	return "AssetCreated"
}

// NewAssetCreatedEvent creates a new AssetCreatedEvent
func NewAssetCreatedEvent(asset *Asset) *AssetCreatedEvent {
	return &AssetCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("AssetCreated", "Asset", asset.ID),
		AssetID:         asset.ID,
		UserID:          asset.UserID,
		Name:            asset.Name,
		Category:        asset.Category,
		Value:           asset.Value,
	}
}

// LiabilityCreatedEvent is raised when a new liability is created
type LiabilityCreatedEvent struct {
	shared.BaseDomainEvent
	LiabilityID uuid.UUID         `json:"liability_id"`
	UserID      uuid.UUID         `json:"user_id"`
	Name        string            `json:"name"`
	Category    LiabilityCategory `json:"category"`
	Amount      decimal.Decimal   `json:"amount"`
}

// EventType returns the event type name
func (e *LiabilityCreatedEvent) EventType() string {
	return "LiabilityCreated"
}

// NewLiabilityCreatedEvent creates a new LiabilityCreatedEvent
func NewLiabilityCreatedEvent(liability *Liability) *LiabilityCreatedEvent {
	return &LiabilityCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("LiabilityCreated", "Liability", liability.ID),
		LiabilityID:     liability.ID,
		UserID:          liability.UserID,
		Name:            liability.Name,
		Category:        liability.Category,
		Amount:          liability.Amount,
	}
}

// SnapshotRecordedEvent is raised when a calculation snapshot is persisted
type SnapshotRecordedEvent struct {
	shared.BaseDomainEvent
	SnapshotID  uuid.UUID       `json:"snapshot_id"`
	UserID      uuid.UUID       `json:"user_id"`
	Methodology string          `json:"methodology"`
	ZakatDue    decimal.Decimal `json:"zakat_due"`
}

// EventType returns the event type name
func (e *SnapshotRecordedEvent) EventType() string {
	return "SnapshotRecorded"
}

// NewSnapshotRecordedEvent creates a new SnapshotRecordedEvent
func NewSnapshotRecordedEvent(snapshot *CalculationSnapshot) *SnapshotRecordedEvent {
	return &SnapshotRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("SnapshotRecorded", "CalculationSnapshot", snapshot.ID),
		SnapshotID:      snapshot.ID,
		UserID:          snapshot.UserID,
		Methodology:     snapshot.Methodology,
		ZakatDue:        snapshot.ZakatDue,
	}
}
