package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
)

// AssetModel is the persistence model for the Asset aggregate.
type AssetModel struct {
	OwnedAggregateModel
	Name                       string              `gorm:"type:varchar(100);not null"`
	Category                   zakat.AssetCategory `gorm:"type:varchar(30);not null;index"`
	Value                      decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Override                   string              `gorm:"type:varchar(10);not null;default:''"`
	Modifier                   *decimal.Decimal    `gorm:"type:decimal(9,6)"`
	PassiveInvestment          bool                `gorm:"not null;default:false"`
	EarlyWithdrawalPenaltyRate *decimal.Decimal    `gorm:"type:decimal(9,6)"`
	TaxRate                    *decimal.Decimal    `gorm:"type:decimal(9,6)"`
	Notes                      string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AssetModel) TableName() string {
	return "assets"
}

// ToDomain converts the persistence model to a domain Asset aggregate.
func (m *AssetModel) ToDomain() *zakat.Asset {
	asset := &zakat.Asset{
		Name:                       m.Name,
		Category:                   m.Category,
		Value:                      m.Value,
		Override:                   zakat.EligibilityOverride(m.Override),
		Modifier:                   m.Modifier,
		PassiveInvestment:          m.PassiveInvestment,
		EarlyWithdrawalPenaltyRate: m.EarlyWithdrawalPenaltyRate,
		TaxRate:                    m.TaxRate,
		Notes:                      m.Notes,
	}
	m.PopulateOwnedAggregateRoot(&asset.OwnedAggregateRoot)
	return asset
}

// FromDomain populates the persistence model from a domain Asset aggregate.
func (m *AssetModel) FromDomain(a *zakat.Asset) {
	m.FromDomainOwnedAggregateRoot(a.OwnedAggregateRoot)
	m.Name = a.Name
	m.Category = a.Category
	m.Value = a.Value
	m.Override = string(a.Override)
	m.Modifier = a.Modifier
	m.PassiveInvestment = a.PassiveInvestment
	m.EarlyWithdrawalPenaltyRate = a.EarlyWithdrawalPenaltyRate
	m.TaxRate = a.TaxRate
	m.Notes = a.Notes
}

// AssetModelFromDomain creates a new persistence model from a domain Asset.
func AssetModelFromDomain(a *zakat.Asset) *AssetModel {
	m := &AssetModel{}
	m.FromDomain(a)
	return m
}

// LiabilityModel is the persistence model for the Liability aggregate.
type LiabilityModel struct {
	OwnedAggregateModel
	Name     string                  `gorm:"type:varchar(100);not null"`
	Category zakat.LiabilityCategory `gorm:"type:varchar(30);not null;index"`
	Amount   decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	DueDate  *time.Time              `gorm:"index"`
	Active   bool                    `gorm:"not null;default:true;index"`
	Notes    string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LiabilityModel) TableName() string {
	return "liabilities"
}

// ToDomain converts the persistence model to a domain Liability aggregate.
func (m *LiabilityModel) ToDomain() *zakat.Liability {
	liability := &zakat.Liability{
		Name:     m.Name,
		Category: m.Category,
		Amount:   m.Amount,
		DueDate:  m.DueDate,
		Active:   m.Active,
		Notes:    m.Notes,
	}
	m.PopulateOwnedAggregateRoot(&liability.OwnedAggregateRoot)
	return liability
}

// FromDomain populates the persistence model from a domain Liability aggregate.
func (m *LiabilityModel) FromDomain(l *zakat.Liability) {
	m.FromDomainOwnedAggregateRoot(l.OwnedAggregateRoot)
	m.Name = l.Name
	m.Category = l.Category
	m.Amount = l.Amount
	m.DueDate = l.DueDate
	m.Active = l.Active
	m.Notes = l.Notes
}

// LiabilityModelFromDomain creates a new persistence model from a domain Liability.
func LiabilityModelFromDomain(l *zakat.Liability) *LiabilityModel {
	m := &LiabilityModel{}
	m.FromDomain(l)
	return m
}

// SnapshotModel is the persistence model for the CalculationSnapshot aggregate.
type SnapshotModel struct {
	OwnedAggregateModel
	Methodology          string           `gorm:"type:varchar(30);not null;index"`
	NisabBasis           zakat.NisabBasis `gorm:"type:varchar(10);not null"`
	NisabThreshold       decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	TotalAssets          decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	TotalZakatableAssets decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	TotalLiabilities     decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	TotalDeductible      decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	NetZakatableWorth    decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	ZakatDue             decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	ZakatObligatory      bool             `gorm:"not null"`
	ReferenceDate        time.Time        `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SnapshotModel) TableName() string {
	return "calculation_snapshots"
}

// ToDomain converts the persistence model to a domain CalculationSnapshot.
func (m *SnapshotModel) ToDomain() *zakat.CalculationSnapshot {
	snapshot := &zakat.CalculationSnapshot{
		Methodology:          m.Methodology,
		NisabBasis:           m.NisabBasis,
		NisabThreshold:       m.NisabThreshold,
		TotalAssets:          m.TotalAssets,
		TotalZakatableAssets: m.TotalZakatableAssets,
		TotalLiabilities:     m.TotalLiabilities,
		TotalDeductible:      m.TotalDeductible,
		NetZakatableWorth:    m.NetZakatableWorth,
		ZakatDue:             m.ZakatDue,
		ZakatObligatory:      m.ZakatObligatory,
		ReferenceDate:        m.ReferenceDate,
	}
	m.PopulateOwnedAggregateRoot(&snapshot.OwnedAggregateRoot)
	return snapshot
}

// FromDomain populates the persistence model from a domain CalculationSnapshot.
func (m *SnapshotModel) FromDomain(s *zakat.CalculationSnapshot) {
	m.FromDomainOwnedAggregateRoot(s.OwnedAggregateRoot)
	m.Methodology = s.Methodology
	m.NisabBasis = s.NisabBasis
	m.NisabThreshold = s.NisabThreshold
	m.TotalAssets = s.TotalAssets
	m.TotalZakatableAssets = s.TotalZakatableAssets
	m.TotalLiabilities = s.TotalLiabilities
	m.TotalDeductible = s.TotalDeductible
	m.NetZakatableWorth = s.NetZakatableWorth
	m.ZakatDue = s.ZakatDue
	m.ZakatObligatory = s.ZakatObligatory
	m.ReferenceDate = s.ReferenceDate
}

// SnapshotModelFromDomain creates a new persistence model from a domain CalculationSnapshot.
func SnapshotModelFromDomain(s *zakat.CalculationSnapshot) *SnapshotModel {
	m := &SnapshotModel{}
	m.FromDomain(s)
	return m
}
