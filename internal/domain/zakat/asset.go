package zakat

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/shared/valueobject"
)

// Asset represents a single holding owned by a user.
// The calculation engine reads assets as immutable snapshots; all mutation
// happens through the aggregate methods below.
type Asset struct {
	shared.OwnedAggregateRoot
	Name     string          `json:"name"`
	Category AssetCategory   `json:"category"`
	Value    decimal.Decimal `json:"value"`

	// Override is the owner's explicit eligibility decision. When set it
	// wins over every category default, including jewelry exemption.
	Override EligibilityOverride `json:"override,omitempty"`

	// Modifier is the fraction of the value that is zakatable, in [0,1].
	// Nil means unset (full value). A set modifier takes precedence over
	// the retirement and passive-investment rules.
	Modifier *decimal.Decimal `json:"modifier,omitempty"`

	// PassiveInvestment marks restricted or passive holdings valued at the
	// fixed 30% haircut when no explicit modifier is set.
	PassiveInvestment bool `json:"passive_investment,omitempty"`

	// Retirement-specific rates, used only for RETIREMENT_ACCOUNT assets.
	// Nil means zero.
	EarlyWithdrawalPenaltyRate *decimal.Decimal `json:"early_withdrawal_penalty_rate,omitempty"`
	TaxRate                    *decimal.Decimal `json:"tax_rate,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// NewAsset creates a new asset for the given owner
func NewAsset(userID uuid.UUID, name string, category AssetCategory, value valueobject.Money) (*Asset, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Asset owner cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ASSET_NAME", "Asset name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_ASSET_NAME", "Asset name cannot exceed 100 characters")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_ASSET_CATEGORY", "Asset category is not valid")
	}
	if value.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_ASSET_VALUE", "Asset value cannot be negative")
	}

	a := &Asset{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Name:               name,
		Category:           category,
		Value:              value.Amount(),
	}

	a.AddDomainEvent(NewAssetCreatedEvent(a))

	return a, nil
}

// UpdateValue replaces the asset's monetary value
func (a *Asset) UpdateValue(value valueobject.Money) error {
	if value.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_ASSET_VALUE", "Asset value cannot be negative")
	}
	a.Value = value.Amount()
	a.touch()
	return nil
}

// Rename changes the asset's display name
func (a *Asset) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_ASSET_NAME", "Asset name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_ASSET_NAME", "Asset name cannot exceed 100 characters")
	}
	a.Name = name
	a.touch()
	return nil
}

// SetOverride records or clears the explicit eligibility decision
func (a *Asset) SetOverride(override EligibilityOverride) error {
	if !override.IsValid() {
		return shared.NewDomainError("INVALID_OVERRIDE", "Eligibility override must be included, excluded or unset")
	}
	a.Override = override
	a.touch()
	return nil
}

// SetModifier sets the zakatable fraction; pass nil to clear it
func (a *Asset) SetModifier(modifier *decimal.Decimal) error {
	if modifier != nil {
		if modifier.IsNegative() || modifier.GreaterThan(decimal.NewFromInt(1)) {
			return shared.NewDomainError("INVALID_MODIFIER", "Valuation modifier must be between 0 and 1")
		}
	}
	a.Modifier = modifier
	a.touch()
	return nil
}

// SetPassiveInvestment toggles the passive-investment flag
func (a *Asset) SetPassiveInvestment(passive bool) {
	a.PassiveInvestment = passive
	a.touch()
}

// SetRetirementRates sets the early-withdrawal penalty and tax rates.
// Only meaningful for RETIREMENT_ACCOUNT assets; either rate may be nil.
func (a *Asset) SetRetirementRates(penaltyRate, taxRate *decimal.Decimal) error {
	for _, rate := range []*decimal.Decimal{penaltyRate, taxRate} {
		if rate != nil && (rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1))) {
			return shared.NewDomainError("INVALID_RATE", "Retirement rates must be between 0 and 1")
		}
	}
	a.EarlyWithdrawalPenaltyRate = penaltyRate
	a.TaxRate = taxRate
	a.touch()
	return nil
}

// SetNotes sets the free-form notes
func (a *Asset) SetNotes(notes string) {
	a.Notes = notes
	a.touch()
}

// GetValueMoney returns the asset value as Money in the reporting currency
func (a *Asset) GetValueMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(a.Value)
}

// HasModifier returns true when an explicit modifier is set and not 1.0
func (a *Asset) HasModifier() bool {
	return a.Modifier != nil && !a.Modifier.Equal(decimal.NewFromInt(1))
}

// PenaltyRateOrZero returns the early-withdrawal penalty rate, zero when unset
func (a *Asset) PenaltyRateOrZero() decimal.Decimal {
	if a.EarlyWithdrawalPenaltyRate == nil {
		return decimal.Zero
	}
	return *a.EarlyWithdrawalPenaltyRate
}

// TaxRateOrZero returns the tax rate, zero when unset
func (a *Asset) TaxRateOrZero() decimal.Decimal {
	if a.TaxRate == nil {
		return decimal.Zero
	}
	return *a.TaxRate
}

func (a *Asset) touch() {
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}
