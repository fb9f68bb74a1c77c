package zakat

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
)

// CalculationSnapshot is a persisted record of one calculation run, kept so
// a user can review past yearly obligations. Unlike CalculationResult it is
// an aggregate with identity and timestamps.
type CalculationSnapshot struct {
	shared.OwnedAggregateRoot
	Methodology          string          `json:"methodology"`
	NisabBasis           NisabBasis      `json:"nisab_basis"`
	NisabThreshold       decimal.Decimal `json:"nisab_threshold"`
	TotalAssets          decimal.Decimal `json:"total_assets"`
	TotalZakatableAssets decimal.Decimal `json:"total_zakatable_assets"`
	TotalLiabilities     decimal.Decimal `json:"total_liabilities"`
	TotalDeductible      decimal.Decimal `json:"total_deductible"`
	NetZakatableWorth    decimal.Decimal `json:"net_zakatable_worth"`
	ZakatDue             decimal.Decimal `json:"zakat_due"`
	ZakatObligatory      bool            `json:"zakat_obligatory"`
	ReferenceDate        time.Time       `json:"reference_date"`
}

// NewCalculationSnapshot captures a calculation result for the given owner
func NewCalculationSnapshot(userID uuid.UUID, result *CalculationResult) (*CalculationSnapshot, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Snapshot owner cannot be empty")
	}
	if result == nil {
		return nil, shared.NewDomainError("INVALID_RESULT", "Snapshot requires a calculation result")
	}

	s := &CalculationSnapshot{
		OwnedAggregateRoot:   shared.NewOwnedAggregateRoot(userID),
		Methodology:          result.Methodology,
		NisabBasis:           result.NisabBasis,
		NisabThreshold:       result.NisabThreshold,
		TotalAssets:          result.TotalAssets,
		TotalZakatableAssets: result.TotalZakatableAssets,
		TotalLiabilities:     result.TotalLiabilities,
		TotalDeductible:      result.TotalDeductible,
		NetZakatableWorth:    result.NetZakatableWorth,
		ZakatDue:             result.ZakatDue,
		ZakatObligatory:      result.ZakatObligatory,
		ReferenceDate:        result.ReferenceDate,
	}

	s.AddDomainEvent(NewSnapshotRecordedEvent(s))

	return s, nil
}
