package zakat

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotals carries total vs. zakatable value for one asset category
type CategoryTotals struct {
	Total     decimal.Decimal `json:"total"`
	Zakatable decimal.Decimal `json:"zakatable"`
}

// LiabilityTotals carries total vs. deductible amount for one liability category
type LiabilityTotals struct {
	Total      decimal.Decimal `json:"total"`
	Deductible decimal.Decimal `json:"deductible"`
}

// CalculationResult is the engine's sole output. It is a transient value,
// computed fresh on every invocation and deterministic for identical inputs:
// it carries no timestamps of its own so repeated runs compare equal.
type CalculationResult struct {
	TotalAssets          decimal.Decimal `json:"total_assets"`
	TotalZakatableAssets decimal.Decimal `json:"total_zakatable_assets"`
	TotalLiabilities     decimal.Decimal `json:"total_liabilities"`
	TotalDeductible      decimal.Decimal `json:"total_deductible"`
	NetZakatableWorth    decimal.Decimal `json:"net_zakatable_worth"`
	ZakatDue             decimal.Decimal `json:"zakat_due"`
	ZakatObligatory      bool            `json:"zakat_obligatory"`

	AssetBreakdown     map[AssetCategory]CategoryTotals      `json:"asset_breakdown"`
	LiabilityBreakdown map[LiabilityCategory]LiabilityTotals `json:"liability_breakdown"`

	// Metadata echoing which rules were applied, for audit and display.
	Methodology    string          `json:"methodology"`
	NisabBasis     NisabBasis      `json:"nisab_basis"`
	NisabThreshold decimal.Decimal `json:"nisab_threshold"`
	Rate           decimal.Decimal `json:"rate"`
	ReferenceDate  time.Time       `json:"reference_date"`
}

// Calculate runs the full zakat obligation pipeline:
// methodology resolution, per-asset valuation, liability deduction, nisab
// comparison and the final 2.5% obligation. It is a pure function of its
// inputs: it never mutates an asset or liability and performs no I/O.
//
// A liability is deducted only when it passes BOTH the methodology's
// category whitelist and the lunar-year time window. The original system
// applied one or the other depending on the call site; here the stricter
// combination is the single documented policy.
func Calculate(
	assets []*Asset,
	liabilities []*Liability,
	nisab NisabValues,
	methodologyName string,
	referenceDate time.Time,
) *CalculationResult {
	cfg := ResolveMethodology(methodologyName)
	threshold := Threshold(cfg, nisab)

	result := &CalculationResult{
		TotalAssets:          decimal.Zero,
		TotalZakatableAssets: decimal.Zero,
		TotalLiabilities:     decimal.Zero,
		TotalDeductible:      decimal.Zero,
		AssetBreakdown:       make(map[AssetCategory]CategoryTotals),
		LiabilityBreakdown:   make(map[LiabilityCategory]LiabilityTotals),
		Methodology:          cfg.Name,
		NisabBasis:           cfg.NisabBasis,
		NisabThreshold:       threshold,
		Rate:                 ZakatRate,
		ReferenceDate:        referenceDate,
	}

	for _, asset := range assets {
		zakatable := ZakatableValue(asset, cfg)

		result.TotalAssets = result.TotalAssets.Add(asset.Value)
		result.TotalZakatableAssets = result.TotalZakatableAssets.Add(zakatable)

		totals := result.AssetBreakdown[asset.Category]
		totals.Total = totals.Total.Add(asset.Value)
		totals.Zakatable = totals.Zakatable.Add(zakatable)
		result.AssetBreakdown[asset.Category] = totals
	}

	for _, liability := range liabilities {
		result.TotalLiabilities = result.TotalLiabilities.Add(liability.Amount)

		totals := result.LiabilityBreakdown[liability.Category]
		totals.Total = totals.Total.Add(liability.Amount)

		if cfg.IsDeductibleCategory(liability.Category) && IsWithinDeductionWindow(liability, referenceDate) {
			result.TotalDeductible = result.TotalDeductible.Add(liability.Amount)
			totals.Deductible = totals.Deductible.Add(liability.Amount)
		}

		result.LiabilityBreakdown[liability.Category] = totals
	}

	net := result.TotalZakatableAssets.Sub(result.TotalDeductible)
	if net.IsNegative() {
		net = decimal.Zero
	}
	result.NetZakatableWorth = net

	result.ZakatObligatory = net.GreaterThanOrEqual(threshold)
	if result.ZakatObligatory {
		result.ZakatDue = net.Mul(ZakatRate)
	} else {
		result.ZakatDue = decimal.Zero
	}

	return result
}
