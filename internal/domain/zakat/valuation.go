package zakat

import "github.com/shopspring/decimal"

// passiveInvestmentRate is the fixed haircut applied to passive or
// restricted holdings when no explicit modifier is set.
var passiveInvestmentRate = decimal.NewFromFloat(0.30)

// IsEligible decides whether an asset counts toward zakatable wealth under
// the given methodology. The checks run in strict order:
//
//  1. Category outside the methodology's eligible set: ineligible.
//  2. Explicit owner override: used verbatim.
//  3. Jewelry exemption for gold/silver: ineligible by default.
//  4. Otherwise eligible.
func IsEligible(asset *Asset, cfg MethodologyConfig) bool {
	if !cfg.IsEligibleCategory(asset.Category) {
		return false
	}
	if asset.Override.IsSet() {
		return asset.Override == EligibilityIncluded
	}
	if cfg.JewelryExempt && asset.Category.IsPreciousMetal() {
		return false
	}
	return true
}

// ZakatableValue computes the portion of an eligible asset's value that
// counts toward the zakat base. Rules form an ordered chain; the first match
// wins and they are never combined. An explicit modifier is authoritative
// over the category heuristics.
func ZakatableValue(asset *Asset, cfg MethodologyConfig) decimal.Decimal {
	if !IsEligible(asset, cfg) {
		return decimal.Zero
	}

	if asset.HasModifier() {
		return asset.Value.Mul(*asset.Modifier)
	}

	if asset.Category == AssetCategoryRetirementAccount {
		return netWithdrawableValue(asset)
	}

	if asset.PassiveInvestment {
		return asset.Value.Mul(passiveInvestmentRate)
	}

	return asset.Value
}

// netWithdrawableValue estimates what a retirement account would yield after
// early-withdrawal penalty and tax: value x max(0, 1 - penalty - tax).
func netWithdrawableValue(asset *Asset) decimal.Decimal {
	factor := decimal.NewFromInt(1).
		Sub(asset.PenaltyRateOrZero()).
		Sub(asset.TaxRateOrZero())
	if factor.IsNegative() {
		factor = decimal.Zero
	}
	return asset.Value.Mul(factor)
}
