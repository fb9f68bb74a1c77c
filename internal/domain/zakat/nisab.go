package zakat

import "github.com/shopspring/decimal"

// Canonical zakat-exempt metal weights in grams. The price-feed collaborator
// multiplies these by per-gram spot prices to produce NisabValues.
var (
	NisabGoldWeightGrams   = decimal.NewFromFloat(87.48)
	NisabSilverWeightGrams = decimal.NewFromFloat(612.36)
)

// ZakatRate is the canonical obligation rate of 2.5%
var ZakatRate = decimal.NewFromFloat(0.025)

// NisabValues carries the already-resolved currency equivalents of the
// canonical gold and silver nisab weights. The engine never fetches prices;
// it only selects between these two numbers.
type NisabValues struct {
	Gold   decimal.Decimal `json:"gold"`
	Silver decimal.Decimal `json:"silver"`
}

// NewNisabValues computes nisab equivalents from per-gram spot prices
func NewNisabValues(goldPricePerGram, silverPricePerGram decimal.Decimal) NisabValues {
	return NisabValues{
		Gold:   goldPricePerGram.Mul(NisabGoldWeightGrams),
		Silver: silverPricePerGram.Mul(NisabSilverWeightGrams),
	}
}

// Threshold selects the nisab threshold for the methodology's basis.
// No rounding or conversion happens here; the silver basis typically yields
// the lower threshold.
func Threshold(cfg MethodologyConfig, values NisabValues) decimal.Decimal {
	if cfg.NisabBasis == NisabBasisSilver {
		return values.Silver
	}
	return values.Gold
}
