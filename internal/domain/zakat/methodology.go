package zakat

import "strings"

// NisabBasis selects which metal's threshold a methodology compares against
type NisabBasis string

const (
	NisabBasisGold   NisabBasis = "GOLD"
	NisabBasisSilver NisabBasis = "SILVER"
)

// IsValid checks if the basis is a valid NisabBasis
func (b NisabBasis) IsValid() bool {
	return b == NisabBasisGold || b == NisabBasisSilver
}

// String returns the string representation of NisabBasis
func (b NisabBasis) String() string {
	return string(b)
}

// DefaultMethodology is used when a methodology name is unknown or empty.
// Falling back instead of failing is deliberate: a malformed or legacy
// preference should degrade gracefully, not abort a calculation.
const DefaultMethodology = "standard"

// MethodologyConfig is an immutable jurisprudential rule set. Each entry's
// category sets are hand-enumerated policy decisions, not derived values;
// the test suite pins every table entry literally.
type MethodologyConfig struct {
	Name                string
	Description         string
	NisabBasis          NisabBasis
	EligibleCategories  map[AssetCategory]bool
	DeductibleLiability map[LiabilityCategory]bool

	// JewelryExempt treats gold and silver holdings as personal ornament
	// by default; only an explicit per-asset override includes them.
	JewelryExempt bool
}

// IsEligibleCategory returns true if the asset category counts under this methodology
func (m MethodologyConfig) IsEligibleCategory(c AssetCategory) bool {
	return m.EligibleCategories[c]
}

// IsDeductibleCategory returns true if the liability category may be deducted
func (m MethodologyConfig) IsDeductibleCategory(c LiabilityCategory) bool {
	return m.DeductibleLiability[c]
}

var methodologies = map[string]MethodologyConfig{
	"standard": {
		Name:        "standard",
		Description: "Gold nisab with narrow liability deduction; jewelry counted",
		NisabBasis:  NisabBasisGold,
		EligibleCategories: map[AssetCategory]bool{
			AssetCategoryCash:              true,
			AssetCategoryBankAccount:       true,
			AssetCategoryGold:              true,
			AssetCategorySilver:            true,
			AssetCategoryCryptocurrency:    true,
			AssetCategoryBusinessAssets:    true,
			AssetCategoryInvestmentAccount: true,
			AssetCategoryRetirementAccount: true,
			AssetCategoryReceivable:        true,
			AssetCategoryOther:             true,
		},
		DeductibleLiability: map[LiabilityCategory]bool{
			LiabilityCategoryPersonalLoan: true,
			LiabilityCategoryCreditCard:   true,
			LiabilityCategoryTaxesDue:     true,
		},
		JewelryExempt: false,
	},
	"hanafi": {
		Name:        "hanafi",
		Description: "Silver nisab with broad liability deduction; jewelry counted",
		NisabBasis:  NisabBasisSilver,
		EligibleCategories: map[AssetCategory]bool{
			AssetCategoryCash:              true,
			AssetCategoryBankAccount:       true,
			AssetCategoryGold:              true,
			AssetCategorySilver:            true,
			AssetCategoryCryptocurrency:    true,
			AssetCategoryBusinessAssets:    true,
			AssetCategoryInvestmentAccount: true,
			AssetCategoryRetirementAccount: true,
			AssetCategoryRealEstate:        true,
			AssetCategoryReceivable:        true,
			AssetCategoryOther:             true,
		},
		DeductibleLiability: map[LiabilityCategory]bool{
			LiabilityCategoryPersonalLoan: true,
			LiabilityCategoryCreditCard:   true,
			LiabilityCategoryMortgage:     true,
			LiabilityCategoryBusinessLoan: true,
			LiabilityCategoryTaxesDue:     true,
			LiabilityCategoryOther:        true,
		},
		JewelryExempt: false,
	},
	"shafi": {
		Name:        "shafi",
		Description: "Gold nisab with strict liability deduction; personal jewelry exempt",
		NisabBasis:  NisabBasisGold,
		EligibleCategories: map[AssetCategory]bool{
			AssetCategoryCash:              true,
			AssetCategoryBankAccount:       true,
			AssetCategoryGold:              true,
			AssetCategorySilver:            true,
			AssetCategoryCryptocurrency:    true,
			AssetCategoryBusinessAssets:    true,
			AssetCategoryInvestmentAccount: true,
			AssetCategoryReceivable:        true,
			AssetCategoryOther:             true,
		},
		DeductibleLiability: map[LiabilityCategory]bool{
			LiabilityCategoryPersonalLoan: true,
			LiabilityCategoryTaxesDue:     true,
		},
		JewelryExempt: true,
	},
}

// ResolveMethodology looks up a methodology by name, case-insensitively.
// Unknown or empty names resolve to the default methodology.
func ResolveMethodology(name string) MethodologyConfig {
	key := strings.ToLower(strings.TrimSpace(name))
	if cfg, ok := methodologies[key]; ok {
		return cfg
	}
	return methodologies[DefaultMethodology]
}

// MethodologyNames returns all registered methodology names in stable order
func MethodologyNames() []string {
	return []string{"standard", "hanafi", "shafi"}
}

// Methodologies returns all registered methodology configs in stable order
func Methodologies() []MethodologyConfig {
	names := MethodologyNames()
	configs := make([]MethodologyConfig, 0, len(names))
	for _, name := range names {
		configs = append(configs, methodologies[name])
	}
	return configs
}
