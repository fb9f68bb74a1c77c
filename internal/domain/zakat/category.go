package zakat

import "strings"

// AssetCategory classifies a holding for eligibility and valuation rules
type AssetCategory string

const (
	AssetCategoryCash              AssetCategory = "CASH"
	AssetCategoryBankAccount       AssetCategory = "BANK_ACCOUNT"
	AssetCategoryGold              AssetCategory = "GOLD"
	AssetCategorySilver            AssetCategory = "SILVER"
	AssetCategoryCryptocurrency    AssetCategory = "CRYPTOCURRENCY"
	AssetCategoryBusinessAssets    AssetCategory = "BUSINESS_ASSETS"
	AssetCategoryInvestmentAccount AssetCategory = "INVESTMENT_ACCOUNT"
	AssetCategoryRetirementAccount AssetCategory = "RETIREMENT_ACCOUNT"
	AssetCategoryRealEstate        AssetCategory = "REAL_ESTATE"
	AssetCategoryReceivable        AssetCategory = "RECEIVABLE"
	AssetCategoryOther             AssetCategory = "OTHER"
)

// AllAssetCategories lists every valid asset category
var AllAssetCategories = []AssetCategory{
	AssetCategoryCash,
	AssetCategoryBankAccount,
	AssetCategoryGold,
	AssetCategorySilver,
	AssetCategoryCryptocurrency,
	AssetCategoryBusinessAssets,
	AssetCategoryInvestmentAccount,
	AssetCategoryRetirementAccount,
	AssetCategoryRealEstate,
	AssetCategoryReceivable,
	AssetCategoryOther,
}

// IsValid checks if the category is a valid AssetCategory
func (c AssetCategory) IsValid() bool {
	for _, valid := range AllAssetCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// String returns the string representation of AssetCategory
func (c AssetCategory) String() string {
	return string(c)
}

// IsPreciousMetal returns true for gold and silver holdings
func (c AssetCategory) IsPreciousMetal() bool {
	return c == AssetCategoryGold || c == AssetCategorySilver
}

// ParseAssetCategory parses a category string case-insensitively
func ParseAssetCategory(s string) (AssetCategory, bool) {
	c := AssetCategory(strings.ToUpper(strings.TrimSpace(s)))
	if c.IsValid() {
		return c, true
	}
	return "", false
}

// LiabilityCategory classifies a debt for methodology deduction whitelists
type LiabilityCategory string

const (
	LiabilityCategoryPersonalLoan LiabilityCategory = "PERSONAL_LOAN"
	LiabilityCategoryCreditCard   LiabilityCategory = "CREDIT_CARD"
	LiabilityCategoryMortgage     LiabilityCategory = "MORTGAGE"
	LiabilityCategoryBusinessLoan LiabilityCategory = "BUSINESS_LOAN"
	LiabilityCategoryTaxesDue     LiabilityCategory = "TAXES_DUE"
	LiabilityCategoryOther        LiabilityCategory = "OTHER"
)

// AllLiabilityCategories lists every valid liability category
var AllLiabilityCategories = []LiabilityCategory{
	LiabilityCategoryPersonalLoan,
	LiabilityCategoryCreditCard,
	LiabilityCategoryMortgage,
	LiabilityCategoryBusinessLoan,
	LiabilityCategoryTaxesDue,
	LiabilityCategoryOther,
}

// IsValid checks if the category is a valid LiabilityCategory
func (c LiabilityCategory) IsValid() bool {
	for _, valid := range AllLiabilityCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// String returns the string representation of LiabilityCategory
func (c LiabilityCategory) String() string {
	return string(c)
}

// ParseLiabilityCategory parses a category string case-insensitively
func ParseLiabilityCategory(s string) (LiabilityCategory, bool) {
	c := LiabilityCategory(strings.ToUpper(strings.TrimSpace(s)))
	if c.IsValid() {
		return c, true
	}
	return "", false
}

// EligibilityOverride is an explicit per-asset eligibility decision that
// takes precedence over category defaults. The zero value means unset.
type EligibilityOverride string

const (
	EligibilityUnset    EligibilityOverride = ""
	EligibilityIncluded EligibilityOverride = "INCLUDED"
	EligibilityExcluded EligibilityOverride = "EXCLUDED"
)

// IsValid checks if the override is one of the three allowed states
func (o EligibilityOverride) IsValid() bool {
	return o == EligibilityUnset || o == EligibilityIncluded || o == EligibilityExcluded
}

// IsSet returns true when the owner made an explicit decision
func (o EligibilityOverride) IsSet() bool {
	return o == EligibilityIncluded || o == EligibilityExcluded
}
