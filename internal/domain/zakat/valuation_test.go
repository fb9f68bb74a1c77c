package zakat

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared/valueobject"
)

func newTestAsset(t *testing.T, category AssetCategory, value float64) *Asset {
	t.Helper()
	asset, err := NewAsset(uuid.New(), "test asset", category, valueobject.NewMoneyUSDFromFloat(value))
	require.NoError(t, err)
	return asset
}

func decimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func TestIsEligible(t *testing.T) {
	standard := ResolveMethodology("standard")
	shafi := ResolveMethodology("shafi")

	t.Run("category outside methodology set is ineligible", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryRealEstate, 100000)
		assert.False(t, IsEligible(asset, standard))
	})

	t.Run("category exclusion beats an explicit include override", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryRealEstate, 100000)
		require.NoError(t, asset.SetOverride(EligibilityIncluded))
		assert.False(t, IsEligible(asset, standard))
	})

	t.Run("explicit override wins over defaults", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryCash, 1000)
		require.NoError(t, asset.SetOverride(EligibilityExcluded))
		assert.False(t, IsEligible(asset, standard))

		require.NoError(t, asset.SetOverride(EligibilityIncluded))
		assert.True(t, IsEligible(asset, standard))
	})

	t.Run("jewelry exemption excludes gold and silver by default", func(t *testing.T) {
		gold := newTestAsset(t, AssetCategoryGold, 5000)
		silver := newTestAsset(t, AssetCategorySilver, 800)

		assert.False(t, IsEligible(gold, shafi))
		assert.False(t, IsEligible(silver, shafi))

		// Same assets count under a methodology without the exemption.
		assert.True(t, IsEligible(gold, standard))
		assert.True(t, IsEligible(silver, standard))
	})

	t.Run("override re-includes exempted jewelry", func(t *testing.T) {
		gold := newTestAsset(t, AssetCategoryGold, 5000)
		require.NoError(t, gold.SetOverride(EligibilityIncluded))
		assert.True(t, IsEligible(gold, shafi))
	})

	t.Run("plain eligible asset", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryBankAccount, 2500)
		assert.True(t, IsEligible(asset, standard))
	})
}

func TestZakatableValue(t *testing.T) {
	standard := ResolveMethodology("standard")

	t.Run("ineligible asset contributes zero", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryRealEstate, 100000)
		assert.True(t, ZakatableValue(asset, standard).IsZero())
	})

	t.Run("modifier scales the value", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryInvestmentAccount, 10000)
		require.NoError(t, asset.SetModifier(decimalPtr(0.4)))

		got := ZakatableValue(asset, standard)
		assert.True(t, got.Equal(decimal.NewFromInt(4000)), "got %s", got)
	})

	t.Run("modifier of 1.0 behaves as unset", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryInvestmentAccount, 10000)
		require.NoError(t, asset.SetModifier(decimalPtr(1.0)))
		asset.SetPassiveInvestment(true)

		// The 1.0 modifier does not shadow the passive haircut.
		got := ZakatableValue(asset, standard)
		assert.True(t, got.Equal(decimal.NewFromInt(3000)), "got %s", got)
	})

	t.Run("modifier overrides the retirement rule", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryRetirementAccount, 10000)
		require.NoError(t, asset.SetRetirementRates(decimalPtr(0.1), decimalPtr(0.2)))
		require.NoError(t, asset.SetModifier(decimalPtr(0.5)))

		got := ZakatableValue(asset, standard)
		assert.True(t, got.Equal(decimal.NewFromInt(5000)), "got %s", got)
	})

	t.Run("modifier overrides the passive haircut", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryInvestmentAccount, 10000)
		asset.SetPassiveInvestment(true)
		require.NoError(t, asset.SetModifier(decimalPtr(0.9)))

		got := ZakatableValue(asset, standard)
		assert.True(t, got.Equal(decimal.NewFromInt(9000)), "got %s", got)
	})

	t.Run("retirement account yields net-withdrawable value", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryRetirementAccount, 10000)
		require.NoError(t, asset.SetRetirementRates(decimalPtr(0.1), decimalPtr(0.2)))

		got := ZakatableValue(asset, standard)
		assert.True(t, got.Equal(decimal.NewFromInt(7000)), "got %s", got)
	})

	t.Run("retirement rates default to zero", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryRetirementAccount, 10000)

		got := ZakatableValue(asset, standard)
		assert.True(t, got.Equal(decimal.NewFromInt(10000)), "got %s", got)
	})

	t.Run("retirement factor floors at zero", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryRetirementAccount, 10000)
		require.NoError(t, asset.SetRetirementRates(decimalPtr(0.7), decimalPtr(0.6)))

		got := ZakatableValue(asset, standard)
		assert.True(t, got.IsZero(), "got %s", got)
		assert.False(t, got.IsNegative())
	})

	t.Run("passive investment takes the fixed haircut", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryInvestmentAccount, 10000)
		asset.SetPassiveInvestment(true)

		got := ZakatableValue(asset, standard)
		assert.True(t, got.Equal(decimal.NewFromInt(3000)), "got %s", got)
	})

	t.Run("default is the full value", func(t *testing.T) {
		asset := newTestAsset(t, AssetCategoryCash, 1234.56)

		got := ZakatableValue(asset, standard)
		assert.True(t, got.Equal(decimal.NewFromFloat(1234.56)), "got %s", got)
	})
}
