package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTier_Rank_Ordering(t *testing.T) {
	assert.Equal(t, 0, TierFree.Rank())
	assert.Equal(t, 1, TierProfessional.Rank())
	assert.Equal(t, 2, TierBusiness.Rank())
	assert.Equal(t, 3, TierEnterprise.Rank())

	// Unknown tiers rank as free so gating fails closed.
	assert.Equal(t, 0, Tier("platinum").Rank())
}

func TestTier_AtLeast(t *testing.T) {
	assert.True(t, TierBusiness.AtLeast(TierBusiness))
	assert.True(t, TierEnterprise.AtLeast(TierBusiness))
	assert.False(t, TierProfessional.AtLeast(TierBusiness))
	assert.True(t, TierFree.AtLeast(TierFree))
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("tier2")
	require.NoError(t, err)
	assert.Equal(t, TierBusiness, tier)

	_, err = ParseTier("gold")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTier)

	_, err = ParseTier("")
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestNormalizeTier(t *testing.T) {
	assert.Equal(t, TierEnterprise, NormalizeTier("tier3"))
	assert.Equal(t, TierFree, NormalizeTier(""))
	assert.Equal(t, TierFree, NormalizeTier("unknown"))
}

func TestIsUpgradeAndDowngrade(t *testing.T) {
	assert.True(t, IsUpgrade(TierFree, TierProfessional))
	assert.True(t, IsUpgrade(TierProfessional, TierEnterprise))
	assert.False(t, IsUpgrade(TierBusiness, TierBusiness))
	assert.False(t, IsUpgrade(TierBusiness, TierFree))

	assert.True(t, IsDowngrade(TierBusiness, TierFree))
	assert.False(t, IsDowngrade(TierFree, TierFree))
	assert.False(t, IsDowngrade(TierFree, TierBusiness))
}

func TestAllTiers_AscendingRank(t *testing.T) {
	tiers := AllTiers()
	require.Len(t, tiers, 4)
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i].Rank(), tiers[i-1].Rank())
	}
}

func TestTierForRank(t *testing.T) {
	for _, tier := range AllTiers() {
		got, ok := TierForRank(tier.Rank())
		require.True(t, ok)
		assert.Equal(t, tier, got)
	}

	_, ok := TierForRank(42)
	assert.False(t, ok)
}

func TestDefaultTierCatalog_FeatureGating(t *testing.T) {
	catalog := DefaultTierCatalog()

	tests := []struct {
		feature FeatureKey
		minimum Tier
	}{
		{FeatureMultipleLocations, TierProfessional},
		{FeatureMediaGallery, TierProfessional},
		{FeatureExcelImport, TierBusiness},
		{FeatureAdvancedAnalytics, TierBusiness},
		{FeaturePromotionPack, TierEnterprise},
		{FeatureEditorialContent, TierEnterprise},
	}
	for _, tt := range tests {
		minimum, ok := catalog.MinimumTier[tt.feature]
		require.True(t, ok, "feature %s missing from catalog", tt.feature)
		assert.Equal(t, tt.minimum, minimum, "feature %s", tt.feature)
	}

	// Features absent from the map are denied for every tier.
	_, ok := catalog.MinimumTier[FeatureKey("timeTravel")]
	assert.False(t, ok)
}

func TestDefaultTierCatalog_Caps(t *testing.T) {
	catalog := DefaultTierCatalog()

	assert.Equal(t, 1, catalog.InfoFor(TierFree).MaxLocations)
	assert.Equal(t, 3, catalog.InfoFor(TierProfessional).MaxLocations)
	assert.Equal(t, 10, catalog.InfoFor(TierBusiness).MaxLocations)
	assert.Equal(t, 999, catalog.InfoFor(TierEnterprise).MaxLocations)

	// Unknown tiers fall back to the free tier caps.
	assert.Equal(t, catalog.InfoFor(TierFree), catalog.InfoFor(Tier("gold")))
}

func TestRequestStatus_Transitions(t *testing.T) {
	assert.False(t, RequestStatusPending.IsTerminal())
	assert.True(t, RequestStatusApproved.IsTerminal())
	assert.True(t, RequestStatusRejected.IsTerminal())
	assert.True(t, RequestStatusCancelled.IsTerminal())
}

func TestVendor_HQ(t *testing.T) {
	hq := VendorLocation{LocationName: "Monaco Office", IsHQ: true}
	branch := VendorLocation{LocationName: "Nice Office"}

	v := &Vendor{Locations: []VendorLocation{branch, hq}}
	got, ok := v.HQ()
	require.True(t, ok)
	assert.Equal(t, "Monaco Office", got.LocationName)

	// Without a flagged HQ the first location stands in.
	v = &Vendor{Locations: []VendorLocation{branch}}
	got, ok = v.HQ()
	require.True(t, ok)
	assert.Equal(t, "Nice Office", got.LocationName)

	v = &Vendor{}
	_, ok = v.HQ()
	assert.False(t, ok)
}

func TestVendorLocation_HasValidCoordinates(t *testing.T) {
	ok := VendorLocation{Latitude: 43.7384, Longitude: 7.4246}
	assert.True(t, ok.HasValidCoordinates())

	assert.False(t, VendorLocation{Latitude: 91, Longitude: 0}.HasValidCoordinates())
	assert.False(t, VendorLocation{Latitude: 0, Longitude: -181}.HasValidCoordinates())
	assert.False(t, VendorLocation{Latitude: math.NaN(), Longitude: 7}.HasValidCoordinates())
}
