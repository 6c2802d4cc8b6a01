package entity

// FeatureKey names a tier-gated capability. Keys match the identifiers the
// dashboard sends when asking whether a feature is available.
type FeatureKey string

const (
	FeatureMultipleLocations FeatureKey = "multipleLocations"
	FeatureMediaGallery      FeatureKey = "media-gallery"
	FeatureAdvancedAnalytics FeatureKey = "advancedAnalytics"
	FeatureAPIAccess         FeatureKey = "apiAccess"
	FeatureCustomDomain      FeatureKey = "customDomain"
	FeatureExcelImport       FeatureKey = "excel-import"
	FeatureProductManagement FeatureKey = "productManagement"
	FeaturePromotionPack     FeatureKey = "promotionPack"
	FeatureEditorialContent  FeatureKey = "editorialContent"
)

// TierInfo describes one tier for display and upgrade-prompt purposes.
type TierInfo struct {
	Name         string   // Display name, e.g. "Business".
	Description  string   // One-line description used in emails and prompts.
	MonthlyPrice int      // Monthly price in EUR; 0 for the free tier.
	YearlyPrice  int      // Yearly price in EUR.
	MaxLocations int      // Location cap; the caller disables "add" at the cap.
	MaxProducts  int      // Product cap.
	MaxMedia     int      // Media gallery cap.
	Benefits     []string // Benefit list rendered into approval emails.
}

// TierCatalog is the immutable configuration the entitlement resolver works
// from: the feature minimum-tier table plus per-tier display and cap data.
// It is constructed once and injected, never mutated.
type TierCatalog struct {
	// MinimumTier maps each feature to the lowest tier allowed to use it.
	// Features absent from the map are denied for every tier (fail closed).
	MinimumTier map[FeatureKey]Tier

	// Info holds per-tier display names, pricing, caps and benefits.
	Info map[Tier]TierInfo
}

// DefaultTierCatalog returns the production tier configuration.
func DefaultTierCatalog() *TierCatalog {
	return &TierCatalog{
		MinimumTier: map[FeatureKey]Tier{
			FeatureMultipleLocations: TierProfessional,
			FeatureMediaGallery:      TierProfessional,
			FeatureAdvancedAnalytics: TierBusiness,
			FeatureAPIAccess:         TierBusiness,
			FeatureCustomDomain:      TierBusiness,
			FeatureExcelImport:       TierBusiness,
			FeatureProductManagement: TierBusiness,
			FeaturePromotionPack:     TierEnterprise,
			FeatureEditorialContent:  TierEnterprise,
		},
		Info: map[Tier]TierInfo{
			TierFree: {
				Name:         "Free",
				Description:  "Basic profile with single location",
				MonthlyPrice: 0,
				YearlyPrice:  0,
				MaxLocations: 1,
				MaxProducts:  3,
				MaxMedia:     5,
				Benefits: []string{
					"Basic profile listing",
					"Contact information display",
				},
			},
			TierProfessional: {
				Name:         "Professional",
				Description:  "Enhanced profile with up to 3 locations",
				MonthlyPrice: 99,
				YearlyPrice:  990,
				MaxLocations: 3,
				MaxProducts:  10,
				MaxMedia:     20,
				Benefits: []string{
					"Enhanced profile",
					"Social media links",
					"Certifications & Awards",
					"Team members",
				},
			},
			TierBusiness: {
				Name:         "Business",
				Description:  "Business profile with up to 10 locations and analytics",
				MonthlyPrice: 299,
				YearlyPrice:  2990,
				MaxLocations: 10,
				MaxProducts:  25,
				MaxMedia:     50,
				Benefits: []string{
					"Full product management",
					"Multiple locations",
					"Featured in category",
					"Advanced analytics",
				},
			},
			TierEnterprise: {
				Name:         "Enterprise",
				Description:  "Enterprise profile with unlimited locations and premium features",
				MonthlyPrice: 999,
				YearlyPrice:  9990,
				MaxLocations: 999,
				MaxProducts:  999,
				MaxMedia:     999,
				Benefits: []string{
					"Premium promotion",
					"Homepage banner placement",
					"Editorial content",
					"Dedicated support",
				},
			},
		},
	}
}

// InfoFor returns the display info for a tier, falling back to the free
// tier for unknown values.
func (c *TierCatalog) InfoFor(tier Tier) TierInfo {
	if info, ok := c.Info[tier]; ok {
		return info
	}

	return c.Info[TierFree]
}

// TierForRank returns the tier whose rank equals the given value, or false
// when no tier matches.
func TierForRank(rank int) (Tier, bool) {
	for tier, r := range tierRanks {
		if r == rank {
			return tier, true
		}
	}

	return "", false
}
