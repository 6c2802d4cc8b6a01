// Package entity contains the core business objects of the project.
package entity

import "thames/internal/errors"

// Tier represents a vendor's subscription level. Tiers are totally ordered
// by rank; most feature gating compares ranks rather than raw values.
type Tier string

const (
	// TierFree is the default tier for newly registered vendors.
	TierFree Tier = "free"
	// TierProfessional is the first paid tier.
	TierProfessional Tier = "tier1"
	// TierBusiness unlocks multi-location visibility and analytics.
	TierBusiness Tier = "tier2"
	// TierEnterprise is the highest tier.
	TierEnterprise Tier = "tier3"
)

// ErrInvalidTier is returned when a tier value is not one of the four known levels.
var ErrInvalidTier = errors.New("invalid tier value")

var tierRanks = map[Tier]int{
	TierFree:         0,
	TierProfessional: 1,
	TierBusiness:     2,
	TierEnterprise:   3,
}

// String returns the string representation of the Tier.
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the Tier is a valid value.
func (t Tier) IsValid() bool {
	_, ok := tierRanks[t]

	return ok
}

// Rank returns the tier's position in the ladder (free=0 .. tier3=3).
// Unknown tiers rank as free; use ParseTier to reject them explicitly.
func (t Tier) Rank() int {
	return tierRanks[t]
}

// AtLeast reports whether the tier meets or exceeds the given minimum.
func (t Tier) AtLeast(minimum Tier) bool {
	return t.Rank() >= minimum.Rank()
}

// ParseTier validates a raw tier string. Unknown values are rejected with
// ErrInvalidTier rather than coerced to a rank.
func ParseTier(raw string) (Tier, error) {
	t := Tier(raw)
	if !t.IsValid() {
		return "", errors.Wrapf(ErrInvalidTier, "tier %q", raw)
	}

	return t, nil
}

// NormalizeTier maps an absent or unknown tier to the lowest entitlement.
// Used where a vendor record predates the tier field; gating must fail
// toward free, never toward unlimited.
func NormalizeTier(raw string) Tier {
	t := Tier(raw)
	if !t.IsValid() {
		return TierFree
	}

	return t
}

// IsUpgrade reports whether moving from one tier to another is a strict upgrade.
func IsUpgrade(from, to Tier) bool {
	return to.Rank() > from.Rank()
}

// IsDowngrade reports whether moving from one tier to another is a strict downgrade.
func IsDowngrade(from, to Tier) bool {
	return to.Rank() < from.Rank()
}

// AllTiers lists the tiers in ascending rank order.
func AllTiers() []Tier {
	return []Tier{TierFree, TierProfessional, TierBusiness, TierEnterprise}
}
