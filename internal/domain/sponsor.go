package domain

import "time"

// SponsorTier orders sponsors on the showcase page.
type SponsorTier string

const (
	TierPlatinum SponsorTier = "platinum"
	TierGold     SponsorTier = "gold"
	TierSilver   SponsorTier = "silver"
	TierPartner  SponsorTier = "partner"
)

// Sponsor is a festival sponsor or partner organization.
type Sponsor struct {
	ID         string
	Name       string
	Tier       SponsorTier
	WebsiteURL string
	LogoURL    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
