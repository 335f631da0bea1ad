package domain

import "github.com/google/uuid"

// Impression records that a campaign was shown to a client. At most one
// impression exists per (client, campaign) pair; the cost is the
// campaign's cost_per_impression at serve time.
type Impression struct {
	ClientID   uuid.UUID
	CampaignID uuid.UUID
	Day        int
	Cost       float64
}

// Click records that a client clicked a previously shown campaign. Like
// impressions, clicks are unique per (client, campaign) pair.
type Click struct {
	ClientID   uuid.UUID
	CampaignID uuid.UUID
	Day        int
	Cost       float64
}
