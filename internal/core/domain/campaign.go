package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Targeting restricts which clients a campaign may be served to. All
// fields are optional; a nil field matches every client.
type Targeting struct {
	Gender   *Gender
	AgeFrom  *int
	AgeTo    *int
	Location *string
}

// Validate checks age bounds and the gender enumeration.
func (t Targeting) Validate() error {
	if t.Gender != nil {
		switch *t.Gender {
		case GenderMale, GenderFemale, GenderAll:
		default:
			return fmt.Errorf("targeting gender must be MALE, FEMALE or ALL")
		}
	}
	for name, v := range map[string]*int{"age_from": t.AgeFrom, "age_to": t.AgeTo} {
		if v != nil && (*v < 0 || *v > 100) {
			return fmt.Errorf("targeting %s %d out of range [0,100]", name, *v)
		}
	}
	if t.AgeFrom != nil && t.AgeTo != nil && *t.AgeFrom > *t.AgeTo {
		return fmt.Errorf("targeting age_from > age_to")
	}
	return nil
}

// Campaign is an advertising campaign. Dates are simulated day numbers,
// inclusive on both ends. ImpressionsCount and ClicksCount only ever grow
// and are incremented at most once per unique (client, campaign) pair.
type Campaign struct {
	ID           uuid.UUID
	AdvertiserID uuid.UUID

	ImpressionsLimit int
	ImpressionsCount int
	ClicksLimit      int
	ClicksCount      int

	CostPerImpression float64
	CostPerClick      float64

	AdTitle string
	AdText  string

	StartDate int
	EndDate   int

	Targeting *Targeting
	ImageKey  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the campaign window contains the given day.
func (c Campaign) Active(currentDay int) bool {
	return c.StartDate <= currentDay && currentDay <= c.EndDate
}

// Validate checks structural campaign constraints against the current
// simulated day.
func (c Campaign) Validate(currentDay int) error {
	if c.AdTitle == "" {
		return fmt.Errorf("ad_title must not be empty")
	}
	if c.AdText == "" {
		return fmt.Errorf("ad_text must not be empty")
	}
	if c.ImpressionsLimit < 0 || c.ClicksLimit < 0 {
		return fmt.Errorf("limits must be non-negative")
	}
	if c.ClicksLimit > c.ImpressionsLimit {
		return fmt.Errorf("clicks_limit %d > impressions_limit %d", c.ClicksLimit, c.ImpressionsLimit)
	}
	if c.CostPerImpression < 0 || c.CostPerClick < 0 {
		return fmt.Errorf("costs must be non-negative")
	}
	if c.EndDate < c.StartDate {
		return fmt.Errorf("end_date %d < start_date %d", c.EndDate, c.StartDate)
	}
	if c.StartDate < currentDay || c.EndDate < currentDay {
		return fmt.Errorf("the campaign cannot start or end in the past")
	}
	if c.Targeting != nil {
		if err := c.Targeting.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FrozenFields returns the set of campaign fields that may not change in
// an update while the campaign is active. The mapping is deliberately an
// explicit table keyed by activity rather than derived per field.
func (c Campaign) FrozenFields(currentDay int) map[CampaignField]struct{} {
	if !c.Active(currentDay) {
		return nil
	}
	return activeFrozenFields
}

// CampaignField identifies a mutable campaign attribute for the
// update allow-table.
type CampaignField string

const (
	FieldImpressionsLimit CampaignField = "impressions_limit"
	FieldClicksLimit      CampaignField = "clicks_limit"
	FieldStartDate        CampaignField = "start_date"
	FieldEndDate          CampaignField = "end_date"
)

var activeFrozenFields = map[CampaignField]struct{}{
	FieldImpressionsLimit: {},
	FieldClicksLimit:      {},
	FieldStartDate:        {},
	FieldEndDate:          {},
}
