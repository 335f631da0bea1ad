package httpadapter

import (
	"github.com/google/uuid"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

type clientDTO struct {
	ClientID uuid.UUID `json:"client_id"`
	Login    string    `json:"login"`
	Age      int       `json:"age"`
	Location string    `json:"location"`
	Gender   string    `json:"gender"`
}

func (d clientDTO) toDomain() domain.Client {
	return domain.Client{
		ID:       d.ClientID,
		Login:    d.Login,
		Age:      d.Age,
		Location: d.Location,
		Gender:   domain.Gender(d.Gender),
	}
}

func clientToDTO(c domain.Client) clientDTO {
	return clientDTO{
		ClientID: c.ID,
		Login:    c.Login,
		Age:      c.Age,
		Location: c.Location,
		Gender:   string(c.Gender),
	}
}

type advertiserDTO struct {
	AdvertiserID uuid.UUID `json:"advertiser_id"`
	Name         string    `json:"name"`
}

type scoreDTO struct {
	ClientID     uuid.UUID `json:"client_id"`
	AdvertiserID uuid.UUID `json:"advertiser_id"`
	Score        int       `json:"score"`
}

type targetingDTO struct {
	Gender   *string `json:"gender,omitempty"`
	AgeFrom  *int    `json:"age_from,omitempty"`
	AgeTo    *int    `json:"age_to,omitempty"`
	Location *string `json:"location,omitempty"`
}

func (d *targetingDTO) toDomain() *domain.Targeting {
	if d == nil {
		return nil
	}
	t := &domain.Targeting{AgeFrom: d.AgeFrom, AgeTo: d.AgeTo, Location: d.Location}
	if d.Gender != nil {
		g := domain.Gender(*d.Gender)
		t.Gender = &g
	}
	return t
}

func targetingToDTO(t *domain.Targeting) *targetingDTO {
	if t == nil {
		return nil
	}
	d := &targetingDTO{AgeFrom: t.AgeFrom, AgeTo: t.AgeTo, Location: t.Location}
	if t.Gender != nil {
		g := string(*t.Gender)
		d.Gender = &g
	}
	return d
}

type campaignInDTO struct {
	ImpressionsLimit  int           `json:"impressions_limit"`
	ClicksLimit       int           `json:"clicks_limit"`
	CostPerImpression float64       `json:"cost_per_impression"`
	CostPerClick      float64       `json:"cost_per_click"`
	AdTitle           string        `json:"ad_title"`
	AdText            string        `json:"ad_text"`
	StartDate         int           `json:"start_date"`
	EndDate           int           `json:"end_date"`
	Targeting         *targetingDTO `json:"targeting,omitempty"`
}

func (d campaignInDTO) toInput() port.CampaignInput {
	return port.CampaignInput{
		ImpressionsLimit:  d.ImpressionsLimit,
		ClicksLimit:       d.ClicksLimit,
		CostPerImpression: d.CostPerImpression,
		CostPerClick:      d.CostPerClick,
		AdTitle:           d.AdTitle,
		AdText:            d.AdText,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		Targeting:         d.Targeting.toDomain(),
	}
}

type campaignOutDTO struct {
	CampaignID        uuid.UUID     `json:"campaign_id"`
	AdvertiserID      uuid.UUID     `json:"advertiser_id"`
	ImpressionsLimit  int           `json:"impressions_limit"`
	ClicksLimit       int           `json:"clicks_limit"`
	CostPerImpression float64       `json:"cost_per_impression"`
	CostPerClick      float64       `json:"cost_per_click"`
	AdTitle           string        `json:"ad_title"`
	AdText            string        `json:"ad_text"`
	StartDate         int           `json:"start_date"`
	EndDate           int           `json:"end_date"`
	Targeting         *targetingDTO `json:"targeting,omitempty"`
	Image             *string       `json:"image,omitempty"`
}

func campaignToDTO(c domain.Campaign) campaignOutDTO {
	return campaignOutDTO{
		CampaignID:        c.ID,
		AdvertiserID:      c.AdvertiserID,
		ImpressionsLimit:  c.ImpressionsLimit,
		ClicksLimit:       c.ClicksLimit,
		CostPerImpression: c.CostPerImpression,
		CostPerClick:      c.CostPerClick,
		AdTitle:           c.AdTitle,
		AdText:            c.AdText,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Targeting:         targetingToDTO(c.Targeting),
		Image:             c.ImageKey,
	}
}

type adOutDTO struct {
	AdID         uuid.UUID `json:"ad_id"`
	AdTitle      string    `json:"ad_title"`
	AdText       string    `json:"ad_text"`
	AdvertiserID uuid.UUID `json:"advertiser_id"`
}

type adClickDTO struct {
	ClientID uuid.UUID `json:"client_id"`
}

type statsDTO struct {
	ImpressionsCount int64   `json:"impressions_count"`
	ClicksCount      int64   `json:"clicks_count"`
	Conversion       float64 `json:"conversion"`
	SpentImpressions float64 `json:"spent_impressions"`
	SpentClicks      float64 `json:"spent_clicks"`
	SpentTotal       float64 `json:"spent_total"`
}

func statsToDTO(s port.StatsOut) statsDTO {
	return statsDTO{
		ImpressionsCount: s.ImpressionsCount,
		ClicksCount:      s.ClicksCount,
		Conversion:       s.Conversion,
		SpentImpressions: s.SpentImpressions,
		SpentClicks:      s.SpentClicks,
		SpentTotal:       s.SpentTotal,
	}
}

type dailyStatsDTO struct {
	statsDTO
	Date int `json:"date"`
}

type currentDayDTO struct {
	CurrentDate int `json:"current_date"`
}

type generationDTO struct {
	ProductName    string `json:"product_name"`
	TargetAction   string `json:"target_action"`
	TargetAudience string `json:"target_audience"`
}

type generatedTextDTO struct {
	Text string `json:"text"`
}

func toGenerationInput(d generationDTO) port.GenerationInput {
	return port.GenerationInput{
		ProductName:    d.ProductName,
		TargetAction:   d.TargetAction,
		TargetAudience: d.TargetAudience,
	}
}
