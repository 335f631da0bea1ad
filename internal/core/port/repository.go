package port

import (
	"context"

	"github.com/google/uuid"

	"orbit-ads/internal/core/domain"
)

// AdRepository is the outbound port for the serving path. Implementations
// must return candidate campaigns in a stable, deterministic order for a
// given call; the ranking tie-break depends on it.
type AdRepository interface {
	// CandidateCampaigns returns campaigns whose targeting matches the
	// client and whose [start_date, end_date] window contains day.
	// Impression budget and prior-impression filtering are not applied
	// here; that is the eligibility filter's job.
	CandidateCampaigns(ctx context.Context, client domain.Client, day int) ([]domain.Campaign, error)

	// SeenCampaigns returns the set of campaign ids the client already
	// has an impression for.
	SeenCampaigns(ctx context.Context, clientID uuid.UUID) (map[uuid.UUID]struct{}, error)

	// RelevanceScores returns ML scores for the client against each of
	// the given advertisers. Absent pairs are simply missing from the map.
	RelevanceScores(ctx context.Context, clientID uuid.UUID, advertiserIDs []uuid.UUID) (map[uuid.UUID]int, error)

	// RecordImpression inserts the impression fact and increments the
	// campaign's impressions_count. The insert is idempotent per
	// (client, campaign); the counter is only incremented on first insert.
	RecordImpression(ctx context.Context, imp domain.Impression) error

	// HasImpression reports whether the client was shown the campaign.
	HasImpression(ctx context.Context, clientID, campaignID uuid.UUID) (bool, error)

	// RecordClick inserts the click fact and increments clicks_count when
	// the pair is new. It returns false without error on a repeat click.
	RecordClick(ctx context.Context, click domain.Click) (bool, error)
}

// CampaignRepository persists campaigns for the CRUD surface.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign scopes the lookup to an advertiser; a campaign owned by
	// someone else behaves as absent.
	GetCampaign(ctx context.Context, advertiserID, campaignID uuid.UUID) (*domain.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, advertiserID uuid.UUID, limit, offset uint64) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	DeleteCampaign(ctx context.Context, advertiserID, campaignID uuid.UUID) error
	SetCampaignImage(ctx context.Context, advertiserID, campaignID uuid.UUID, imageKey string) error
}

// DirectoryRepository persists clients, advertisers and relevance scores.
type DirectoryRepository interface {
	UpsertClients(ctx context.Context, clients []domain.Client) error
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	UpsertAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error
	GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error)
	UpsertScore(ctx context.Context, score domain.MLScore) error
}

// StatsTotals is a raw aggregate over impression and click facts.
type StatsTotals struct {
	Impressions      int64
	Clicks           int64
	SpentImpressions float64
	SpentClicks      float64
}

// DailyStatsTotals is StatsTotals broken down by simulated day.
type DailyStatsTotals struct {
	Day int
	StatsTotals
}

// StatsRepository aggregates recorded facts.
type StatsRepository interface {
	CampaignTotals(ctx context.Context, campaignID uuid.UUID) (*StatsTotals, error)
	CampaignDailyTotals(ctx context.Context, campaignID uuid.UUID) ([]DailyStatsTotals, error)
	AdvertiserTotals(ctx context.Context, advertiserID uuid.UUID) (*StatsTotals, error)
	AdvertiserDailyTotals(ctx context.Context, advertiserID uuid.UUID) ([]DailyStatsTotals, error)
}
