package port

import (
	"context"
	"io"

	"github.com/google/uuid"

	"orbit-ads/internal/core/domain"
)

// AdsUseCase is the primary port for the serving path: campaign selection
// and click recording.
type AdsUseCase interface {
	// ServeAd picks the single best matching active campaign for the
	// client, records the impression and returns the ad content. It
	// returns ErrNoEligibleCampaign when nothing can be served and
	// ErrNotFound for an unknown client.
	ServeAd(ctx context.Context, clientID uuid.UUID) (*AdOut, error)

	// RegisterClick records a click by the client on a served campaign.
	// Unknown ids yield ErrNotFound, a click without a prior impression
	// yields ErrNoImpression, and a repeat click is a silent no-op.
	RegisterClick(ctx context.Context, campaignID, clientID uuid.UUID) error
}

// AdOut is the served ad content.
type AdOut struct {
	AdID         uuid.UUID
	AdTitle      string
	AdText       string
	AdvertiserID uuid.UUID
}

// CampaignInput carries campaign attributes for create and update.
type CampaignInput struct {
	ImpressionsLimit  int
	ClicksLimit       int
	CostPerImpression float64
	CostPerClick      float64
	AdTitle           string
	AdText            string
	StartDate         int
	EndDate           int
	Targeting         *domain.Targeting
}

// GenerationInput describes the ad copy to generate.
type GenerationInput struct {
	ProductName    string
	TargetAction   string
	TargetAudience string
}

// CampaignUseCase is the campaign management surface.
type CampaignUseCase interface {
	Create(ctx context.Context, advertiserID uuid.UUID, in CampaignInput) (*domain.Campaign, error)
	Get(ctx context.Context, advertiserID, campaignID uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context, advertiserID uuid.UUID, size, page int) ([]domain.Campaign, error)
	Update(ctx context.Context, advertiserID, campaignID uuid.UUID, in CampaignInput) (*domain.Campaign, error)
	Delete(ctx context.Context, advertiserID, campaignID uuid.UUID) error
	UploadImage(ctx context.Context, advertiserID, campaignID uuid.UUID, filename, contentType string, body io.Reader, size int64) (*domain.Campaign, error)
	GenerateText(ctx context.Context, in GenerationInput) (string, error)
}

// DirectoryUseCase manages clients, advertisers and relevance scores.
type DirectoryUseCase interface {
	// UpsertClients creates or updates the valid entries and silently
	// drops invalid ones; the accepted entities are returned.
	UpsertClients(ctx context.Context, clients []domain.Client) ([]domain.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	UpsertAdvertisers(ctx context.Context, advertisers []domain.Advertiser) ([]domain.Advertiser, error)
	GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error)
	UpsertScore(ctx context.Context, score domain.MLScore) error
}

// StatsOut is an aggregate over a campaign or an advertiser's campaigns.
type StatsOut struct {
	ImpressionsCount int64
	ClicksCount      int64
	Conversion       float64
	SpentImpressions float64
	SpentClicks      float64
	SpentTotal       float64
}

// DailyStatsOut is StatsOut for a single simulated day.
type DailyStatsOut struct {
	Day int
	StatsOut
}

// StatsUseCase exposes aggregate statistics.
type StatsUseCase interface {
	Campaign(ctx context.Context, campaignID uuid.UUID) (*StatsOut, error)
	CampaignDaily(ctx context.Context, campaignID uuid.UUID) ([]DailyStatsOut, error)
	Advertiser(ctx context.Context, advertiserID uuid.UUID) (*StatsOut, error)
	AdvertiserDaily(ctx context.Context, advertiserID uuid.UUID) ([]DailyStatsOut, error)
}
