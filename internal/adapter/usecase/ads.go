package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
	"orbit-ads/internal/metrics"
)

// AdsUseCase implements the serving path: eligibility filtering, ranking,
// impression recording and click recording. The selection itself performs
// no mutation; side effects happen only after a winner is chosen.
type AdsUseCase struct {
	ads       port.AdRepository
	directory port.DirectoryRepository
	campaigns port.CampaignRepository
	clock     port.Clock
	metrics   *metrics.Metrics
}

// NewAdsUseCase wires the serving dependencies.
func NewAdsUseCase(
	ads port.AdRepository,
	directory port.DirectoryRepository,
	campaigns port.CampaignRepository,
	clock port.Clock,
	m *metrics.Metrics,
) *AdsUseCase {
	return &AdsUseCase{ads: ads, directory: directory, campaigns: campaigns, clock: clock, metrics: m}
}

// ServeAd selects the best matching campaign for the client and records
// the impression. ErrNoEligibleCampaign is returned when either the
// targeting query or the eligibility filter leaves no candidates.
func (u *AdsUseCase) ServeAd(ctx context.Context, clientID uuid.UUID) (*port.AdOut, error) {
	client, err := u.directory.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	day, err := u.clock.CurrentDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("current day: %w", err)
	}

	candidates, err := u.ads.CandidateCampaigns(ctx, *client, day)
	if err != nil {
		return nil, fmt.Errorf("candidate campaigns: %w", err)
	}
	if len(candidates) == 0 {
		return nil, port.ErrNoEligibleCampaign
	}

	seen, err := u.ads.SeenCampaigns(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("seen campaigns: %w", err)
	}

	advertiserIDs := make([]uuid.UUID, 0, len(candidates))
	unique := make(map[uuid.UUID]struct{}, len(candidates))
	for _, c := range candidates {
		if _, ok := unique[c.AdvertiserID]; ok {
			continue
		}
		unique[c.AdvertiserID] = struct{}{}
		advertiserIDs = append(advertiserIDs, c.AdvertiserID)
	}
	relevance, err := u.ads.RelevanceScores(ctx, clientID, advertiserIDs)
	if err != nil {
		return nil, fmt.Errorf("relevance scores: %w", err)
	}

	winner := selectBestCampaign(candidates, seen, relevance, day)
	if winner == nil {
		return nil, port.ErrNoEligibleCampaign
	}

	imp := domain.Impression{
		ClientID:   clientID,
		CampaignID: winner.ID,
		Day:        day,
		Cost:       winner.CostPerImpression,
	}
	if err = u.ads.RecordImpression(ctx, imp); err != nil {
		return nil, fmt.Errorf("record impression: %w", err)
	}
	u.metrics.ObserveImpression(winner.ID, winner.AdvertiserID, day)

	return &port.AdOut{
		AdID:         winner.ID,
		AdTitle:      winner.AdTitle,
		AdText:       winner.AdText,
		AdvertiserID: winner.AdvertiserID,
	}, nil
}

// RegisterClick records a click on a served campaign. A click without a
// prior impression is rejected with ErrNoImpression; a repeat click by
// the same client is a silent no-op.
func (u *AdsUseCase) RegisterClick(ctx context.Context, campaignID, clientID uuid.UUID) error {
	campaign, err := u.campaigns.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get campaign: %w", err)
	}
	if _, err = u.directory.GetClient(ctx, clientID); err != nil {
		return fmt.Errorf("get client: %w", err)
	}

	shown, err := u.ads.HasImpression(ctx, clientID, campaignID)
	if err != nil {
		return fmt.Errorf("impression lookup: %w", err)
	}
	if !shown {
		return port.ErrNoImpression
	}

	day, err := u.clock.CurrentDay(ctx)
	if err != nil {
		return fmt.Errorf("current day: %w", err)
	}

	click := domain.Click{
		ClientID:   clientID,
		CampaignID: campaignID,
		Day:        day,
		Cost:       campaign.CostPerClick,
	}
	created, err := u.ads.RecordClick(ctx, click)
	if err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	if created {
		u.metrics.ObserveClick(campaignID, campaign.AdvertiserID, day)
	}
	return nil
}
