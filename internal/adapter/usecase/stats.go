package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"orbit-ads/internal/core/port"
)

// StatsUseCase exposes aggregate delivery statistics. Raw totals come
// from the repository; conversion and total spend are derived here.
type StatsUseCase struct {
	stats     port.StatsRepository
	campaigns port.CampaignRepository
	directory port.DirectoryRepository
}

func NewStatsUseCase(stats port.StatsRepository, campaigns port.CampaignRepository, directory port.DirectoryRepository) *StatsUseCase {
	return &StatsUseCase{stats: stats, campaigns: campaigns, directory: directory}
}

func (u *StatsUseCase) Campaign(ctx context.Context, campaignID uuid.UUID) (*port.StatsOut, error) {
	if _, err := u.campaigns.GetCampaignByID(ctx, campaignID); err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	totals, err := u.stats.CampaignTotals(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign totals: %w", err)
	}
	out := buildStats(*totals)
	return &out, nil
}

func (u *StatsUseCase) CampaignDaily(ctx context.Context, campaignID uuid.UUID) ([]port.DailyStatsOut, error) {
	if _, err := u.campaigns.GetCampaignByID(ctx, campaignID); err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	daily, err := u.stats.CampaignDailyTotals(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign daily totals: %w", err)
	}
	return buildDailyStats(daily), nil
}

func (u *StatsUseCase) Advertiser(ctx context.Context, advertiserID uuid.UUID) (*port.StatsOut, error) {
	if _, err := u.directory.GetAdvertiser(ctx, advertiserID); err != nil {
		return nil, fmt.Errorf("get advertiser: %w", err)
	}
	totals, err := u.stats.AdvertiserTotals(ctx, advertiserID)
	if err != nil {
		return nil, fmt.Errorf("advertiser totals: %w", err)
	}
	out := buildStats(*totals)
	return &out, nil
}

func (u *StatsUseCase) AdvertiserDaily(ctx context.Context, advertiserID uuid.UUID) ([]port.DailyStatsOut, error) {
	if _, err := u.directory.GetAdvertiser(ctx, advertiserID); err != nil {
		return nil, fmt.Errorf("get advertiser: %w", err)
	}
	daily, err := u.stats.AdvertiserDailyTotals(ctx, advertiserID)
	if err != nil {
		return nil, fmt.Errorf("advertiser daily totals: %w", err)
	}
	return buildDailyStats(daily), nil
}

// buildStats derives conversion (clicks per hundred impressions, rounded
// to two decimal places) and total spend from raw totals.
func buildStats(t port.StatsTotals) port.StatsOut {
	var conversion float64
	if t.Impressions > 0 {
		conversion = math.Round(float64(t.Clicks)/float64(t.Impressions)*100*100) / 100
	}
	return port.StatsOut{
		ImpressionsCount: t.Impressions,
		ClicksCount:      t.Clicks,
		Conversion:       conversion,
		SpentImpressions: t.SpentImpressions,
		SpentClicks:      t.SpentClicks,
		SpentTotal:       t.SpentImpressions + t.SpentClicks,
	}
}

func buildDailyStats(daily []port.DailyStatsTotals) []port.DailyStatsOut {
	out := make([]port.DailyStatsOut, 0, len(daily))
	for _, d := range daily {
		out = append(out, port.DailyStatsOut{Day: d.Day, StatsOut: buildStats(d.StatsTotals)})
	}
	return out
}
