package postgres

import (
	"context"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"orbit-ads/internal/core/port"
)

// StatsRepository aggregates impression and click facts.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// eventTotals sums one fact table filtered either by campaign or, via a
// campaigns join, by advertiser.
func (r *StatsRepository) eventTotals(ctx context.Context, table string, campaignID, advertiserID *uuid.UUID) (count int64, spent float64, err error) {
	builder := sq.Select("COALESCE(COUNT(*), 0)", "COALESCE(SUM(e.cost), 0)").
		From(table + " e").
		PlaceholderFormat(sq.Dollar)
	if campaignID != nil {
		builder = builder.Where(sq.Eq{"e.campaign_id": *campaignID})
	}
	if advertiserID != nil {
		builder = builder.
			Join("campaigns c ON c.id = e.campaign_id").
			Where(sq.Eq{"c.advertiser_id": *advertiserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build totals query: %w", err)
	}
	err = r.pool.QueryRow(ctx, query, args...).Scan(&count, &spent)
	return count, spent, err
}

func (r *StatsRepository) totals(ctx context.Context, campaignID, advertiserID *uuid.UUID) (*port.StatsTotals, error) {
	impCount, impSpent, err := r.eventTotals(ctx, "impressions", campaignID, advertiserID)
	if err != nil {
		return nil, err
	}
	clickCount, clickSpent, err := r.eventTotals(ctx, "clicks", campaignID, advertiserID)
	if err != nil {
		return nil, err
	}
	return &port.StatsTotals{
		Impressions:      impCount,
		Clicks:           clickCount,
		SpentImpressions: impSpent,
		SpentClicks:      clickSpent,
	}, nil
}

func (r *StatsRepository) CampaignTotals(ctx context.Context, campaignID uuid.UUID) (*port.StatsTotals, error) {
	return r.totals(ctx, &campaignID, nil)
}

func (r *StatsRepository) AdvertiserTotals(ctx context.Context, advertiserID uuid.UUID) (*port.StatsTotals, error) {
	return r.totals(ctx, nil, &advertiserID)
}

type dailyRow struct {
	day   int
	count int64
	spent float64
}

func (r *StatsRepository) eventDaily(ctx context.Context, table string, campaignID, advertiserID *uuid.UUID) ([]dailyRow, error) {
	builder := sq.Select("e.day", "COUNT(*)", "COALESCE(SUM(e.cost), 0)").
		From(table + " e").
		GroupBy("e.day").
		OrderBy("e.day").
		PlaceholderFormat(sq.Dollar)
	if campaignID != nil {
		builder = builder.Where(sq.Eq{"e.campaign_id": *campaignID})
	}
	if advertiserID != nil {
		builder = builder.
			Join("campaigns c ON c.id = e.campaign_id").
			Where(sq.Eq{"c.advertiser_id": *advertiserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build daily query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []dailyRow
	for rows.Next() {
		var dr dailyRow
		if err = rows.Scan(&dr.day, &dr.count, &dr.spent); err != nil {
			return nil, err
		}
		out = append(out, dr)
	}
	return out, rows.Err()
}

// daily merges the per-day impression and click aggregates into one
// ascending series; days with only one kind of event still get an entry.
func (r *StatsRepository) daily(ctx context.Context, campaignID, advertiserID *uuid.UUID) ([]port.DailyStatsTotals, error) {
	impressions, err := r.eventDaily(ctx, "impressions", campaignID, advertiserID)
	if err != nil {
		return nil, err
	}
	clicks, err := r.eventDaily(ctx, "clicks", campaignID, advertiserID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int]*port.DailyStatsTotals, len(impressions))
	for _, row := range impressions {
		byDay[row.day] = &port.DailyStatsTotals{
			Day:         row.day,
			StatsTotals: port.StatsTotals{Impressions: row.count, SpentImpressions: row.spent},
		}
	}
	for _, row := range clicks {
		entry, ok := byDay[row.day]
		if !ok {
			entry = &port.DailyStatsTotals{Day: row.day}
			byDay[row.day] = entry
		}
		entry.Clicks = row.count
		entry.SpentClicks = row.spent
	}

	out := make([]port.DailyStatsTotals, 0, len(byDay))
	for _, entry := range byDay {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (r *StatsRepository) CampaignDailyTotals(ctx context.Context, campaignID uuid.UUID) ([]port.DailyStatsTotals, error) {
	return r.daily(ctx, &campaignID, nil)
}

func (r *StatsRepository) AdvertiserDailyTotals(ctx context.Context, advertiserID uuid.UUID) ([]port.DailyStatsTotals, error) {
	return r.daily(ctx, nil, &advertiserID)
}
