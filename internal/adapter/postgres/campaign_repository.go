package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

// campaignColumns is the scan order shared by every campaign query.
const campaignColumns = `id, advertiser_id, impressions_limit, impressions_count,
	clicks_limit, clicks_count, cost_per_impression, cost_per_click,
	ad_title, ad_text, start_date, end_date,
	targeting_gender, targeting_age_from, targeting_age_to, targeting_location,
	image_key, created_at, updated_at`

var campaignColumnList = []string{
	"id", "advertiser_id", "impressions_limit", "impressions_count",
	"clicks_limit", "clicks_count", "cost_per_impression", "cost_per_click",
	"ad_title", "ad_text", "start_date", "end_date",
	"targeting_gender", "targeting_age_from", "targeting_age_to", "targeting_location",
	"image_key", "created_at", "updated_at",
}

// CampaignRepository implements port.CampaignRepository on pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c        domain.Campaign
		gender   *string
		ageFrom  *int
		ageTo    *int
		location *string
	)
	err := row.Scan(
		&c.ID, &c.AdvertiserID, &c.ImpressionsLimit, &c.ImpressionsCount,
		&c.ClicksLimit, &c.ClicksCount, &c.CostPerImpression, &c.CostPerClick,
		&c.AdTitle, &c.AdText, &c.StartDate, &c.EndDate,
		&gender, &ageFrom, &ageTo, &location,
		&c.ImageKey, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if gender != nil || ageFrom != nil || ageTo != nil || location != nil {
		t := &domain.Targeting{AgeFrom: ageFrom, AgeTo: ageTo, Location: location}
		if gender != nil {
			g := domain.Gender(*gender)
			t.Gender = &g
		}
		c.Targeting = t
	}
	return c, nil
}

func targetingValues(t *domain.Targeting) (gender *string, ageFrom, ageTo *int, location *string) {
	if t == nil {
		return nil, nil, nil, nil
	}
	if t.Gender != nil {
		g := string(*t.Gender)
		gender = &g
	}
	return gender, t.AgeFrom, t.AgeTo, t.Location
}

func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	gender, ageFrom, ageTo, location := targetingValues(c.Targeting)
	row := r.pool.QueryRow(ctx, `INSERT INTO campaigns
		(id, advertiser_id, impressions_limit, clicks_limit, cost_per_impression, cost_per_click,
		 ad_title, ad_text, start_date, end_date,
		 targeting_gender, targeting_age_from, targeting_age_to, targeting_location)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING created_at, updated_at`,
		c.ID, c.AdvertiserID, c.ImpressionsLimit, c.ClicksLimit, c.CostPerImpression, c.CostPerClick,
		c.AdTitle, c.AdText, c.StartDate, c.EndDate,
		gender, ageFrom, ageTo, location)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) GetCampaign(ctx context.Context, advertiserID, campaignID uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 AND advertiser_id = $2`,
		campaignID, advertiserID)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, campaignID)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) ListCampaigns(ctx context.Context, advertiserID uuid.UUID, limit, offset uint64) ([]domain.Campaign, error) {
	query, args, err := sq.Select(campaignColumnList...).
		From("campaigns").
		Where(sq.Eq{"advertiser_id": advertiserID}).
		OrderBy("created_at", "id").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	gender, ageFrom, ageTo, location := targetingValues(c.Targeting)
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
		impressions_limit = $1, clicks_limit = $2,
		cost_per_impression = $3, cost_per_click = $4,
		ad_title = $5, ad_text = $6, start_date = $7, end_date = $8,
		targeting_gender = $9, targeting_age_from = $10, targeting_age_to = $11, targeting_location = $12,
		updated_at = now()
		WHERE id = $13 AND advertiser_id = $14`,
		c.ImpressionsLimit, c.ClicksLimit,
		c.CostPerImpression, c.CostPerClick,
		c.AdTitle, c.AdText, c.StartDate, c.EndDate,
		gender, ageFrom, ageTo, location,
		c.ID, c.AdvertiserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *CampaignRepository) DeleteCampaign(ctx context.Context, advertiserID, campaignID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM campaigns WHERE id = $1 AND advertiser_id = $2`, campaignID, advertiserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *CampaignRepository) SetCampaignImage(ctx context.Context, advertiserID, campaignID uuid.UUID, imageKey string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET image_key = $1, updated_at = now() WHERE id = $2 AND advertiser_id = $3`,
		imageKey, campaignID, advertiserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
