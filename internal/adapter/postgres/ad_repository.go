package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orbit-ads/internal/core/domain"
)

// AdRepository implements port.AdRepository on pgxpool.
type AdRepository struct {
	pool *pgxpool.Pool
}

func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// CandidateCampaigns returns campaigns whose window contains day and
// whose targeting matches the client. A NULL targeting column matches
// everyone; gender additionally matches on ALL. Rows come back ordered
// by (created_at, id) so the ranking tie-break is reproducible.
func (r *AdRepository) CandidateCampaigns(ctx context.Context, client domain.Client, day int) ([]domain.Campaign, error) {
	query, args, err := sq.Select(campaignColumnList...).
		From("campaigns").
		Where(sq.LtOrEq{"start_date": day}).
		Where(sq.GtOrEq{"end_date": day}).
		Where(sq.Or{
			sq.Eq{"targeting_gender": nil},
			sq.Eq{"targeting_gender": string(domain.GenderAll)},
			sq.Eq{"targeting_gender": string(client.Gender)},
		}).
		Where(sq.Or{
			sq.Eq{"targeting_age_from": nil},
			sq.LtOrEq{"targeting_age_from": client.Age},
		}).
		Where(sq.Or{
			sq.Eq{"targeting_age_to": nil},
			sq.GtOrEq{"targeting_age_to": client.Age},
		}).
		Where(sq.Or{
			sq.Eq{"targeting_location": nil},
			sq.Eq{"targeting_location": client.Location},
		}).
		OrderBy("created_at", "id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidate query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func (r *AdRepository) SeenCampaigns(ctx context.Context, clientID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT campaign_id FROM impressions WHERE client_id = $1`, clientID)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return seen, nil
}

func (r *AdRepository) RelevanceScores(ctx context.Context, clientID uuid.UUID, advertiserIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(advertiserIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT advertiser_id, score FROM ml_scores WHERE client_id = $1 AND advertiser_id = ANY($2)`,
		clientID, advertiserIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make(map[uuid.UUID]int, len(advertiserIDs))
	for rows.Next() {
		var (
			id    uuid.UUID
			score int
		)
		if err = rows.Scan(&id, &score); err != nil {
			return nil, err
		}
		scores[id] = score
	}
	return scores, rows.Err()
}

// RecordImpression inserts the fact and bumps the campaign counter in one
// transaction. The ON CONFLICT guard makes the insert idempotent per
// (client, campaign); the counter only moves on first insert.
func (r *AdRepository) RecordImpression(ctx context.Context, imp domain.Impression) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `INSERT INTO impressions (client_id, campaign_id, day, cost)
		VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
		imp.ClientID, imp.CampaignID, imp.Day, imp.Cost)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		_, err = tx.Exec(ctx,
			`UPDATE campaigns SET impressions_count = impressions_count + 1, updated_at = now() WHERE id = $1`,
			imp.CampaignID)
	}
	return err
}

func (r *AdRepository) HasImpression(ctx context.Context, clientID, campaignID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM impressions WHERE client_id = $1 AND campaign_id = $2)`,
		clientID, campaignID).Scan(&exists)
	return exists, err
}

// RecordClick mirrors RecordImpression for clicks and reports whether a
// new fact was created.
func (r *AdRepository) RecordClick(ctx context.Context, click domain.Click) (created bool, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `INSERT INTO clicks (client_id, campaign_id, day, cost)
		VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
		click.ClientID, click.CampaignID, click.Day, click.Cost)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET clicks_count = clicks_count + 1, updated_at = now() WHERE id = $1`,
		click.CampaignID)
	return err == nil, err
}
