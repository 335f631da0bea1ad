package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

// DirectoryRepository implements port.DirectoryRepository on pgxpool.
type DirectoryRepository struct {
	pool *pgxpool.Pool
}

func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{pool: pool}
}

// UpsertClients writes the batch with per-row upserts inside one
// transaction via pgx.Batch.
func (r *DirectoryRepository) UpsertClients(ctx context.Context, clients []domain.Client) error {
	batch := &pgx.Batch{}
	for _, c := range clients {
		batch.Queue(`INSERT INTO clients (id, login, age, location, gender)
			VALUES ($1,$2,$3,$4,$5)
			ON CONFLICT (id) DO UPDATE
			SET login = EXCLUDED.login, age = EXCLUDED.age,
			    location = EXCLUDED.location, gender = EXCLUDED.gender`,
			c.ID, c.Login, c.Age, c.Location, string(c.Gender))
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *DirectoryRepository) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var c domain.Client
	err := r.pool.QueryRow(ctx,
		`SELECT id, login, age, location, gender FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Login, &c.Age, &c.Location, &c.Gender)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *DirectoryRepository) UpsertAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error {
	batch := &pgx.Batch{}
	for _, a := range advertisers {
		batch.Queue(`INSERT INTO advertisers (id, name) VALUES ($1,$2)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
			a.ID, a.Name)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *DirectoryRepository) GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error) {
	var a domain.Advertiser
	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM advertisers WHERE id = $1`, id).
		Scan(&a.ID, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *DirectoryRepository) UpsertScore(ctx context.Context, score domain.MLScore) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO ml_scores (client_id, advertiser_id, score)
		VALUES ($1,$2,$3)
		ON CONFLICT (client_id, advertiser_id) DO UPDATE SET score = EXCLUDED.score`,
		score.ClientID, score.AdvertiserID, score.Score)
	return err
}
