package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo advertisers, clients, campaigns and relevance scores
// for local development. Inserts are idempotent so the seeder can run on
// every startup.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	locations := []string{"Moscow", "Yerevan", "Berlin"}
	genders := []string{"MALE", "FEMALE"}

	advertiserIDs := make([]uuid.UUID, 0, 3)
	for i := 1; i <= 3; i++ {
		id := uuid.New()
		_, err := db.Exec(ctx, `INSERT INTO advertisers (id, name)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, fmt.Sprintf("Advertiser %d", i))
		if err != nil {
			return err
		}
		advertiserIDs = append(advertiserIDs, id)
	}

	clientIDs := make([]uuid.UUID, 0, 20)
	for i := 1; i <= 20; i++ {
		id := uuid.New()
		_, err := db.Exec(ctx, `INSERT INTO clients (id, login, age, location, gender)
VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
			id, fmt.Sprintf("user-%d", i), 18+r.Intn(50), locations[r.Intn(len(locations))], genders[r.Intn(len(genders))])
		if err != nil {
			return err
		}
		clientIDs = append(clientIDs, id)
	}

	for i, advertiserID := range advertiserIDs {
		for j := 1; j <= 2; j++ {
			_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, impressions_limit, clicks_limit, cost_per_impression, cost_per_click,
     ad_title, ad_text, start_date, end_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) ON CONFLICT DO NOTHING`,
				uuid.New(), advertiserID,
				500+r.Intn(500), 50+r.Intn(50),
				0.1+r.Float64(), 0.5+r.Float64()*2,
				fmt.Sprintf("Campaign %d-%d", i+1, j),
				fmt.Sprintf("Try product %d from advertiser %d", j, i+1),
				0, 30)
			if err != nil {
				return err
			}
		}
	}

	for _, clientID := range clientIDs {
		for _, advertiserID := range advertiserIDs {
			_, err := db.Exec(ctx, `INSERT INTO ml_scores (client_id, advertiser_id, score)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, clientID, advertiserID, r.Intn(100))
			if err != nil {
				return err
			}
		}
	}

	return nil
}
