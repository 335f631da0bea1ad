package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

// DirectoryUseCase manages clients, advertisers and relevance scores.
type DirectoryUseCase struct {
	directory port.DirectoryRepository
}

func NewDirectoryUseCase(directory port.DirectoryRepository) *DirectoryUseCase {
	return &DirectoryUseCase{directory: directory}
}

// UpsertClients creates or updates the valid entries; invalid ones are
// dropped without failing the batch.
func (u *DirectoryUseCase) UpsertClients(ctx context.Context, clients []domain.Client) ([]domain.Client, error) {
	accepted := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if c.Validate() != nil {
			continue
		}
		accepted = append(accepted, c)
	}
	if len(accepted) > 0 {
		if err := u.directory.UpsertClients(ctx, accepted); err != nil {
			return nil, fmt.Errorf("upsert clients: %w", err)
		}
	}
	return accepted, nil
}

func (u *DirectoryUseCase) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return u.directory.GetClient(ctx, id)
}

// UpsertAdvertisers mirrors UpsertClients for advertisers.
func (u *DirectoryUseCase) UpsertAdvertisers(ctx context.Context, advertisers []domain.Advertiser) ([]domain.Advertiser, error) {
	accepted := make([]domain.Advertiser, 0, len(advertisers))
	for _, a := range advertisers {
		if a.Validate() != nil {
			continue
		}
		accepted = append(accepted, a)
	}
	if len(accepted) > 0 {
		if err := u.directory.UpsertAdvertisers(ctx, accepted); err != nil {
			return nil, fmt.Errorf("upsert advertisers: %w", err)
		}
	}
	return accepted, nil
}

func (u *DirectoryUseCase) GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error) {
	return u.directory.GetAdvertiser(ctx, id)
}

// UpsertScore stores the relevance score for a known (client, advertiser)
// pair. Either side missing yields ErrNotFound.
func (u *DirectoryUseCase) UpsertScore(ctx context.Context, score domain.MLScore) error {
	if err := score.Validate(); err != nil {
		return fmt.Errorf("%w: %s", port.ErrValidation, err)
	}
	if _, err := u.directory.GetClient(ctx, score.ClientID); err != nil {
		return fmt.Errorf("get client: %w", err)
	}
	if _, err := u.directory.GetAdvertiser(ctx, score.AdvertiserID); err != nil {
		return fmt.Errorf("get advertiser: %w", err)
	}
	if err := u.directory.UpsertScore(ctx, score); err != nil {
		return fmt.Errorf("upsert score: %w", err)
	}
	return nil
}
