// Package mocks provides testify mock implementations of the port
// interfaces for use in usecase tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

type AdRepository struct {
	mock.Mock
}

func NewAdRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AdRepository {
	m := &AdRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AdRepository) CandidateCampaigns(ctx context.Context, client domain.Client, day int) ([]domain.Campaign, error) {
	args := m.Called(ctx, client, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *AdRepository) SeenCampaigns(ctx context.Context, clientID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]struct{}), args.Error(1)
}

func (m *AdRepository) RelevanceScores(ctx context.Context, clientID uuid.UUID, advertiserIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, clientID, advertiserIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}

func (m *AdRepository) RecordImpression(ctx context.Context, imp domain.Impression) error {
	return m.Called(ctx, imp).Error(0)
}

func (m *AdRepository) HasImpression(ctx context.Context, clientID, campaignID uuid.UUID) (bool, error) {
	args := m.Called(ctx, clientID, campaignID)
	return args.Bool(0), args.Error(1)
}

func (m *AdRepository) RecordClick(ctx context.Context, click domain.Click) (bool, error) {
	args := m.Called(ctx, click)
	return args.Bool(0), args.Error(1)
}

type CampaignRepository struct {
	mock.Mock
}

func NewCampaignRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CampaignRepository {
	m := &CampaignRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CampaignRepository) GetCampaign(ctx context.Context, advertiserID, campaignID uuid.UUID) (*domain.Campaign, error) {
	args := m.Called(ctx, advertiserID, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *CampaignRepository) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (*domain.Campaign, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *CampaignRepository) ListCampaigns(ctx context.Context, advertiserID uuid.UUID, limit, offset uint64) ([]domain.Campaign, error) {
	args := m.Called(ctx, advertiserID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CampaignRepository) DeleteCampaign(ctx context.Context, advertiserID, campaignID uuid.UUID) error {
	return m.Called(ctx, advertiserID, campaignID).Error(0)
}

func (m *CampaignRepository) SetCampaignImage(ctx context.Context, advertiserID, campaignID uuid.UUID, imageKey string) error {
	return m.Called(ctx, advertiserID, campaignID, imageKey).Error(0)
}

type DirectoryRepository struct {
	mock.Mock
}

func NewDirectoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *DirectoryRepository {
	m := &DirectoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DirectoryRepository) UpsertClients(ctx context.Context, clients []domain.Client) error {
	return m.Called(ctx, clients).Error(0)
}

func (m *DirectoryRepository) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *DirectoryRepository) UpsertAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error {
	return m.Called(ctx, advertisers).Error(0)
}

func (m *DirectoryRepository) GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advertiser), args.Error(1)
}

func (m *DirectoryRepository) UpsertScore(ctx context.Context, score domain.MLScore) error {
	return m.Called(ctx, score).Error(0)
}

type StatsRepository struct {
	mock.Mock
}

func NewStatsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsRepository {
	m := &StatsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StatsRepository) CampaignTotals(ctx context.Context, campaignID uuid.UUID) (*port.StatsTotals, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.StatsTotals), args.Error(1)
}

func (m *StatsRepository) CampaignDailyTotals(ctx context.Context, campaignID uuid.UUID) ([]port.DailyStatsTotals, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.DailyStatsTotals), args.Error(1)
}

func (m *StatsRepository) AdvertiserTotals(ctx context.Context, advertiserID uuid.UUID) (*port.StatsTotals, error) {
	args := m.Called(ctx, advertiserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.StatsTotals), args.Error(1)
}

func (m *StatsRepository) AdvertiserDailyTotals(ctx context.Context, advertiserID uuid.UUID) ([]port.DailyStatsTotals, error) {
	args := m.Called(ctx, advertiserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.DailyStatsTotals), args.Error(1)
}
