package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
	"orbit-ads/internal/core/port/mocks"
)

type campaignFixtureMocks struct {
	campaigns *mocks.CampaignRepository
	directory *mocks.DirectoryRepository
	clock     *mocks.Clock
	text      *mocks.TextService
	storage   *mocks.ImageStorage
}

func newCampaignFixture(t *testing.T, moderationEnabled bool) (*CampaignUseCase, campaignFixtureMocks) {
	m := campaignFixtureMocks{
		campaigns: mocks.NewCampaignRepository(t),
		directory: mocks.NewDirectoryRepository(t),
		clock:     mocks.NewClock(t),
		text:      mocks.NewTextService(t),
		storage:   mocks.NewImageStorage(t),
	}
	uc := NewCampaignUseCase(m.campaigns, m.directory, m.clock, m.text, NewModerationSwitch(moderationEnabled), m.storage)
	return uc, m
}

func validInput() port.CampaignInput {
	return port.CampaignInput{
		ImpressionsLimit:  100,
		ClicksLimit:       10,
		CostPerImpression: 0.5,
		CostPerClick:      1.5,
		AdTitle:           "title",
		AdText:            "text",
		StartDate:         1,
		EndDate:           5,
	}
}

func TestCreateCampaign(t *testing.T) {
	uc, m := newCampaignFixture(t, false)

	advertiserID := uuid.New()
	m.directory.On("GetAdvertiser", mock.Anything, advertiserID).
		Return(&domain.Advertiser{ID: advertiserID, Name: "acme"}, nil)
	m.clock.On("CurrentDay", mock.Anything).Return(0, nil)
	m.campaigns.On("CreateCampaign", mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	got, err := uc.Create(context.Background(), advertiserID, validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.AdvertiserID != advertiserID {
		t.Fatalf("campaign bound to wrong advertiser: %v", got.AdvertiserID)
	}
	if got.ID == uuid.Nil {
		t.Fatal("campaign id must be assigned")
	}
}

func TestCreateCampaignInvalidWindow(t *testing.T) {
	uc, m := newCampaignFixture(t, false)

	advertiserID := uuid.New()
	m.directory.On("GetAdvertiser", mock.Anything, advertiserID).
		Return(&domain.Advertiser{ID: advertiserID, Name: "acme"}, nil)
	m.clock.On("CurrentDay", mock.Anything).Return(0, nil)

	in := validInput()
	in.StartDate = 5
	in.EndDate = 1

	_, err := uc.Create(context.Background(), advertiserID, in)
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateCampaignStartInPast(t *testing.T) {
	uc, m := newCampaignFixture(t, false)

	advertiserID := uuid.New()
	m.directory.On("GetAdvertiser", mock.Anything, advertiserID).
		Return(&domain.Advertiser{ID: advertiserID, Name: "acme"}, nil)
	m.clock.On("CurrentDay", mock.Anything).Return(3, nil)

	in := validInput() // starts on day 1

	_, err := uc.Create(context.Background(), advertiserID, in)
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateCampaignModerationRejects(t *testing.T) {
	uc, m := newCampaignFixture(t, true)

	advertiserID := uuid.New()
	m.directory.On("GetAdvertiser", mock.Anything, advertiserID).
		Return(&domain.Advertiser{ID: advertiserID, Name: "acme"}, nil)
	m.clock.On("CurrentDay", mock.Anything).Return(0, nil)
	m.text.On("Moderate", mock.Anything, "text").Return(false, "profanity", nil)

	_, err := uc.Create(context.Background(), advertiserID, validInput())
	if !errors.Is(err, port.ErrModerationRejected) {
		t.Fatalf("expected ErrModerationRejected, got %v", err)
	}
}

// An active campaign keeps its stored limits and date window; the rest of
// the update still applies.
func TestUpdateCampaignFreezesLimitsWhileActive(t *testing.T) {
	uc, m := newCampaignFixture(t, false)

	advertiserID := uuid.New()
	existing := domain.Campaign{
		ID:                uuid.New(),
		AdvertiserID:      advertiserID,
		ImpressionsLimit:  100,
		ClicksLimit:       10,
		CostPerImpression: 0.5,
		CostPerClick:      1.5,
		AdTitle:           "old title",
		AdText:            "text",
		StartDate:         0,
		EndDate:           10,
	}

	m.campaigns.On("GetCampaign", mock.Anything, advertiserID, existing.ID).Return(&existing, nil)
	m.clock.On("CurrentDay", mock.Anything).Return(5, nil)
	m.campaigns.On("UpdateCampaign", mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	in := port.CampaignInput{
		ImpressionsLimit:  9999,
		ClicksLimit:       999,
		CostPerImpression: 0.7,
		CostPerClick:      2.0,
		AdTitle:           "new title",
		AdText:            "text",
		StartDate:         3,
		EndDate:           20,
	}

	got, err := uc.Update(context.Background(), advertiserID, existing.ID, in)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.ImpressionsLimit != 100 || got.ClicksLimit != 10 {
		t.Fatalf("limits must stay frozen while active: %+v", got)
	}
	if got.StartDate != 0 || got.EndDate != 10 {
		t.Fatalf("date window must stay frozen while active: %+v", got)
	}
	if got.AdTitle != "new title" || got.CostPerImpression != 0.7 {
		t.Fatalf("unfrozen fields must be applied: %+v", got)
	}
}

// Moderation only re-runs when the ad text actually changed. The text
// service mock has no expectations, so any call to it fails the test.
func TestUpdateCampaignUnchangedTextSkipsModeration(t *testing.T) {
	uc, m := newCampaignFixture(t, true)

	advertiserID := uuid.New()
	existing := domain.Campaign{
		ID:                uuid.New(),
		AdvertiserID:      advertiserID,
		ImpressionsLimit:  100,
		ClicksLimit:       10,
		CostPerImpression: 0.5,
		CostPerClick:      1.5,
		AdTitle:           "title",
		AdText:            "text",
		StartDate:         2,
		EndDate:           10,
	}

	m.campaigns.On("GetCampaign", mock.Anything, advertiserID, existing.ID).Return(&existing, nil)
	m.clock.On("CurrentDay", mock.Anything).Return(0, nil)
	m.campaigns.On("UpdateCampaign", mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	in := validInput()
	in.StartDate = 2
	in.EndDate = 10

	if _, err := uc.Update(context.Background(), advertiserID, existing.ID, in); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestListCampaignsRejectsBadPaging(t *testing.T) {
	uc, m := newCampaignFixture(t, false)

	advertiserID := uuid.New()
	m.directory.On("GetAdvertiser", mock.Anything, advertiserID).
		Return(&domain.Advertiser{ID: advertiserID, Name: "acme"}, nil)

	if _, err := uc.List(context.Background(), advertiserID, 0, 1); !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected ErrValidation for size 0, got %v", err)
	}
	if _, err := uc.List(context.Background(), advertiserID, 10, 0); !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected ErrValidation for page 0, got %v", err)
	}
}

func TestListCampaignsOffset(t *testing.T) {
	uc, m := newCampaignFixture(t, false)

	advertiserID := uuid.New()
	m.directory.On("GetAdvertiser", mock.Anything, advertiserID).
		Return(&domain.Advertiser{ID: advertiserID, Name: "acme"}, nil)
	m.campaigns.On("ListCampaigns", mock.Anything, advertiserID, uint64(10), uint64(20)).
		Return([]domain.Campaign{}, nil)

	if _, err := uc.List(context.Background(), advertiserID, 10, 3); err != nil {
		t.Fatalf("List error: %v", err)
	}
}

func TestUploadImage(t *testing.T) {
	uc, m := newCampaignFixture(t, false)

	advertiserID := uuid.New()
	campaign := domain.Campaign{ID: uuid.New(), AdvertiserID: advertiserID}
	body := strings.NewReader("png bytes")

	m.campaigns.On("GetCampaign", mock.Anything, advertiserID, campaign.ID).Return(&campaign, nil)
	m.storage.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "campaigns/"+campaign.ID.String()+"/") && strings.HasSuffix(key, ".png")
	}), "image/png", body, int64(9)).Return(nil)
	m.campaigns.On("SetCampaignImage", mock.Anything, advertiserID, campaign.ID, mock.AnythingOfType("string")).Return(nil)

	got, err := uc.UploadImage(context.Background(), advertiserID, campaign.ID, "creative.png", "image/png", body, 9)
	if err != nil {
		t.Fatalf("UploadImage error: %v", err)
	}
	if got.ImageKey == nil {
		t.Fatal("expected image key to be set")
	}
}

func TestGenerateTextRequiresAllFields(t *testing.T) {
	uc, _ := newCampaignFixture(t, false)

	_, err := uc.GenerateText(context.Background(), port.GenerationInput{ProductName: "widget"})
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGenerateText(t *testing.T) {
	uc, m := newCampaignFixture(t, false)

	in := port.GenerationInput{ProductName: "widget", TargetAction: "buy", TargetAudience: "everyone"}
	m.text.On("Generate", mock.Anything, "widget", "buy", "everyone").Return("Buy the widget!", nil)

	got, err := uc.GenerateText(context.Background(), in)
	if err != nil {
		t.Fatalf("GenerateText error: %v", err)
	}
	if got != "Buy the widget!" {
		t.Fatalf("unexpected text: %q", got)
	}
}
