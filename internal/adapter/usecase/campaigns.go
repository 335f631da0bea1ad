package usecase

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

// CampaignUseCase manages campaign lifecycle: CRUD with validation, the
// moderation gate, ad-text generation and image upload.
type CampaignUseCase struct {
	campaigns  port.CampaignRepository
	directory  port.DirectoryRepository
	clock      port.Clock
	text       port.TextService
	moderation *ModerationSwitch
	storage    port.ImageStorage
}

func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	directory port.DirectoryRepository,
	clock port.Clock,
	text port.TextService,
	moderation *ModerationSwitch,
	storage port.ImageStorage,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns:  campaigns,
		directory:  directory,
		clock:      clock,
		text:       text,
		moderation: moderation,
		storage:    storage,
	}
}

// Create validates the input against the current day, runs the moderation
// gate when enabled and stores the campaign.
func (u *CampaignUseCase) Create(ctx context.Context, advertiserID uuid.UUID, in port.CampaignInput) (*domain.Campaign, error) {
	if _, err := u.directory.GetAdvertiser(ctx, advertiserID); err != nil {
		return nil, fmt.Errorf("get advertiser: %w", err)
	}

	day, err := u.clock.CurrentDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("current day: %w", err)
	}

	campaign := domain.Campaign{
		ID:                uuid.New(),
		AdvertiserID:      advertiserID,
		ImpressionsLimit:  in.ImpressionsLimit,
		ClicksLimit:       in.ClicksLimit,
		CostPerImpression: in.CostPerImpression,
		CostPerClick:      in.CostPerClick,
		AdTitle:           in.AdTitle,
		AdText:            in.AdText,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		Targeting:         in.Targeting,
	}
	if err = campaign.Validate(day); err != nil {
		return nil, fmt.Errorf("%w: %s", port.ErrValidation, err)
	}
	if err = u.moderate(ctx, campaign.AdText); err != nil {
		return nil, err
	}

	if err = u.campaigns.CreateCampaign(ctx, &campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &campaign, nil
}

func (u *CampaignUseCase) Get(ctx context.Context, advertiserID, campaignID uuid.UUID) (*domain.Campaign, error) {
	return u.campaigns.GetCampaign(ctx, advertiserID, campaignID)
}

// List returns one page of the advertiser's campaigns in creation order.
func (u *CampaignUseCase) List(ctx context.Context, advertiserID uuid.UUID, size, page int) ([]domain.Campaign, error) {
	if _, err := u.directory.GetAdvertiser(ctx, advertiserID); err != nil {
		return nil, fmt.Errorf("get advertiser: %w", err)
	}
	if size <= 0 || page <= 0 {
		return nil, fmt.Errorf("%w: size and page must be positive", port.ErrValidation)
	}
	offset := uint64(page-1) * uint64(size)
	return u.campaigns.ListCampaigns(ctx, advertiserID, uint64(size), offset)
}

// Update applies the input to an existing campaign. While the campaign is
// active its limits and date window are frozen: submitted values for
// those fields are ignored and the stored values kept.
func (u *CampaignUseCase) Update(ctx context.Context, advertiserID, campaignID uuid.UUID, in port.CampaignInput) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetCampaign(ctx, advertiserID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	day, err := u.clock.CurrentDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("current day: %w", err)
	}

	frozen := campaign.FrozenFields(day)
	updated := *campaign
	if _, ok := frozen[domain.FieldImpressionsLimit]; !ok {
		updated.ImpressionsLimit = in.ImpressionsLimit
	}
	if _, ok := frozen[domain.FieldClicksLimit]; !ok {
		updated.ClicksLimit = in.ClicksLimit
	}
	if _, ok := frozen[domain.FieldStartDate]; !ok {
		updated.StartDate = in.StartDate
	}
	if _, ok := frozen[domain.FieldEndDate]; !ok {
		updated.EndDate = in.EndDate
	}
	updated.CostPerImpression = in.CostPerImpression
	updated.CostPerClick = in.CostPerClick
	updated.AdTitle = in.AdTitle
	updated.AdText = in.AdText
	updated.Targeting = in.Targeting

	// Date-window validation against "today" only applies to windows that
	// are actually changing; an active campaign legitimately has
	// start_date in the past.
	validationDay := day
	if updated.StartDate == campaign.StartDate && updated.EndDate == campaign.EndDate {
		validationDay = updated.StartDate
	}
	if err = updated.Validate(validationDay); err != nil {
		return nil, fmt.Errorf("%w: %s", port.ErrValidation, err)
	}
	if updated.AdText != campaign.AdText {
		if err = u.moderate(ctx, updated.AdText); err != nil {
			return nil, err
		}
	}

	if err = u.campaigns.UpdateCampaign(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return &updated, nil
}

func (u *CampaignUseCase) Delete(ctx context.Context, advertiserID, campaignID uuid.UUID) error {
	return u.campaigns.DeleteCampaign(ctx, advertiserID, campaignID)
}

// UploadImage stores the creative on the object store under a fresh key
// and records the key on the campaign.
func (u *CampaignUseCase) UploadImage(ctx context.Context, advertiserID, campaignID uuid.UUID, filename, contentType string, body io.Reader, size int64) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetCampaign(ctx, advertiserID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	key := fmt.Sprintf("campaigns/%s/%s%s", campaignID, uuid.NewString(), path.Ext(filename))
	if err = u.storage.Put(ctx, key, contentType, body, size); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}
	if err = u.campaigns.SetCampaignImage(ctx, advertiserID, campaignID, key); err != nil {
		return nil, fmt.Errorf("set campaign image: %w", err)
	}
	campaign.ImageKey = &key
	return campaign, nil
}

// GenerateText produces ad copy via the external text model.
func (u *CampaignUseCase) GenerateText(ctx context.Context, in port.GenerationInput) (string, error) {
	if in.ProductName == "" || in.TargetAction == "" || in.TargetAudience == "" {
		return "", fmt.Errorf("%w: product_name, target_action and target_audience are required", port.ErrValidation)
	}
	text, err := u.text.Generate(ctx, in.ProductName, in.TargetAction, in.TargetAudience)
	if err != nil {
		return "", fmt.Errorf("generate ad text: %w", err)
	}
	return text, nil
}

func (u *CampaignUseCase) moderate(ctx context.Context, adText string) error {
	if !u.moderation.Enabled() {
		return nil
	}
	ok, reason, err := u.text.Moderate(ctx, adText)
	if err != nil {
		return fmt.Errorf("moderate ad text: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", port.ErrModerationRejected, reason)
	}
	return nil
}
