package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"

	"orbit-ads/internal/adapter/usecase"
	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
	"orbit-ads/internal/core/port/mocks"
	"orbit-ads/internal/metrics"
)

type handlerFixture struct {
	handler   *Handler
	ads       *mocks.AdRepository
	campaigns *mocks.CampaignRepository
	directory *mocks.DirectoryRepository
	stats     *mocks.StatsRepository
	clock     *mocks.Clock
}

func newHandlerFixture(t *testing.T) handlerFixture {
	f := handlerFixture{
		ads:       mocks.NewAdRepository(t),
		campaigns: mocks.NewCampaignRepository(t),
		directory: mocks.NewDirectoryRepository(t),
		stats:     mocks.NewStatsRepository(t),
		clock:     mocks.NewClock(t),
	}

	m := metrics.New()
	adsUC := usecase.NewAdsUseCase(f.ads, f.directory, f.campaigns, f.clock, m)
	campaignsUC := usecase.NewCampaignUseCase(f.campaigns, f.directory, f.clock, mocks.NewTextService(t), usecase.NewModerationSwitch(false), mocks.NewImageStorage(t))
	directoryUC := usecase.NewDirectoryUseCase(f.directory)
	statsUC := usecase.NewStatsUseCase(f.stats, f.campaigns, f.directory)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.handler = NewHandler(adsUC, campaignsUC, directoryUC, statsUC, f.clock, usecase.NewModerationSwitch(false), prometheus.NewRegistry(), logger)
	return f
}

func (f handlerFixture) do(method, target string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	f.handler.Router().ServeHTTP(rec, req)
	return rec
}

func TestServeAdEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	client := domain.Client{ID: uuid.New(), Login: "u1", Age: 30, Location: "Moscow", Gender: domain.GenderMale}
	campaign := domain.Campaign{
		ID:               uuid.New(),
		AdvertiserID:     uuid.New(),
		ImpressionsLimit: 100,
		AdTitle:          "title",
		AdText:           "text",
		StartDate:        0,
		EndDate:          10,
	}

	f.directory.On("GetClient", mock.Anything, client.ID).Return(&client, nil)
	f.clock.On("CurrentDay", mock.Anything).Return(0, nil)
	f.ads.On("CandidateCampaigns", mock.Anything, client, 0).Return([]domain.Campaign{campaign}, nil)
	f.ads.On("SeenCampaigns", mock.Anything, client.ID).Return(map[uuid.UUID]struct{}{}, nil)
	f.ads.On("RelevanceScores", mock.Anything, client.ID, []uuid.UUID{campaign.AdvertiserID}).
		Return(map[uuid.UUID]int{}, nil)
	f.ads.On("RecordImpression", mock.Anything, mock.AnythingOfType("domain.Impression")).Return(nil)

	rec := f.do(http.MethodGet, "/ads?client_id="+client.ID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var out adOutDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.AdID != campaign.ID || out.AdvertiserID != campaign.AdvertiserID {
		t.Fatalf("unexpected ad: %+v", out)
	}
}

func TestServeAdEndpointBadClientID(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/ads?client_id=not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestServeAdEndpointUnknownClient(t *testing.T) {
	f := newHandlerFixture(t)

	clientID := uuid.New()
	f.directory.On("GetClient", mock.Anything, clientID).Return(nil, port.ErrNotFound)

	rec := f.do(http.MethodGet, "/ads?client_id="+clientID.String(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestAdClickEndpointWithoutImpression(t *testing.T) {
	f := newHandlerFixture(t)

	client := domain.Client{ID: uuid.New(), Login: "u1", Age: 30, Location: "Moscow", Gender: domain.GenderMale}
	campaign := domain.Campaign{ID: uuid.New(), AdvertiserID: uuid.New(), AdTitle: "t", AdText: "t"}

	f.campaigns.On("GetCampaignByID", mock.Anything, campaign.ID).Return(&campaign, nil)
	f.directory.On("GetClient", mock.Anything, client.ID).Return(&client, nil)
	f.ads.On("HasImpression", mock.Anything, client.ID, campaign.ID).Return(false, nil)

	body := `{"client_id":"` + client.ID.String() + `"}`
	rec := f.do(http.MethodPost, "/ads/"+campaign.ID.String()+"/click", body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAdvanceDayEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	f.clock.On("Advance", mock.Anything, 5).Return(5, nil)

	rec := f.do(http.MethodPost, "/time/advance", `{"current_date":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var out currentDayDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.CurrentDate != 5 {
		t.Fatalf("current_date = %d, want 5", out.CurrentDate)
	}
}

func TestAdvanceDayEndpointRollback(t *testing.T) {
	f := newHandlerFixture(t)

	f.clock.On("Advance", mock.Anything, 1).Return(0, port.ErrDayRollback)

	rec := f.do(http.MethodPost, "/time/advance", `{"current_date":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestModerationEndpoints(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/moderation/", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "disabled") {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	rec = f.do(http.MethodPost, "/moderation/enable", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	rec = f.do(http.MethodGet, "/moderation/", "")
	if !strings.Contains(rec.Body.String(), "enabled") {
		t.Fatalf("expected enabled mode, body %s", rec.Body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
