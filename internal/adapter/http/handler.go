package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orbit-ads/internal/adapter/usecase"
	"orbit-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: handlers decode requests, delegate to the use cases and map port
// errors onto status codes. Routes are registered on a chi.Router.
type Handler struct {
	ads        port.AdsUseCase
	campaigns  port.CampaignUseCase
	directory  port.DirectoryUseCase
	stats      port.StatsUseCase
	clock      port.Clock
	moderation *usecase.ModerationSwitch
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured. The prometheus
// registry is exposed on /metrics.
func NewHandler(
	ads port.AdsUseCase,
	campaigns port.CampaignUseCase,
	directory port.DirectoryUseCase,
	stats port.StatsUseCase,
	clock port.Clock,
	moderation *usecase.ModerationSwitch,
	registry *prometheus.Registry,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		ads:        ads,
		campaigns:  campaigns,
		directory:  directory,
		stats:      stats,
		clock:      clock,
		moderation: moderation,
		logger:     logger,
	}
	r := chi.NewRouter()

	r.Route("/clients", func(r chi.Router) {
		r.Post("/bulk", h.handleClientsBulk)
		r.Get("/{clientId}", h.handleGetClient)
	})

	r.Route("/advertisers", func(r chi.Router) {
		r.Post("/bulk", h.handleAdvertisersBulk)
		r.Get("/{advertiserId}", h.handleGetAdvertiser)

		r.Route("/{advertiserId}/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Post("/generation", h.handleGenerateAdText)
			r.Get("/{campaignId}", h.handleGetCampaign)
			r.Put("/{campaignId}", h.handleUpdateCampaign)
			r.Delete("/{campaignId}", h.handleDeleteCampaign)
			r.Post("/{campaignId}/upload", h.handleUploadCampaignImage)
		})
	})

	r.Post("/ml-scores", h.handleUpsertScore)

	r.Route("/ads", func(r chi.Router) {
		r.Get("/", h.handleServeAd)
		r.Post("/{adId}/click", h.handleAdClick)
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/campaigns/{campaignId}", h.handleCampaignStats)
		r.Get("/campaigns/{campaignId}/daily", h.handleCampaignDailyStats)
		r.Get("/advertisers/{advertiserId}/campaigns", h.handleAdvertiserStats)
		r.Get("/advertisers/{advertiserId}/campaigns/daily", h.handleAdvertiserDailyStats)
	})

	r.Post("/time/advance", h.handleAdvanceDay)

	r.Route("/moderation", func(r chi.Router) {
		r.Get("/", h.handleModerationStatus)
		r.Post("/enable", h.handleModerationEnable)
		r.Post("/disable", h.handleModerationDisable)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
