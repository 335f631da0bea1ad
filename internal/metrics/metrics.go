// Package metrics provides Prometheus collectors for serving events.
package metrics

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds counters for impressions and clicks, totalled per
// campaign, per advertiser and per simulated day. All operations are
// safe for concurrent use.
type Metrics struct {
	campaignImpressions      *prometheus.CounterVec
	campaignClicks           *prometheus.CounterVec
	campaignDailyImpressions *prometheus.CounterVec
	campaignDailyClicks      *prometheus.CounterVec

	advertiserImpressions      *prometheus.CounterVec
	advertiserClicks           *prometheus.CounterVec
	advertiserDailyImpressions *prometheus.CounterVec
	advertiserDailyClicks      *prometheus.CounterVec
}

// New creates all collectors. They are not registered; call Register.
func New() *Metrics {
	return &Metrics{
		campaignImpressions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campaign_impressions_total",
			Help: "Total impressions served per campaign",
		}, []string{"campaign_id"}),
		campaignClicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campaign_clicks_total",
			Help: "Total clicks recorded per campaign",
		}, []string{"campaign_id"}),
		campaignDailyImpressions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campaign_daily_impressions_total",
			Help: "Impressions served per campaign and simulated day",
		}, []string{"campaign_id", "date"}),
		campaignDailyClicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campaign_daily_clicks_total",
			Help: "Clicks recorded per campaign and simulated day",
		}, []string{"campaign_id", "date"}),
		advertiserImpressions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "advertiser_impressions_total",
			Help: "Total impressions served per advertiser",
		}, []string{"advertiser_id"}),
		advertiserClicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "advertiser_clicks_total",
			Help: "Total clicks recorded per advertiser",
		}, []string{"advertiser_id"}),
		advertiserDailyImpressions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "advertiser_daily_impressions_total",
			Help: "Impressions served per advertiser and simulated day",
		}, []string{"advertiser_id", "date"}),
		advertiserDailyClicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "advertiser_daily_clicks_total",
			Help: "Clicks recorded per advertiser and simulated day",
		}, []string{"advertiser_id", "date"}),
	}
}

// Register registers every collector with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.campaignImpressions,
		m.campaignClicks,
		m.campaignDailyImpressions,
		m.campaignDailyClicks,
		m.advertiserImpressions,
		m.advertiserClicks,
		m.advertiserDailyImpressions,
		m.advertiserDailyClicks,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveImpression bumps the impression counters for one served ad.
func (m *Metrics) ObserveImpression(campaignID, advertiserID uuid.UUID, day int) {
	date := strconv.Itoa(day)
	m.campaignImpressions.WithLabelValues(campaignID.String()).Inc()
	m.campaignDailyImpressions.WithLabelValues(campaignID.String(), date).Inc()
	m.advertiserImpressions.WithLabelValues(advertiserID.String()).Inc()
	m.advertiserDailyImpressions.WithLabelValues(advertiserID.String(), date).Inc()
}

// ObserveClick bumps the click counters for one recorded click.
func (m *Metrics) ObserveClick(campaignID, advertiserID uuid.UUID, day int) {
	date := strconv.Itoa(day)
	m.campaignClicks.WithLabelValues(campaignID.String()).Inc()
	m.campaignDailyClicks.WithLabelValues(campaignID.String(), date).Inc()
	m.advertiserClicks.WithLabelValues(advertiserID.String()).Inc()
	m.advertiserDailyClicks.WithLabelValues(advertiserID.String(), date).Inc()
}
