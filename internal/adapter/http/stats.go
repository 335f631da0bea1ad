package httpadapter

import (
	"net/http"

	"orbit-ads/internal/core/port"
)

func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignId")
	if !ok {
		return
	}
	stats, err := h.stats.Campaign(r.Context(), campaignID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsToDTO(*stats))
}

func (h *Handler) handleCampaignDailyStats(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignId")
	if !ok {
		return
	}
	daily, err := h.stats.CampaignDaily(r.Context(), campaignID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dailyToDTO(daily))
}

func (h *Handler) handleAdvertiserStats(w http.ResponseWriter, r *http.Request) {
	advertiserID, ok := h.pathUUID(w, r, "advertiserId")
	if !ok {
		return
	}
	stats, err := h.stats.Advertiser(r.Context(), advertiserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsToDTO(*stats))
}

func (h *Handler) handleAdvertiserDailyStats(w http.ResponseWriter, r *http.Request) {
	advertiserID, ok := h.pathUUID(w, r, "advertiserId")
	if !ok {
		return
	}
	daily, err := h.stats.AdvertiserDaily(r.Context(), advertiserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dailyToDTO(daily))
}

func dailyToDTO(daily []port.DailyStatsOut) []dailyStatsDTO {
	out := make([]dailyStatsDTO, 0, len(daily))
	for _, d := range daily {
		out = append(out, dailyStatsDTO{statsDTO: statsToDTO(d.StatsOut), Date: d.Day})
	}
	return out
}
