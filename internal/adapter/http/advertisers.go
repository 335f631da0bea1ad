package httpadapter

import (
	"net/http"

	"orbit-ads/internal/core/domain"
)

// handleAdvertisersBulk mirrors the clients bulk upsert for advertisers.
func (h *Handler) handleAdvertisersBulk(w http.ResponseWriter, r *http.Request) {
	var in []advertiserDTO
	if !h.decode(w, r, &in) {
		return
	}

	advertisers := make([]domain.Advertiser, 0, len(in))
	for _, dto := range in {
		advertisers = append(advertisers, domain.Advertiser{ID: dto.AdvertiserID, Name: dto.Name})
	}

	accepted, err := h.directory.UpsertAdvertisers(r.Context(), advertisers)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]advertiserDTO, 0, len(accepted))
	for _, a := range accepted {
		out = append(out, advertiserDTO{AdvertiserID: a.ID, Name: a.Name})
	}
	h.writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) handleGetAdvertiser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "advertiserId")
	if !ok {
		return
	}
	advertiser, err := h.directory.GetAdvertiser(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, advertiserDTO{AdvertiserID: advertiser.ID, Name: advertiser.Name})
}
