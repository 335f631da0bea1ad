package httpadapter

import (
	"net/http"

	"orbit-ads/internal/core/domain"
)

// handleUpsertScore stores the ML relevance score for a known
// (client, advertiser) pair.
func (h *Handler) handleUpsertScore(w http.ResponseWriter, r *http.Request) {
	var in scoreDTO
	if !h.decode(w, r, &in) {
		return
	}

	score := domain.MLScore{
		ClientID:     in.ClientID,
		AdvertiserID: in.AdvertiserID,
		Score:        in.Score,
	}
	if err := h.directory.UpsertScore(r.Context(), score); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, in)
}
