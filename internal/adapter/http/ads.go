package httpadapter

import (
	"net/http"

	"github.com/google/uuid"
)

// handleServeAd picks the best campaign for the client given by the
// client_id query parameter. No eligible campaign maps to 404.
func (h *Handler) handleServeAd(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(r.URL.Query().Get("client_id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid client_id"})
		return
	}

	ad, err := h.ads.ServeAd(r.Context(), clientID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, adOutDTO{
		AdID:         ad.AdID,
		AdTitle:      ad.AdTitle,
		AdText:       ad.AdText,
		AdvertiserID: ad.AdvertiserID,
	})
}

// handleAdClick records a click by the client on a served campaign. A
// click without a prior impression maps to 403; repeats are no-ops.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	adID, ok := h.pathUUID(w, r, "adId")
	if !ok {
		return
	}
	var in adClickDTO
	if !h.decode(w, r, &in) {
		return
	}

	if err := h.ads.RegisterClick(r.Context(), adID, in.ClientID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
