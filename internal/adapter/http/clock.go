package httpadapter

import "net/http"

// handleAdvanceDay moves the simulated day forward. Attempts to move it
// backward map to 400.
func (h *Handler) handleAdvanceDay(w http.ResponseWriter, r *http.Request) {
	var in currentDayDTO
	if !h.decode(w, r, &in) {
		return
	}
	if in.CurrentDate < 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "current_date must be non-negative"})
		return
	}

	day, err := h.clock.Advance(r.Context(), in.CurrentDate)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, currentDayDTO{CurrentDate: day})
}
