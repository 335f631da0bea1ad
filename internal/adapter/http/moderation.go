package httpadapter

import "net/http"

type moderationStatusDTO struct {
	Mode string `json:"mode"`
}

func (h *Handler) handleModerationEnable(w http.ResponseWriter, _ *http.Request) {
	h.moderation.Enable()
	h.writeJSON(w, http.StatusOK, moderationStatusDTO{Mode: "enabled"})
}

func (h *Handler) handleModerationDisable(w http.ResponseWriter, _ *http.Request) {
	h.moderation.Disable()
	h.writeJSON(w, http.StatusOK, moderationStatusDTO{Mode: "disabled"})
}

func (h *Handler) handleModerationStatus(w http.ResponseWriter, _ *http.Request) {
	mode := "disabled"
	if h.moderation.Enabled() {
		mode = "enabled"
	}
	h.writeJSON(w, http.StatusOK, moderationStatusDTO{Mode: mode})
}
