package httpadapter

import (
	"net/http"
	"strconv"
)

const maxImageSize = 10 << 20 // 10 MiB

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	advertiserID, ok := h.pathUUID(w, r, "advertiserId")
	if !ok {
		return
	}
	var in campaignInDTO
	if !h.decode(w, r, &in) {
		return
	}

	campaign, err := h.campaigns.Create(r.Context(), advertiserID, in.toInput())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, campaignToDTO(*campaign))
}

// handleListCampaigns returns one page of the advertiser's campaigns.
// Query parameters size (default 10) and page (default 1) control the
// window.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	advertiserID, ok := h.pathUUID(w, r, "advertiserId")
	if !ok {
		return
	}

	size, page := 10, 1
	var err error
	if v := r.URL.Query().Get("size"); v != "" {
		if size, err = strconv.Atoi(v); err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid size"})
			return
		}
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid page"})
			return
		}
	}

	campaigns, err := h.campaigns.List(r.Context(), advertiserID, size, page)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]campaignOutDTO, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, campaignToDTO(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	advertiserID, ok := h.pathUUID(w, r, "advertiserId")
	if !ok {
		return
	}
	campaignID, ok := h.pathUUID(w, r, "campaignId")
	if !ok {
		return
	}

	campaign, err := h.campaigns.Get(r.Context(), advertiserID, campaignID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignToDTO(*campaign))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	advertiserID, ok := h.pathUUID(w, r, "advertiserId")
	if !ok {
		return
	}
	campaignID, ok := h.pathUUID(w, r, "campaignId")
	if !ok {
		return
	}
	var in campaignInDTO
	if !h.decode(w, r, &in) {
		return
	}

	campaign, err := h.campaigns.Update(r.Context(), advertiserID, campaignID, in.toInput())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignToDTO(*campaign))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	advertiserID, ok := h.pathUUID(w, r, "advertiserId")
	if !ok {
		return
	}
	campaignID, ok := h.pathUUID(w, r, "campaignId")
	if !ok {
		return
	}

	if err := h.campaigns.Delete(r.Context(), advertiserID, campaignID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUploadCampaignImage accepts a multipart form with an "image"
// field and stores it on the object store.
func (h *Handler) handleUploadCampaignImage(w http.ResponseWriter, r *http.Request) {
	advertiserID, ok := h.pathUUID(w, r, "advertiserId")
	if !ok {
		return
	}
	campaignID, ok := h.pathUUID(w, r, "campaignId")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing image file"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	campaign, err := h.campaigns.UploadImage(r.Context(), advertiserID, campaignID,
		header.Filename, contentType, file, header.Size)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, campaignToDTO(*campaign))
}

// handleGenerateAdText produces ad copy via the text model.
func (h *Handler) handleGenerateAdText(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.pathUUID(w, r, "advertiserId"); !ok {
		return
	}
	var in generationDTO
	if !h.decode(w, r, &in) {
		return
	}

	text, err := h.campaigns.GenerateText(r.Context(), toGenerationInput(in))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, generatedTextDTO{Text: text})
}
