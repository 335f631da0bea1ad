package httpadapter

import (
	"net/http"

	"orbit-ads/internal/core/domain"
)

// handleClientsBulk creates or updates clients. Invalid entries are
// dropped; the accepted entities are returned with 201.
func (h *Handler) handleClientsBulk(w http.ResponseWriter, r *http.Request) {
	var in []clientDTO
	if !h.decode(w, r, &in) {
		return
	}

	clients := make([]domain.Client, 0, len(in))
	for _, dto := range in {
		clients = append(clients, dto.toDomain())
	}

	accepted, err := h.directory.UpsertClients(r.Context(), clients)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]clientDTO, 0, len(accepted))
	for _, c := range accepted {
		out = append(out, clientToDTO(c))
	}
	h.writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "clientId")
	if !ok {
		return
	}
	client, err := h.directory.GetClient(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, clientToDTO(*client))
}
