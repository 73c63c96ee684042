package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// HandleGetById handles GET requests to retrieve a specific workout by ID
func (h *Handler) HandleGetById(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	workout, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, workout)
}
