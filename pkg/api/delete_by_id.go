package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/maya-clifford/final-case/pkg/observability"
)

// HandleDeleteById handles DELETE requests to remove a specific workout by ID
func (h *Handler) HandleDeleteById(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.storage.DeleteByID(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	observability.RecordWorkoutDeleted()

	h.logger(r.Context()).WithField("workout_id", id).Info("workout deleted")
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Workout deleted successfully"})
}
