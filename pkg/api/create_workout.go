package api

import (
	"net/http"

	"github.com/maya-clifford/final-case/pkg/observability"
)

// HandleCreateWorkout handles POST requests to log a new workout
func (h *Handler) HandleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r.Context())
	log.Debug("handleCreateWorkout called")

	req, err := h.decodeCreateRequest(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	workout, err := req.ToWorkout(h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.storage.Insert(r.Context(), &workout); err != nil {
		h.writeError(w, r, err)
		return
	}
	observability.RecordWorkoutCreated()

	log.WithField("workout_id", workout.ID).WithField("exercise", workout.Exercise).Info("workout created")
	WriteJSON(w, http.StatusCreated, workout)
}
