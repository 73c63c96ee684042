package api

import (
	"net/http"

	"github.com/maya-clifford/final-case/pkg/domain"
)

// filterFromQuery reads the optional exercise query parameter.
func filterFromQuery(r *http.Request) domain.WorkoutFilter {
	return domain.WorkoutFilter{Exercise: r.URL.Query().Get("exercise")}
}

// HandleFindAll handles GET requests listing workouts, optionally filtered by exercise
func (h *Handler) HandleFindAll(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	workouts, err := h.storage.Find(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}

	h.logger(r.Context()).WithField("count", len(workouts)).WithField("exercise", filter.Exercise).Debug("listed workouts")
	WriteJSON(w, http.StatusOK, workouts)
}
