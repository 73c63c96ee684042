package api

import (
	"net/http"

	"github.com/maya-clifford/final-case/pkg/domain"
)

// HandlePersonalRecords handles GET /stats/pr.
// Groups use the exercise name exactly as stored, unlike the
// case-insensitive list filter.
func (h *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.storage.PersonalRecords(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.PersonalRecord{}
	}

	WriteJSON(w, http.StatusOK, records)
}

// HandleVolume handles GET /stats/volume with the same optional exercise
// filter as the workout list.
func (h *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	volume, err := h.storage.Volume(r.Context(), filterFromQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, volume)
}
