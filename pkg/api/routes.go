package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")

	// Workout operations
	router.HandleFunc("/workouts", h.HandleCreateWorkout).Methods("POST")
	router.HandleFunc("/workouts", h.HandleFindAll).Methods("GET")
	router.HandleFunc("/workouts/{id}", h.HandleGetById).Methods("GET")
	router.HandleFunc("/workouts/{id}", h.HandleDeleteById).Methods("DELETE")

	// Aggregations
	router.HandleFunc("/stats/pr", h.HandlePersonalRecords).Methods("GET")
	router.HandleFunc("/stats/volume", h.HandleVolume).Methods("GET")
}
