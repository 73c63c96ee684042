package storage

import (
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maya-clifford/final-case/pkg/domain"
)

// MatchesFilter checks whether a workout satisfies the filter.
// Exercise names match case-insensitively on any substring.
func MatchesFilter(workout domain.Workout, filter domain.WorkoutFilter) bool {
	if filter.IsEmpty() {
		return true
	}
	return strings.Contains(strings.ToLower(workout.Exercise), strings.ToLower(filter.Exercise))
}

// SortByDateDesc orders workouts by date descending, newest id first on ties.
func SortByDateDesc(workouts []domain.Workout) {
	sort.Slice(workouts, func(i, j int) bool {
		if workouts[i].Date != workouts[j].Date {
			return workouts[i].Date > workouts[j].Date
		}
		return workouts[i].ID > workouts[j].ID
	})
}

// ValidateID checks that id is a 24-character hex object id.
func ValidateID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("%w %q: %v", domain.ErrInvalidID, id, err)
	}
	return nil
}
