package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maya-clifford/final-case/pkg/domain"
)

func TestMatchesFilter(t *testing.T) {
	tests := []struct {
		name     string
		exercise string
		filter   string
		expected bool
	}{
		{"empty filter", "Bench Press", "", true},
		{"exact", "Bench Press", "Bench Press", true},
		{"lower-case substring", "Bench Press", "bench", true},
		{"upper-case substring", "Bench Press", "PRESS", true},
		{"middle", "Overhead Press", "head", true},
		{"no match", "Squat", "bench", false},
		{"dot is literal", "Bench Press", "b.nch", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := domain.Workout{Exercise: tt.exercise}
			assert.Equal(t, tt.expected, MatchesFilter(w, domain.WorkoutFilter{Exercise: tt.filter}))
		})
	}
}

func TestSortByDateDesc(t *testing.T) {
	workouts := []domain.Workout{
		{ID: "a", Date: "2024-01-01"},
		{ID: "c", Date: "2024-03-01"},
		{ID: "b", Date: "2024-01-01"},
	}

	SortByDateDesc(workouts)

	ids := []string{workouts[0].ID, workouts[1].ID, workouts[2].ID}
	assert.Equal(t, []string{"c", "b", "a"}, ids)
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("507f1f77bcf86cd799439011"))
	assert.ErrorIs(t, ValidateID(""), domain.ErrInvalidID)
	assert.ErrorIs(t, ValidateID("507f1f77bcf86cd79943901z"), domain.ErrInvalidID)
	assert.ErrorIs(t, ValidateID("123"), domain.ErrInvalidID)
}
