package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maya-clifford/final-case/pkg/domain"
)

func insertWorkouts(t *testing.T, engine *StorageEngine, workouts ...domain.Workout) []domain.Workout {
	t.Helper()
	inserted := make([]domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		w := w
		require.NoError(t, engine.Insert(context.Background(), &w))
		inserted = append(inserted, w)
	}
	return inserted
}

func TestStorageEngine_InsertAndFindByID(t *testing.T) {
	engine := NewStorageEngine()
	ctx := context.Background()

	workout := &domain.Workout{Exercise: "Bench Press", Sets: 3, Reps: 10, Weight: 135, Date: "2024-01-01T10:00:00Z"}
	require.NoError(t, engine.Insert(ctx, workout))
	require.Len(t, workout.ID, 24)
	assert.True(t, engine.IsDirty())

	found, err := engine.FindByID(ctx, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, *workout, *found)
	assert.Equal(t, 1, engine.Len())
}

func TestStorageEngine_InsertAssignsUniqueIDs(t *testing.T) {
	engine := NewStorageEngine()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan string, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := &domain.Workout{Exercise: fmt.Sprintf("Exercise %d", i), Sets: 1, Reps: 1, Weight: 1}
			assert.NoError(t, engine.Insert(ctx, w))
			ids <- w.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, 100)
	assert.Equal(t, 100, engine.Len())
}

func TestStorageEngine_FindByID_Errors(t *testing.T) {
	engine := NewStorageEngine()
	ctx := context.Background()

	_, err := engine.FindByID(ctx, "507f1f77bcf86cd799439011")
	assert.True(t, errors.Is(err, domain.ErrWorkoutNotFound))

	_, err = engine.FindByID(ctx, "not-an-id")
	assert.True(t, errors.Is(err, domain.ErrInvalidID))
	assert.False(t, errors.Is(err, domain.ErrWorkoutNotFound))
}

func TestStorageEngine_DeleteByID(t *testing.T) {
	engine := NewStorageEngine()
	ctx := context.Background()
	inserted := insertWorkouts(t, engine, domain.Workout{Exercise: "Squat", Sets: 5, Reps: 5, Weight: 225})

	require.NoError(t, engine.DeleteByID(ctx, inserted[0].ID))

	err := engine.DeleteByID(ctx, inserted[0].ID)
	assert.True(t, errors.Is(err, domain.ErrWorkoutNotFound))

	err = engine.DeleteByID(ctx, "xyz")
	assert.True(t, errors.Is(err, domain.ErrInvalidID))
	assert.Equal(t, 0, engine.Len())
}

func TestStorageEngine_Find(t *testing.T) {
	engine := NewStorageEngine()
	insertWorkouts(t, engine,
		domain.Workout{Exercise: "Bench Press", Sets: 3, Reps: 10, Weight: 135, Date: "2024-01-01T10:00:00Z"},
		domain.Workout{Exercise: "Incline bench", Sets: 3, Reps: 8, Weight: 95, Date: "2024-01-03T10:00:00Z"},
		domain.Workout{Exercise: "Squat", Sets: 5, Reps: 5, Weight: 225, Date: "2024-01-02T10:00:00Z"},
	)

	tests := []struct {
		name      string
		filter    domain.WorkoutFilter
		exercises []string
	}{
		{
			name:      "no filter returns everything by date descending",
			filter:    domain.WorkoutFilter{},
			exercises: []string{"Incline bench", "Squat", "Bench Press"},
		},
		{
			name:      "case-insensitive substring",
			filter:    domain.WorkoutFilter{Exercise: "BENCH"},
			exercises: []string{"Incline bench", "Bench Press"},
		},
		{
			name:      "regex metacharacters are literal",
			filter:    domain.WorkoutFilter{Exercise: "b.nch"},
			exercises: []string{},
		},
		{
			name:      "no match",
			filter:    domain.WorkoutFilter{Exercise: "deadlift"},
			exercises: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := engine.Find(context.Background(), tt.filter)
			require.NoError(t, err)
			require.NotNil(t, results)

			names := make([]string, 0, len(results))
			for _, w := range results {
				names = append(names, w.Exercise)
			}
			assert.Equal(t, tt.exercises, names)
		})
	}
}

func TestStorageEngine_PersonalRecords(t *testing.T) {
	engine := NewStorageEngine()
	insertWorkouts(t, engine,
		domain.Workout{Exercise: "Bench Press", Sets: 3, Reps: 10, Weight: 100},
		domain.Workout{Exercise: "Bench Press", Sets: 4, Reps: 8, Weight: 120},
		domain.Workout{Exercise: "bench press", Sets: 2, Reps: 5, Weight: 150},
		domain.Workout{Exercise: "Squat", Sets: 5, Reps: 5, Weight: 120},
	)

	records, err := engine.PersonalRecords(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.PersonalRecord{
		{Exercise: "bench press", MaxWeight: 150, TotalSets: 2, WorkoutCount: 1},
		{Exercise: "Bench Press", MaxWeight: 120, TotalSets: 7, WorkoutCount: 2},
		{Exercise: "Squat", MaxWeight: 120, TotalSets: 5, WorkoutCount: 1},
	}, records)
}

func TestStorageEngine_PersonalRecords_Empty(t *testing.T) {
	records, err := NewStorageEngine().PersonalRecords(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestStorageEngine_Volume(t *testing.T) {
	engine := NewStorageEngine()
	insertWorkouts(t, engine,
		domain.Workout{Exercise: "Bench Press", Sets: 3, Reps: 10, Weight: 135},
		domain.Workout{Exercise: "Incline Bench", Sets: 4, Reps: 8, Weight: 100},
		domain.Workout{Exercise: "Squat", Sets: 5, Reps: 5, Weight: 200},
	)

	volume, err := engine.Volume(context.Background(), domain.WorkoutFilter{Exercise: "bench"})
	require.NoError(t, err)
	assert.Equal(t, domain.Volume{Exercise: "bench", TotalVolume: 7250, WorkoutCount: 2}, volume)

	volume, err = engine.Volume(context.Background(), domain.WorkoutFilter{})
	require.NoError(t, err)
	assert.Equal(t, domain.Volume{Exercise: "all", TotalVolume: 12250, WorkoutCount: 3}, volume)
}

func TestStorageEngine_CanceledContext(t *testing.T) {
	engine := NewStorageEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := engine.Insert(ctx, &domain.Workout{Exercise: "Row", Sets: 1, Reps: 1, Weight: 1})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = engine.Find(ctx, domain.WorkoutFilter{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, engine.Ping(ctx), context.Canceled)
}

func TestStorageEngine_Close(t *testing.T) {
	engine := NewStorageEngine()
	ctx := context.Background()

	require.NoError(t, engine.Ping(ctx))
	require.NoError(t, engine.Close(ctx))
	require.NoError(t, engine.Close(ctx))

	assert.ErrorIs(t, engine.Ping(ctx), ErrClosed)
	assert.ErrorIs(t, engine.Insert(ctx, &domain.Workout{}), ErrClosed)
}
