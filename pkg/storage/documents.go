package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maya-clifford/final-case/pkg/domain"
)

// ErrClosed is returned by operations on a closed engine.
var ErrClosed = errors.New("storage engine is closed")

// Insert stores a workout and assigns it a new id.
func (se *StorageEngine) Insert(ctx context.Context, workout *domain.Workout) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	se.mu.Lock()
	defer se.mu.Unlock()

	if se.closed {
		return ErrClosed
	}

	workout.ID = primitive.NewObjectID().Hex()
	se.workouts[workout.ID] = *workout
	se.dirty = true

	return nil
}

// Find returns the workouts matching filter, newest date first.
func (se *StorageEngine) Find(ctx context.Context, filter domain.WorkoutFilter) ([]domain.Workout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	se.mu.RLock()
	defer se.mu.RUnlock()

	if se.closed {
		return nil, ErrClosed
	}

	results := make([]domain.Workout, 0, len(se.workouts))
	for _, workout := range se.workouts {
		if MatchesFilter(workout, filter) {
			results = append(results, workout)
		}
	}
	SortByDateDesc(results)

	return results, nil
}

// FindByID retrieves a single workout.
func (se *StorageEngine) FindByID(ctx context.Context, id string) (*domain.Workout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	se.mu.RLock()
	defer se.mu.RUnlock()

	if se.closed {
		return nil, ErrClosed
	}

	workout, exists := se.workouts[id]
	if !exists {
		return nil, fmt.Errorf("workout %s: %w", id, domain.ErrWorkoutNotFound)
	}

	return &workout, nil
}

// DeleteByID removes a single workout.
func (se *StorageEngine) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateID(id); err != nil {
		return err
	}

	se.mu.Lock()
	defer se.mu.Unlock()

	if se.closed {
		return ErrClosed
	}

	if _, exists := se.workouts[id]; !exists {
		return fmt.Errorf("workout %s: %w", id, domain.ErrWorkoutNotFound)
	}

	delete(se.workouts, id)
	se.dirty = true

	return nil
}

// Ping reports whether the engine is usable.
func (se *StorageEngine) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	se.mu.RLock()
	defer se.mu.RUnlock()

	if se.closed {
		return ErrClosed
	}
	return nil
}

// Close stops background workers and writes a final snapshot when a data
// file is configured. Further operations return ErrClosed.
func (se *StorageEngine) Close(ctx context.Context) error {
	se.StopBackgroundWorkers()

	se.mu.Lock()
	defer se.mu.Unlock()

	if se.closed {
		return nil
	}
	se.closed = true

	if se.dataFile == "" || !se.dirty {
		return nil
	}
	if err := se.saveLocked(se.dataFile); err != nil {
		return err
	}
	se.log.WithField("file", se.dataFile).Info("saved workouts on close")

	return nil
}
