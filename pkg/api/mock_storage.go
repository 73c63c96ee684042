package api

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/maya-clifford/final-case/pkg/domain"
)

// MockWorkoutStore provides a mock implementation of domain.WorkoutStore for testing
type MockWorkoutStore struct {
	mu       sync.RWMutex
	workouts []domain.Workout
	nextID   int

	insertCalls int
	findCalls   int
	deleteCalls int

	// Err, when set, is returned by every operation.
	Err error
}

var _ domain.WorkoutStore = (*MockWorkoutStore)(nil)

// NewMockWorkoutStore creates a new mock store
func NewMockWorkoutStore() *MockWorkoutStore {
	return &MockWorkoutStore{}
}

// Insert appends a workout with a predictable 24-hex id
func (m *MockWorkoutStore) Insert(ctx context.Context, workout *domain.Workout) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.insertCalls++
	if m.Err != nil {
		return m.Err
	}

	m.nextID++
	workout.ID = fmt.Sprintf("%024x", m.nextID)
	m.workouts = append(m.workouts, *workout)
	return nil
}

// Find returns matching workouts, newest date first
func (m *MockWorkoutStore) Find(ctx context.Context, filter domain.WorkoutFilter) ([]domain.Workout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.findCalls++
	if m.Err != nil {
		return nil, m.Err
	}

	var results []domain.Workout
	for _, w := range m.workouts {
		if matches(w, filter) {
			results = append(results, w)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date > results[j].Date
	})
	return results, nil
}

// FindByID retrieves a workout by ID
func (m *MockWorkoutStore) FindByID(ctx context.Context, id string) (*domain.Workout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.findCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	if len(id) != 24 {
		return nil, fmt.Errorf("%w %q", domain.ErrInvalidID, id)
	}

	for _, w := range m.workouts {
		if w.ID == id {
			found := w
			return &found, nil
		}
	}
	return nil, fmt.Errorf("workout %s: %w", id, domain.ErrWorkoutNotFound)
}

// DeleteByID removes a workout by ID
func (m *MockWorkoutStore) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteCalls++
	if m.Err != nil {
		return m.Err
	}
	if len(id) != 24 {
		return fmt.Errorf("%w %q", domain.ErrInvalidID, id)
	}

	for i, w := range m.workouts {
		if w.ID == id {
			m.workouts = append(m.workouts[:i], m.workouts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("workout %s: %w", id, domain.ErrWorkoutNotFound)
}

// PersonalRecords groups by exact exercise name
func (m *MockWorkoutStore) PersonalRecords(ctx context.Context) ([]domain.PersonalRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}

	index := make(map[string]int)
	var records []domain.PersonalRecord
	for _, w := range m.workouts {
		i, ok := index[w.Exercise]
		if !ok {
			index[w.Exercise] = len(records)
			records = append(records, domain.PersonalRecord{Exercise: w.Exercise, MaxWeight: w.Weight})
			i = len(records) - 1
		}
		if w.Weight > records[i].MaxWeight {
			records[i].MaxWeight = w.Weight
		}
		records[i].TotalSets += w.Sets
		records[i].WorkoutCount++
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MaxWeight > records[j].MaxWeight
	})
	return records, nil
}

// Volume sums sets x reps x weight over matching workouts
func (m *MockWorkoutStore) Volume(ctx context.Context, filter domain.WorkoutFilter) (domain.Volume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return domain.Volume{}, m.Err
	}

	volume := domain.Volume{Exercise: filter.Label()}
	for _, w := range m.workouts {
		if matches(w, filter) {
			volume.TotalVolume += w.Volume()
			volume.WorkoutCount++
		}
	}
	return volume, nil
}

func (m *MockWorkoutStore) Ping(ctx context.Context) error  { return m.Err }
func (m *MockWorkoutStore) Close(ctx context.Context) error { return nil }

// GetInsertCalls returns the number of insert calls made
func (m *MockWorkoutStore) GetInsertCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.insertCalls
}

// GetDeleteCalls returns the number of delete calls made
func (m *MockWorkoutStore) GetDeleteCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.deleteCalls
}

// Count returns the number of stored workouts
func (m *MockWorkoutStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.workouts)
}

func matches(w domain.Workout, filter domain.WorkoutFilter) bool {
	return filter.IsEmpty() || strings.Contains(strings.ToLower(w.Exercise), strings.ToLower(filter.Exercise))
}
