package storage

import (
	"context"
	"sort"

	"github.com/maya-clifford/final-case/pkg/domain"
)

// PersonalRecords groups workouts by their exact exercise name.
// Groups are ordered by max weight descending, then exercise name.
func (se *StorageEngine) PersonalRecords(ctx context.Context) ([]domain.PersonalRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	se.mu.RLock()
	defer se.mu.RUnlock()

	if se.closed {
		return nil, ErrClosed
	}

	groups := make(map[string]*domain.PersonalRecord)
	for _, workout := range se.workouts {
		pr, exists := groups[workout.Exercise]
		if !exists {
			pr = &domain.PersonalRecord{Exercise: workout.Exercise, MaxWeight: workout.Weight}
			groups[workout.Exercise] = pr
		}
		if workout.Weight > pr.MaxWeight {
			pr.MaxWeight = workout.Weight
		}
		pr.TotalSets += workout.Sets
		pr.WorkoutCount++
	}

	records := make([]domain.PersonalRecord, 0, len(groups))
	for _, pr := range groups {
		records = append(records, *pr)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].MaxWeight != records[j].MaxWeight {
			return records[i].MaxWeight > records[j].MaxWeight
		}
		return records[i].Exercise < records[j].Exercise
	})

	return records, nil
}

// Volume sums sets x reps x weight over the workouts matching filter.
func (se *StorageEngine) Volume(ctx context.Context, filter domain.WorkoutFilter) (domain.Volume, error) {
	if err := ctx.Err(); err != nil {
		return domain.Volume{}, err
	}

	se.mu.RLock()
	defer se.mu.RUnlock()

	if se.closed {
		return domain.Volume{}, ErrClosed
	}

	volume := domain.Volume{Exercise: filter.Label()}
	for _, workout := range se.workouts {
		if !MatchesFilter(workout, filter) {
			continue
		}
		volume.TotalVolume += workout.Volume()
		volume.WorkoutCount++
	}

	return volume, nil
}
