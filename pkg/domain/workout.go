package domain

// TimestampLayout is the ISO-8601 layout used for date and created_at.
// Fractional seconds are zero-padded so stored strings sort chronologically.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Workout represents a single logged exercise entry.
type Workout struct {
	ID        string  `json:"_id"`
	Exercise  string  `json:"exercise"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Date      string  `json:"date"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

// Volume returns sets x reps x weight for this workout.
func (w Workout) Volume() float64 {
	return float64(w.Sets) * float64(w.Reps) * w.Weight
}

// WorkoutFilter narrows Find and Volume queries.
// An empty Exercise matches every workout; otherwise it is a
// case-insensitive substring match on the exercise name.
type WorkoutFilter struct {
	Exercise string
}

// IsEmpty reports whether the filter matches everything.
func (f WorkoutFilter) IsEmpty() bool {
	return f.Exercise == ""
}

// PersonalRecord summarises all workouts sharing one exact exercise name.
type PersonalRecord struct {
	Exercise     string  `json:"exercise"`
	MaxWeight    float64 `json:"max_weight"`
	TotalSets    int     `json:"total_sets"`
	WorkoutCount int     `json:"workout_count"`
}

// Volume is the training volume over the workouts matched by a filter.
type Volume struct {
	Exercise     string  `json:"exercise"`
	TotalVolume  float64 `json:"total_volume"`
	WorkoutCount int     `json:"workout_count"`
}

// VolumeLabel is the exercise label reported for an unfiltered volume query.
const VolumeLabel = "all"

// Label returns the exercise label reported alongside a volume result.
func (f WorkoutFilter) Label() string {
	if f.IsEmpty() {
		return VolumeLabel
	}
	return f.Exercise
}
