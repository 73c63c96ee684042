package mongostore

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maya-clifford/final-case/pkg/domain"
)

// workoutDocument is the stored shape of a workout.
type workoutDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Exercise  string             `bson:"exercise"`
	Sets      int                `bson:"sets"`
	Reps      int                `bson:"reps"`
	Weight    float64            `bson:"weight"`
	Date      string             `bson:"date"`
	Notes     string             `bson:"notes"`
	CreatedAt string             `bson:"created_at"`
}

func fromWorkout(w domain.Workout) workoutDocument {
	return workoutDocument{
		Exercise:  w.Exercise,
		Sets:      w.Sets,
		Reps:      w.Reps,
		Weight:    w.Weight,
		Date:      w.Date,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
	}
}

func (d workoutDocument) toWorkout() domain.Workout {
	return domain.Workout{
		ID:        d.ID.Hex(),
		Exercise:  d.Exercise,
		Sets:      d.Sets,
		Reps:      d.Reps,
		Weight:    d.Weight,
		Date:      d.Date,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
	}
}

type personalRecordDocument struct {
	Exercise     string  `bson:"exercise"`
	MaxWeight    float64 `bson:"max_weight"`
	TotalSets    int     `bson:"total_sets"`
	WorkoutCount int     `bson:"workout_count"`
}

type volumeDocument struct {
	TotalVolume  float64 `bson:"total_volume"`
	WorkoutCount int     `bson:"workout_count"`
}
