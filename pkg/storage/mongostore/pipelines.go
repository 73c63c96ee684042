package mongostore

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/maya-clifford/final-case/pkg/domain"
)

// ExerciseFilter builds the query document for a workout filter.
// The filter text is escaped so it matches literally, ignoring case.
func ExerciseFilter(filter domain.WorkoutFilter) bson.M {
	if filter.IsEmpty() {
		return bson.M{}
	}
	return bson.M{
		"exercise": bson.M{
			"$regex":   regexp.QuoteMeta(filter.Exercise),
			"$options": "i",
		},
	}
}

// DateDescending sorts newest date first, newest insert first on ties.
var DateDescending = bson.D{
	{Key: "date", Value: -1},
	{Key: "_id", Value: -1},
}

// PersonalRecordsPipeline groups by the exact exercise name and orders the
// groups by max weight descending, then exercise name.
func PersonalRecordsPipeline() bson.A {
	return bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$exercise"},
			{Key: "max_weight", Value: bson.D{{Key: "$max", Value: "$weight"}}},
			{Key: "total_sets", Value: bson.D{{Key: "$sum", Value: "$sets"}}},
			{Key: "workout_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "exercise", Value: "$_id"},
			{Key: "max_weight", Value: 1},
			{Key: "total_sets", Value: 1},
			{Key: "workout_count", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "max_weight", Value: -1},
			{Key: "exercise", Value: 1},
		}}},
	}
}

// VolumePipeline sums sets x reps x weight over the filtered workouts.
// It yields no document when nothing matches.
func VolumePipeline(filter domain.WorkoutFilter) bson.A {
	pipeline := bson.A{}
	if !filter.IsEmpty() {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: ExerciseFilter(filter)}})
	}
	return append(pipeline, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "total_volume", Value: bson.D{{Key: "$sum", Value: bson.D{
			{Key: "$multiply", Value: bson.A{"$sets", "$reps", "$weight"}},
		}}}},
		{Key: "workout_count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}})
}
