package mongostore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/maya-clifford/final-case/pkg/domain"
)

func TestExerciseFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, ExerciseFilter(domain.WorkoutFilter{}))

	filter := ExerciseFilter(domain.WorkoutFilter{Exercise: "bench"})
	assert.Equal(t, bson.M{"exercise": bson.M{"$regex": "bench", "$options": "i"}}, filter)
}

func TestExerciseFilter_EscapesRegex(t *testing.T) {
	filter := ExerciseFilter(domain.WorkoutFilter{Exercise: "db.press (incline)"})
	inner := filter["exercise"].(bson.M)
	assert.Equal(t, `db\.press \(incline\)`, inner["$regex"])
}

func TestPersonalRecordsPipeline(t *testing.T) {
	pipeline := PersonalRecordsPipeline()
	require.Len(t, pipeline, 3)

	group := pipeline[0].(bson.D)
	assert.Equal(t, "$group", group[0].Key)
	groupSpec := group[0].Value.(bson.D)
	assert.Equal(t, bson.E{Key: "_id", Value: "$exercise"}, groupSpec[0], "groups by the exact stored exercise name")

	sortStage := pipeline[2].(bson.D)
	assert.Equal(t, "$sort", sortStage[0].Key)
	assert.Equal(t, bson.D{{Key: "max_weight", Value: -1}, {Key: "exercise", Value: 1}}, sortStage[0].Value)
}

func TestVolumePipeline(t *testing.T) {
	unfiltered := VolumePipeline(domain.WorkoutFilter{})
	require.Len(t, unfiltered, 1)
	assert.Equal(t, "$group", unfiltered[0].(bson.D)[0].Key)

	filtered := VolumePipeline(domain.WorkoutFilter{Exercise: "squat"})
	require.Len(t, filtered, 2)
	match := filtered[0].(bson.D)[0]
	assert.Equal(t, "$match", match.Key)
	assert.Equal(t, ExerciseFilter(domain.WorkoutFilter{Exercise: "squat"}), match.Value)
}
