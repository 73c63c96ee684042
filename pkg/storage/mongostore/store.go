// Package mongostore is the MongoDB storage gateway for workouts.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/maya-clifford/final-case/pkg/domain"
	"github.com/maya-clifford/final-case/pkg/logger"
)

// CollectionName is the collection holding workout documents.
const CollectionName = "workouts"

// Options configures Connect.
type Options struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	Logger         logrus.FieldLogger
}

// Store implements domain.WorkoutStore on a MongoDB collection.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
	log        logrus.FieldLogger
}

var _ domain.WorkoutStore = (*Store)(nil)

// Connect opens a client, verifies it with a ping and selects the
// workouts collection. The caller owns the returned Store and must Close it.
func Connect(ctx context.Context, opts Options) (*Store, error) {
	if opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	store := NewStore(client.Database(opts.Database).Collection(CollectionName))
	store.client = client
	if opts.Logger != nil {
		store.log = opts.Logger
	}
	store.log.WithFields(logrus.Fields{
		"database":   opts.Database,
		"collection": CollectionName,
	}).Info("connected to mongodb")

	return store, nil
}

// NewStore wraps an existing collection. Close does not disconnect the
// collection's client.
func NewStore(collection *mongo.Collection) *Store {
	return &Store{
		collection: collection,
		log:        logger.Discard(),
	}
}

// Insert stores a workout and sets its id to the one the store assigned.
func (s *Store) Insert(ctx context.Context, workout *domain.Workout) error {
	result, err := s.collection.InsertOne(ctx, fromWorkout(*workout))
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert workout: unexpected id type %T", result.InsertedID)
	}
	workout.ID = oid.Hex()

	return nil
}

// Find returns workouts matching filter, newest date first.
func (s *Store) Find(ctx context.Context, filter domain.WorkoutFilter) ([]domain.Workout, error) {
	cursor, err := s.collection.Find(ctx, ExerciseFilter(filter), options.Find().SetSort(DateDescending))
	if err != nil {
		return nil, fmt.Errorf("find workouts: %w", err)
	}

	var docs []workoutDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode workouts: %w", err)
	}

	workouts := make([]domain.Workout, 0, len(docs))
	for _, doc := range docs {
		workouts = append(workouts, doc.toWorkout())
	}
	return workouts, nil
}

// FindByID retrieves a single workout.
func (s *Store) FindByID(ctx context.Context, id string) (*domain.Workout, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc workoutDocument
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("workout %s: %w", id, domain.ErrWorkoutNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find workout %s: %w", id, err)
	}

	workout := doc.toWorkout()
	return &workout, nil
}

// DeleteByID removes a single workout.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete workout %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("workout %s: %w", id, domain.ErrWorkoutNotFound)
	}

	return nil
}

// PersonalRecords runs the personal-record aggregation.
func (s *Store) PersonalRecords(ctx context.Context) ([]domain.PersonalRecord, error) {
	cursor, err := s.collection.Aggregate(ctx, PersonalRecordsPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate personal records: %w", err)
	}

	var docs []personalRecordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode personal records: %w", err)
	}

	records := make([]domain.PersonalRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, domain.PersonalRecord(doc))
	}
	return records, nil
}

// Volume runs the training volume aggregation.
func (s *Store) Volume(ctx context.Context, filter domain.WorkoutFilter) (domain.Volume, error) {
	volume := domain.Volume{Exercise: filter.Label()}

	cursor, err := s.collection.Aggregate(ctx, VolumePipeline(filter))
	if err != nil {
		return volume, fmt.Errorf("aggregate volume: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return volume, fmt.Errorf("aggregate volume: %w", err)
		}
		return volume, nil
	}

	var doc volumeDocument
	if err := cursor.Decode(&doc); err != nil {
		return volume, fmt.Errorf("decode volume: %w", err)
	}
	volume.TotalVolume = doc.TotalVolume
	volume.WorkoutCount = doc.WorkoutCount

	return volume, nil
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.collection.Database().Client().Ping(ctx, readpref.Primary())
}

// Close disconnects the client opened by Connect.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	s.log.Info("disconnected from mongodb")
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %v", domain.ErrInvalidID, id, err)
	}
	return oid, nil
}
