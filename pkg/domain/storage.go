package domain

import "context"

// WorkoutStore defines the storage operations the API layer depends on.
// Implementations must be safe for concurrent use.
type WorkoutStore interface {
	Insert(ctx context.Context, workout *Workout) error
	Find(ctx context.Context, filter WorkoutFilter) ([]Workout, error)
	FindByID(ctx context.Context, id string) (*Workout, error)
	DeleteByID(ctx context.Context, id string) error
	PersonalRecords(ctx context.Context) ([]PersonalRecord, error)
	Volume(ctx context.Context, filter WorkoutFilter) (Volume, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
