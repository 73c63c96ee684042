package storage

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/maya-clifford/final-case/pkg/domain"
	"github.com/maya-clifford/final-case/pkg/logger"
)

// StorageEngine is an embedded, in-memory workout store with optional
// snapshot persistence. It implements domain.WorkoutStore.
type StorageEngine struct {
	mu       sync.RWMutex
	workouts map[string]domain.Workout
	dirty    bool
	closed   bool

	// Configuration
	dataFile       string
	backgroundSave bool
	saveInterval   time.Duration
	log            logrus.FieldLogger

	// Background workers
	backgroundWg sync.WaitGroup
	stopChan     chan struct{}
	stopOnce     sync.Once
}

var _ domain.WorkoutStore = (*StorageEngine)(nil)

// NewStorageEngine creates a new, empty storage engine.
func NewStorageEngine(options ...StorageOption) *StorageEngine {
	engine := &StorageEngine{
		workouts:     make(map[string]domain.Workout),
		saveInterval: 5 * time.Minute,
		log:          logger.Discard(),
		stopChan:     make(chan struct{}),
	}

	for _, option := range options {
		option(engine)
	}

	return engine
}

// DataFile returns the snapshot path, or "" when persistence is disabled.
func (se *StorageEngine) DataFile() string {
	return se.dataFile
}

// Len returns the number of stored workouts.
func (se *StorageEngine) Len() int {
	se.mu.RLock()
	defer se.mu.RUnlock()
	return len(se.workouts)
}

// IsDirty reports whether there are changes not yet written to the data file.
func (se *StorageEngine) IsDirty() bool {
	se.mu.RLock()
	defer se.mu.RUnlock()
	return se.dirty
}
