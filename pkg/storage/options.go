package storage

import (
	"time"

	"github.com/sirupsen/logrus"
)

type StorageOption func(*StorageEngine)

// WithDataFile enables snapshot persistence to the given file.
func WithDataFile(path string) StorageOption {
	return func(engine *StorageEngine) {
		engine.dataFile = path
	}
}

// WithBackgroundSave saves dirty state every interval. Requires WithDataFile.
func WithBackgroundSave(interval time.Duration) StorageOption {
	return func(engine *StorageEngine) {
		if interval <= 0 {
			return
		}
		engine.backgroundSave = true
		engine.saveInterval = interval
	}
}

func WithLogger(log logrus.FieldLogger) StorageOption {
	return func(engine *StorageEngine) {
		if log != nil {
			engine.log = log
		}
	}
}
