package storage

import (
	"time"
)

// StartBackgroundWorkers starts the periodic snapshot worker when both a
// data file and a save interval are configured.
func (se *StorageEngine) StartBackgroundWorkers() {
	if !se.backgroundSave || se.dataFile == "" {
		return
	}

	se.backgroundWg.Add(1)
	go func() {
		defer se.backgroundWg.Done()
		ticker := time.NewTicker(se.saveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				se.saveIfDirty()
			case <-se.stopChan:
				return
			}
		}
	}()

	se.log.WithField("interval", se.saveInterval.String()).Info("background save enabled")
}

// StopBackgroundWorkers stops background workers and waits for them to exit.
func (se *StorageEngine) StopBackgroundWorkers() {
	se.stopOnce.Do(func() {
		close(se.stopChan)
	})
	se.backgroundWg.Wait()
}

func (se *StorageEngine) saveIfDirty() {
	se.mu.Lock()
	defer se.mu.Unlock()

	if !se.dirty || se.closed {
		return
	}
	if err := se.saveLocked(se.dataFile); err != nil {
		se.log.WithError(err).WithField("file", se.dataFile).Error("background save failed")
		return
	}
	se.log.WithField("file", se.dataFile).Debug("background save complete")
}
