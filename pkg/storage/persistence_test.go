package storage

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maya-clifford/final-case/pkg/domain"
)

func TestPersistence_SaveAndLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "workouts"+FileExtension)

	engine := NewStorageEngine()
	inserted := insertWorkouts(t, engine,
		domain.Workout{Exercise: "Bench Press", Sets: 3, Reps: 10, Weight: 135.5, Date: "2024-01-01T10:00:00Z", Notes: "felt good", CreatedAt: "2024-01-01T10:05:00Z"},
		domain.Workout{Exercise: "Squat", Sets: 5, Reps: 5, Weight: 225, Date: "2024-01-02T10:00:00Z"},
	)
	require.NoError(t, engine.SaveToFile(file))
	assert.False(t, engine.IsDirty())

	loaded := NewStorageEngine()
	require.NoError(t, loaded.LoadFromFile(file))
	assert.Equal(t, 2, loaded.Len())

	for _, w := range inserted {
		found, err := loaded.FindByID(context.Background(), w.ID)
		require.NoError(t, err)
		assert.Equal(t, w, *found)
	}
}

func TestPersistence_CompressedPayload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bulk"+FileExtension)

	engine := NewStorageEngine()
	for i := 0; i < 500; i++ {
		w := &domain.Workout{Exercise: "Deadlift", Sets: 3, Reps: 5, Weight: float64(300 + i%3), Notes: "same notes every time"}
		require.NoError(t, engine.Insert(context.Background(), w))
	}
	require.NoError(t, engine.SaveToFile(file))

	f, err := os.Open(file)
	require.NoError(t, err)
	header, err := ReadHeader(f)
	f.Close()
	require.NoError(t, err)
	assert.Zero(t, header.Flags&FlagUncompressed, "repetitive data should compress")

	loaded := NewStorageEngine()
	require.NoError(t, loaded.LoadFromFile(file))
	assert.Equal(t, 500, loaded.Len())
}

func TestPersistence_LoadMissingFile(t *testing.T) {
	engine := NewStorageEngine()
	err := engine.LoadFromFile(filepath.Join(t.TempDir(), "missing"+FileExtension))
	assert.NoError(t, err)
	assert.Equal(t, 0, engine.Len())
}

func TestPersistence_LoadCorruptFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "corrupt"+FileExtension)
	require.NoError(t, os.WriteFile(file, []byte("definitely not a snapshot"), 0o644))

	err := NewStorageEngine().LoadFromFile(file)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file header")
}

func TestPersistence_LoadRejectsOversizedRawSize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, 0, math.MaxUint32))
	buf.Write([]byte{0x10, 0x61})

	file := filepath.Join(t.TempDir(), "oversized"+FileExtension)
	require.NoError(t, os.WriteFile(file, buf.Bytes(), 0o644))

	engine := NewStorageEngine()
	err := engine.LoadFromFile(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "raw bytes")
	assert.Equal(t, 0, engine.Len())
}

func TestPersistence_CloseSavesDirtyState(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "close"+FileExtension)

	engine := NewStorageEngine(WithDataFile(file))
	inserted := insertWorkouts(t, engine, domain.Workout{Exercise: "Row", Sets: 3, Reps: 12, Weight: 70})
	require.NoError(t, engine.Close(context.Background()))

	loaded := NewStorageEngine()
	require.NoError(t, loaded.LoadFromFile(file))
	found, err := loaded.FindByID(context.Background(), inserted[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Row", found.Exercise)
}

func TestPersistence_BackgroundSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "background"+FileExtension)

	engine := NewStorageEngine(WithDataFile(file), WithBackgroundSave(20*time.Millisecond))
	engine.StartBackgroundWorkers()
	defer engine.StopBackgroundWorkers()

	insertWorkouts(t, engine, domain.Workout{Exercise: "Curl", Sets: 3, Reps: 12, Weight: 30})

	require.Eventually(t, func() bool {
		return !engine.IsDirty()
	}, 2*time.Second, 10*time.Millisecond)

	_, err := os.Stat(file)
	assert.NoError(t, err, fmt.Sprintf("expected snapshot at %s", file))
}

func TestPersistence_BackgroundSaveRequiresDataFile(t *testing.T) {
	engine := NewStorageEngine(WithBackgroundSave(time.Millisecond))
	engine.StartBackgroundWorkers()
	insertWorkouts(t, engine, domain.Workout{Exercise: "Curl", Sets: 1, Reps: 1, Weight: 1})
	engine.StopBackgroundWorkers()

	assert.True(t, engine.IsDirty())
}
