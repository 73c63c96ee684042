package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/maya-clifford/final-case/pkg/domain"
)

// SaveToFile writes a snapshot of all workouts to filename.
func (se *StorageEngine) SaveToFile(filename string) error {
	se.mu.Lock()
	defer se.mu.Unlock()
	return se.saveLocked(filename)
}

// saveLocked writes the snapshot; the caller holds se.mu.
func (se *StorageEngine) saveLocked(filename string) error {
	storageData := NewStorageData()
	for _, workout := range se.workouts {
		storageData.Workouts = append(storageData.Workouts, toRecord(workout))
	}
	storageData.Metadata["saved_at"] = time.Now().UTC().Format(domain.TimestampLayout)
	storageData.Metadata["count"] = len(storageData.Workouts)

	data, err := encodeSnapshot(storageData)
	if err != nil {
		return err
	}

	// Write to a temp file first so a crash never leaves a torn snapshot.
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	se.dirty = false
	return nil
}

// LoadFromFile replaces the engine contents with the snapshot in filename.
// A missing file leaves the engine empty.
func (se *StorageEngine) LoadFromFile(filename string) error {
	raw, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open file: %w", err)
	}

	storageData, err := decodeSnapshot(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	workouts := make(map[string]domain.Workout, len(storageData.Workouts))
	for _, record := range storageData.Workouts {
		workouts[record.ID] = record.toWorkout()
	}

	se.mu.Lock()
	defer se.mu.Unlock()
	se.workouts = workouts
	se.dirty = false

	return nil
}

// maxCompressionRatio is the largest expansion an lz4 block can decode to.
const maxCompressionRatio = 255

func encodeSnapshot(storageData *StorageData) ([]byte, error) {
	msgpackData, err := msgpack.Marshal(storageData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	compressedData := make([]byte, lz4.CompressBlockBound(len(msgpackData)))
	var hashTable [1 << 16]int
	n, err := lz4.CompressBlock(msgpackData, compressedData, hashTable[:])
	if err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	var flags uint8
	payload := compressedData[:n]
	// lz4 reports 0 for incompressible input.
	if n == 0 || n >= len(msgpackData) {
		flags |= FlagUncompressed
		payload = msgpackData
	}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, flags, uint32(len(msgpackData))); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	buf.Write(payload)

	return buf.Bytes(), nil
}

func decodeSnapshot(r io.Reader) (*StorageData, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid file header: %w", err)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	msgpackData := payload
	if header.Flags&FlagUncompressed == 0 {
		if uint64(header.RawSize) > uint64(len(payload))*maxCompressionRatio {
			return nil, fmt.Errorf("snapshot declares %d raw bytes for a %d byte payload", header.RawSize, len(payload))
		}
		msgpackData = make([]byte, header.RawSize)
		n, err := lz4.UncompressBlock(payload, msgpackData)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress data: %w", err)
		}
		msgpackData = msgpackData[:n]
	}

	var storageData StorageData
	if err := msgpack.Unmarshal(msgpackData, &storageData); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
	}

	return &storageData, nil
}
