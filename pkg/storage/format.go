package storage

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/maya-clifford/final-case/pkg/domain"
)

const (
	// Magic bytes to identify the snapshot format
	MagicBytes = "WKTS"
	// Current version
	FormatVersion = 1
	// File extension for snapshot files
	FileExtension = ".wkts"
)

const (
	// FlagUncompressed marks a payload stored without lz4 compression.
	FlagUncompressed uint8 = 1 << iota
)

// FileHeader represents the header of a snapshot file
type FileHeader struct {
	Magic    [4]byte // "WKTS"
	Version  uint8   // Format version
	Flags    uint8   // FlagUncompressed
	Reserved [2]byte // Reserved for future use
	RawSize  uint32  // Length of the msgpack payload before compression
}

// WriteHeader writes the file header to the given writer
func WriteHeader(w io.Writer, flags uint8, rawSize uint32) error {
	header := FileHeader{
		Magic:    [4]byte{'W', 'K', 'T', 'S'},
		Version:  FormatVersion,
		Flags:    flags,
		Reserved: [2]byte{0, 0},
		RawSize:  rawSize,
	}

	return binary.Write(w, binary.LittleEndian, header)
}

// ReadHeader reads and validates the file header
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Validate magic bytes
	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid file format: expected %s, got %s", MagicBytes, string(header.Magic[:]))
	}

	// Validate version
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported file version: %d", header.Version)
	}

	return &header, nil
}

// workoutRecord is the on-disk shape of a workout.
type workoutRecord struct {
	ID        string  `msgpack:"_id"`
	Exercise  string  `msgpack:"exercise"`
	Sets      int     `msgpack:"sets"`
	Reps      int     `msgpack:"reps"`
	Weight    float64 `msgpack:"weight"`
	Date      string  `msgpack:"date"`
	Notes     string  `msgpack:"notes"`
	CreatedAt string  `msgpack:"created_at"`
}

func toRecord(w domain.Workout) workoutRecord {
	return workoutRecord(w)
}

func (r workoutRecord) toWorkout() domain.Workout {
	return domain.Workout(r)
}

// StorageData represents the actual data structure we store
type StorageData struct {
	Workouts []workoutRecord        `msgpack:"workouts"`
	Metadata map[string]interface{} `msgpack:"metadata,omitempty"`
}

// NewStorageData creates a new empty storage data structure
func NewStorageData() *StorageData {
	return &StorageData{
		Workouts: make([]workoutRecord, 0),
		Metadata: make(map[string]interface{}),
	}
}
