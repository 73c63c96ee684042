package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	t.Setenv("ENV", "")

	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("nonsense").GetLevel())
}

func TestNew_JSONFieldNames(t *testing.T) {
	t.Setenv("ENV", "")

	var buf bytes.Buffer
	log := New("info")
	log.SetOutput(&buf)
	log.WithField("workout_id", "abc").Info("created workout")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "created workout", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "abc", entry["workout_id"])
	assert.Contains(t, entry, "timestamp")
}
