package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, LevelWarn)

	log.Info("AddBooking: room=%s", "r-101")
	log.Warn("AddBooking: room=%s is busy", "r-102")

	out := buf.String()
	assert.NotContains(t, out, "r-101")
	assert.Contains(t, out, "AddBooking: room=r-102 is busy")
	assert.Contains(t, out, "level=WARN")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, LevelInfo)
	require.NoError(t, err)

	log.Error("GetRoomByID: room id=%s not found", "missing")
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GetRoomByID: room id=missing not found")
}
