package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, Fields{"app": "ante"})

	l.Info("server started", map[string]interface{}{"port": "8080"})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "server started", line["message"])
	assert.Equal(t, "ante", line["app"])
	assert.Equal(t, "8080", line["port"])
}

func TestZeroLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, nil)

	l.Error(errors.New("boom"), nil)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "boom", line["error"])
}

func TestZeroLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, nil)

	l.Debug("hidden", nil)
	assert.Zero(t, buf.Len())

	l.SetLevel(LevelDebug)
	l.Debug("visible", nil)
	assert.NotZero(t, buf.Len())
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "FATAL", LevelFatal.String())
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "", LevelOff.String())
}
