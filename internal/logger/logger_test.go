package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	Init(&buf)
	t.Cleanup(func() { Init(nil) })

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Component("physics").WithField("actor", "player").Debug("grounded")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "physics", line["component"])
	assert.Equal(t, "player", line["actor"])
	assert.Equal(t, "grounded", line["msg"])
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	Init(&buf)
	t.Cleanup(func() { Init(nil) })

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
