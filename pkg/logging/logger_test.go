package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: LogLevelInfo, Format: LogFormatJSON, Output: &buf})
	require.NoError(t, err)

	ForRun(logger, "extract").WithField("lines", 3).Info("done")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "done", entry["msg"])
	assert.Equal(t, "extract", entry["command"])
	assert.Equal(t, float64(3), entry["lines"])

	_, err = uuid.Parse(entry["run_id"].(string))
	assert.NoError(t, err, "run_id is a UUID")
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: LogLevelWarning, Format: LogFormatText, Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	_, err := New(Config{Level: "loud", Format: LogFormatText})
	assert.ErrorContains(t, err, "unsupported log level")

	_, err = New(Config{Level: LogLevelInfo, Format: "xml"})
	assert.ErrorContains(t, err, "unsupported log format")
}

func TestForRun_DistinctIDs(t *testing.T) {
	a := ForRun(Discard(), "summarize").Data["run_id"]
	b := ForRun(Discard(), "summarize").Data["run_id"]
	assert.NotEqual(t, a, b)
}

func TestForRun_NilLogger(t *testing.T) {
	entry := ForRun(nil, "extract")
	require.NotNil(t, entry)
	entry.Info("dropped")
}

func TestContext(t *testing.T) {
	logger := Discard()
	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	assert.NotNil(t, FromContext(context.Background()))
}
