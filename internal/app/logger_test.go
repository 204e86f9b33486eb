package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger("warn", "text", &buf)
		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger("debug", "json", &buf).Debug("hello", "k", "v")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "v", rec["k"])
		assert.Equal(t, "DEBUG", rec["level"])
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger("loud", "text", &buf)
		logger.Debug("hidden")
		logger.Info("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
