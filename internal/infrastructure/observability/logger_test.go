package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes json with base fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := newLogger(zapcore.AddSync(&buf), "info", "json", zap.String("service", "geobounds"))
		require.NoError(t, err)

		logger.Info("object created", zap.String("object_id", "abc"))
		require.NoError(t, logger.Sync())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "object created", entry["msg"])
		assert.Equal(t, "geobounds", entry["service"])
		assert.Equal(t, "abc", entry["object_id"])
		assert.Contains(t, entry, "time")
	})

	t.Run("drops entries below the level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := newLogger(zapcore.AddSync(&buf), "warn", "json")
		require.NoError(t, err)

		logger.Info("ignored")
		require.NoError(t, logger.Sync())

		assert.Empty(t, buf.String())
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := NewLogger("loud", "json")

		assert.Error(t, err)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := NewLogger("info", "xml")

		assert.Error(t, err)
	})

	t.Run("builds console logger", func(t *testing.T) {
		logger, err := NewLogger("debug", "console")

		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})
}
