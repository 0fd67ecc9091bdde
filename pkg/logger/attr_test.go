package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/pkg/logger"
)

func TestAttrHelpers(t *testing.T) {
	t.Run("Error records under the error key", func(t *testing.T) {
		err := errors.New("boom")

		attr := logger.Error(err)

		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("Error with nil is dropped", func(t *testing.T) {
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	})

	t.Run("Errors keeps non-nil errors with their positions", func(t *testing.T) {
		attr := logger.Errors(nil, errors.New("first"), nil, errors.New("second"))

		assert.Equal(t, "errors", attr.Key)
		group := attr.Value.Group()
		require.Len(t, group, 2)
		assert.Equal(t, "1", group[0].Key)
		assert.Equal(t, "3", group[1].Key)
	})

	t.Run("Errors with nothing to report is dropped", func(t *testing.T) {
		assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
	})

	t.Run("fixed keys", func(t *testing.T) {
		assert.True(t, logger.RequestID("req-1").Equal(slog.String("request_id", "req-1")))
		assert.True(t, logger.ConfigType("bindkit.JSONConfig").Equal(slog.String("config_type", "bindkit.JSONConfig")))
		assert.True(t, logger.Source("rejection").Equal(slog.String("source", "rejection")))
		assert.True(t, logger.Status(422).Equal(slog.Int("status", 422)))
		assert.True(t, logger.Component("config").Equal(slog.String("component", "config")))
	})
}
