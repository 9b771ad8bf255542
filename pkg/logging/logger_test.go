package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/kuniv/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")

	output := buf.String()
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warning message")
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithCategory(ctx, "degree")
	ctx = logging.WithBucket(ctx, "전문대학")
	ctx = logging.WithOperation(ctx, "build")

	logging.FromContext(ctx).Info().Msg("bucket processed")

	testLogger.AssertContains(t, `"category":"degree"`)
	testLogger.AssertContains(t, `"bucket":"전문대학"`)
	testLogger.AssertContains(t, `"operation":"build"`)
	testLogger.AssertContains(t, "bucket processed")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}

func TestNewLoggerFromConfig(t *testing.T) {
	oldLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(oldLevel) })

	t.Run("json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "build.log")
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "warn",
			Format: "json",
			Output: path,
		})
		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hidden")
		assert.Contains(t, string(data), `"message":"shown"`)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "loud", Output: "discard"})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	tl.Info().Msg("first")
	tl.Debug().Msg("second")

	lines := tl.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.Contains(lines[0], "first"))
	tl.AssertNotContains(t, "third")
}

func TestDisableLoggingForTest(t *testing.T) {
	logging.DisableLoggingForTest(t)
	assert.Equal(t, zerolog.Disabled, logging.Default().GetLevel())
}
