package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mamadbah2/cropstats/pkg/logger"
)

func TestNewLevels(t *testing.T) {
	log, err := logger.New("warn")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	_, err = logger.New("chatty")
	assert.Error(t, err)
}

func TestMustPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		logger.Must(logger.New("chatty"))
	})
}

func TestNamedWithNilBase(t *testing.T) {
	assert.NotNil(t, logger.Named(nil, "registry"))
}
