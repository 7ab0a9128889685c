package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New("warn")
	assert.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	log, err = New("debug")
	assert.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewUnknownLevel(t *testing.T) {
	_, err := New("chatty")
	assert.Error(t, err)
}
