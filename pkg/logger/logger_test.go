package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFile(t *testing.T) {
	o := DefaultOptions()
	o.Path = filepath.Join(t.TempDir(), "stackerterm.log")
	o.Level = "debug"

	l, err := NewFile(o)
	require.NoError(t, err)

	l.Debug("dropped", zap.Int("height", 3))
	require.NoError(t, l.Sync())

	b, err := os.ReadFile(o.Path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"dropped"`)
	assert.Contains(t, string(b), `"height":3`)
}

func TestNewFileLevel(t *testing.T) {
	o := DefaultOptions()
	o.Path = filepath.Join(t.TempDir(), "stackerterm.log")
	o.Level = "warn"

	l, err := NewFile(o)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown")
	require.NoError(t, l.Sync())

	b, err := os.ReadFile(o.Path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hidden")
	assert.Contains(t, string(b), "shown")
}

func TestNewFileWithoutPath(t *testing.T) {
	l, err := NewFile(DefaultOptions())
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestInvalidLevel(t *testing.T) {
	o := DefaultOptions()
	o.Level = "loud"

	_, err := NewConsole(o, os.Stderr)
	assert.Error(t, err)
}
