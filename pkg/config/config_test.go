package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qnkhuat/stackerterm/pkg/stacker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
player: tester
game:
  columns: 9
  startingWidth: 5
  initialSpeed: 300ms
keys:
  drop: [Space]
log:
  level: debug
`)

	c, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "tester", c.Player)
	assert.Equal(t, DefaultTheme, c.Theme)
	assert.Equal(t, 9, c.Game.Columns)
	assert.Equal(t, stacker.DefaultRows, c.Game.Rows)
	assert.Equal(t, 5, c.Game.StartingWidth)
	assert.Equal(t, 300*time.Millisecond, c.Game.InitialSpeed)
	assert.Equal(t, stacker.DefaultMinSpeed, c.Game.MinSpeed)
	assert.Equal(t, []string{"Space"}, c.Keys.Drop)
	assert.Equal(t, []string{"r", "R"}, c.Keys.Restart)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadNoPath(t *testing.T) {
	c, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	c, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(path, true)
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeFile(t, "game:\n  startingWidth: 12\n"), true)
	assert.ErrorIs(t, err, stacker.ErrInvalidConfig)

	path := writeFile(t, "keys:\n  drop: []\n")
	_, err = Load(path, true)
	assert.EqualError(t, err, "config "+path+": no key bound to drop")
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "game: [1, 2"), true)
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	c := Default()
	c.Player = "writer"
	c.Game.SpeedDecrement = 20 * time.Millisecond
	require.NoError(t, c.Write(path))

	loaded, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}
