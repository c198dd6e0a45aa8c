package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := LoadSettings(NewViper())
	require.NoError(t, err)

	assert.Equal(t, 60, s.FPS)
	assert.Equal(t, int64(0), s.Seed)
	assert.Equal(t, "en", s.Locale)
	assert.True(t, s.Sound)
	assert.True(t, s.Music)
	assert.False(t, s.Debug)
	assert.Equal(t, filepath.Join(home, ".ballsort", "records.db"), s.DBPath)
}

func TestLoadSettingsEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BALLSORT_FPS", "30")
	t.Setenv("BALLSORT_LOCALE", "ru")
	t.Setenv("BALLSORT_MUSIC", "false")

	s, err := LoadSettings(NewViper())
	require.NoError(t, err)

	assert.Equal(t, 30, s.FPS)
	assert.Equal(t, "ru", s.Locale)
	assert.False(t, s.Music)
}

func TestLoadSettingsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".ballsort")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	data := "seed: 42\nsound: false\ndb: /tmp/x.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(data), 0o600))

	s, err := LoadSettings(NewViper())
	require.NoError(t, err)

	assert.Equal(t, int64(42), s.Seed)
	assert.False(t, s.Sound)
	assert.Equal(t, "/tmp/x.db", s.DBPath)
}

func TestLoadSettingsRejectsBadFPS(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BALLSORT_FPS", "0")

	_, err := LoadSettings(NewViper())
	assert.Error(t, err)
}
