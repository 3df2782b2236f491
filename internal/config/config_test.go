package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv(EnvConfigPath, path)
	return path
}

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	useTempConfig(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := useTempConfig(t)

	want := Config{
		DatabasePath:      "~/contacts.db",
		Theme:             ThemeLight,
		KeepSortOnRefresh: true,
		LogLevel:          "debug",
	}
	require.NoError(t, SaveConfig(want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())

	got, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := useTempConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte("keep_sort_on_refresh: true\n"), 0640))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.KeepSortOnRefresh)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := useTempConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))

	require.NoError(t, os.WriteFile(path, []byte("theme: purple\n"), 0640))
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unknown theme")

	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed\n"), 0640))
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveConfig_RejectsInvalid(t *testing.T) {
	useTempConfig(t)
	err := SaveConfig(Config{LogLevel: "chatty"})
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("~/data/contacts.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "contacts.db"), got)

	got, err = ResolvePath("/abs/contacts.db")
	require.NoError(t, err)
	assert.Equal(t, "/abs/contacts.db", got)
}

func TestResolvedDatabasePath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := Config{}.ResolvedDatabasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "contacts", "contacts.db"), got)

	got, err = Config{DatabasePath: "/tmp/x.db"}.ResolvedDatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}
