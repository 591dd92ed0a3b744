package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, fs afero.Fs, name, contents string) {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(contents), 0644))
}

func TestLoadConfig(t *testing.T) {
	t.Run("no config file yields zero config", func(t *testing.T) {
		cfg, err := LoadConfig(afero.NewMemMapFs())
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("YAML config", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfigFile(t, fs, "tempcredsctl.yml", `
setup:
  profile: my-session
  script_path: /custom/get-temp-creds.sh
  cache_path: /custom/cache.json
`)

		cfg, err := LoadConfig(fs)
		require.NoError(t, err)
		assert.Equal(t, "my-session", cfg.Setup.Profile)
		assert.Equal(t, "/custom/get-temp-creds.sh", cfg.Setup.ScriptPath)
		assert.Equal(t, "/custom/cache.json", cfg.Setup.CachePath)
	})

	t.Run("JSON config", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfigFile(t, fs, "tempcredsctl.json", `{"setup":{"profile":"json-session"}}`)

		cfg, err := LoadConfig(fs)
		require.NoError(t, err)
		assert.Equal(t, "json-session", cfg.Setup.Profile)
	})

	t.Run("unparsable config", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfigFile(t, fs, "tempcredsctl.yml", "setup: [unbalanced")

		_, err := LoadConfig(fs)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("prefers yml over json", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfigFile(t, fs, "tempcredsctl.yml", "")
		writeConfigFile(t, fs, "tempcredsctl.json", "")

		path, err := FindConfigFile(fs)
		require.NoError(t, err)
		assert.Equal(t, "tempcredsctl.yml", filepath.Base(path))
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := FindConfigFile(afero.NewMemMapFs())
		assert.ErrorIs(t, err, ErrNoConfigFile)
	})
}
