package installer

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestUpsertProfile(t *testing.T) {
	const credsPath = "/home/user/.aws/credentials"

	t.Run("creates file and section when absent", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writer := &RealProfileWriter{Fs: fs, Path: credsPath}

		err := writer.UpsertProfile("temp-creds-session", "/home/user/.aws/get-temp-creds.sh")
		require.NoError(t, err)

		data, err := afero.ReadFile(fs, credsPath)
		require.NoError(t, err)

		cfg, err := ini.Load(data)
		require.NoError(t, err)
		assert.Equal(t, "/home/user/.aws/get-temp-creds.sh",
			cfg.Section("temp-creds-session").Key("credential_process").String())
	})

	t.Run("updates existing section without duplicating it", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writer := &RealProfileWriter{Fs: fs, Path: credsPath}

		require.NoError(t, writer.UpsertProfile("temp-creds-session", "/old/script.sh"))
		require.NoError(t, writer.UpsertProfile("temp-creds-session", "/new/script.sh"))

		data, err := afero.ReadFile(fs, credsPath)
		require.NoError(t, err)

		cfg, err := ini.Load(data)
		require.NoError(t, err)

		count := 0
		for _, name := range cfg.SectionStrings() {
			if name == "temp-creds-session" {
				count++
			}
		}
		assert.Equal(t, 1, count)
		assert.Equal(t, "/new/script.sh",
			cfg.Section("temp-creds-session").Key("credential_process").String())
	})

	t.Run("preserves unrelated profiles", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		existing := "[default]\naws_access_key_id = AKIA123\naws_secret_access_key = secret\n"
		require.NoError(t, afero.WriteFile(fs, credsPath, []byte(existing), 0600))

		writer := &RealProfileWriter{Fs: fs, Path: credsPath}
		require.NoError(t, writer.UpsertProfile("temp-creds-session", "/home/user/.aws/get-temp-creds.sh"))

		data, err := afero.ReadFile(fs, credsPath)
		require.NoError(t, err)

		cfg, err := ini.Load(data)
		require.NoError(t, err)
		assert.Equal(t, "AKIA123", cfg.Section("default").Key("aws_access_key_id").String())
		assert.Equal(t, "/home/user/.aws/get-temp-creds.sh",
			cfg.Section("temp-creds-session").Key("credential_process").String())
	})

	t.Run("rejects a corrupt credentials file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, credsPath, []byte("[unclosed\ngarbage"), 0600))

		writer := &RealProfileWriter{Fs: fs, Path: credsPath}
		err := writer.UpsertProfile("temp-creds-session", "/script.sh")
		assert.Error(t, err)
	})
}

func TestCredentialProcess(t *testing.T) {
	const credsPath = "/home/user/.aws/credentials"

	tests := []struct {
		name     string
		contents string
		expected string
	}{
		{
			name:     "missing file",
			contents: "",
			expected: "",
		},
		{
			name:     "missing section",
			contents: "[default]\nregion = us-east-1\n",
			expected: "",
		},
		{
			name:     "section without key",
			contents: "[temp-creds-session]\n",
			expected: "",
		},
		{
			name:     "existing value",
			contents: "[temp-creds-session]\ncredential_process = /some/other/helper\n",
			expected: "/some/other/helper",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.contents != "" {
				require.NoError(t, afero.WriteFile(fs, credsPath, []byte(tt.contents), 0600))
			}

			writer := &RealProfileWriter{Fs: fs, Path: credsPath}
			value, err := writer.CredentialProcess("temp-creds-session")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}
