package installer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// RealProfileWriter upserts profile sections in the AWS shared credentials
// file. Loading is loose: a missing file is treated as empty and created on
// the first write.
type RealProfileWriter struct {
	Fs   afero.Fs
	Path string
}

func NewProfileWriter(fs afero.Fs) (*RealProfileWriter, error) {
	path := awsconfig.DefaultSharedCredentialsFilename()

	return &RealProfileWriter{Fs: fs, Path: path}, nil
}

func (w *RealProfileWriter) FilePath() string {
	return w.Path
}

// CredentialProcess returns the profile's current credential_process value,
// or empty when the file or section does not exist.
func (w *RealProfileWriter) CredentialProcess(profile string) (string, error) {
	cfg, err := w.load()
	if err != nil {
		return "", err
	}

	section, err := cfg.GetSection(profile)
	if err != nil {
		return "", nil
	}

	return section.Key("credential_process").String(), nil
}

// UpsertProfile points the profile's credential_process at command, creating
// the section when absent and updating it in place otherwise.
func (w *RealProfileWriter) UpsertProfile(profile, command string) error {
	cfg, err := w.load()
	if err != nil {
		return err
	}

	cfg.Section(profile).Key("credential_process").SetValue(command)

	if err := w.Fs.MkdirAll(filepath.Dir(w.Path), 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(w.Path), err)
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to render credentials file: %w", err)
	}

	if err := afero.WriteFile(w.Fs, w.Path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.Path, err)
	}

	return nil
}

func (w *RealProfileWriter) load() (*ini.File, error) {
	data, err := afero.ReadFile(w.Fs, w.Path)
	if os.IsNotExist(err) {
		return ini.Empty(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", w.Path, err)
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", w.Path, err)
	}

	return cfg, nil
}
