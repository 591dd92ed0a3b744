package installer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/BerryBytes/tempcredsctl/internal/fetcher"
	promptutils "github.com/BerryBytes/tempcredsctl/utils/prompt"
)

const (
	// DefaultProfileName is the profile section registered in the AWS
	// shared credentials file.
	DefaultProfileName = "temp-creds-session"

	// DefaultScriptName is the wrapper script file name under ~/.aws.
	DefaultScriptName = "get-temp-creds.sh"
)

var (
	ErrMissingEnv = errors.New("required environment variables not set")
	ErrAborted    = errors.New("setup aborted")
)

// Options are the setup inputs that may come from flags or the project
// config file. Empty fields fall back to defaults.
type Options struct {
	Profile    string
	ScriptPath string
	CachePath  string
	AssumeYes  bool
}

type RealInstaller struct {
	Fs       afero.Fs
	Prompter promptutils.Prompter
	Profiles ProfileWriter
	Options  Options
	Out      io.Writer

	// ExecPath reports the running binary; swapped out in tests.
	ExecPath func() (string, error)
}

func NewInstaller(fs afero.Fs, opts Options, out io.Writer) (*RealInstaller, error) {
	profiles, err := NewProfileWriter(fs)
	if err != nil {
		return nil, err
	}

	return &RealInstaller{
		Fs:       fs,
		Prompter: promptutils.NewPrompt(),
		Profiles: profiles,
		Options:  opts,
		Out:      out,
		ExecPath: os.Executable,
	}, nil
}

// Run performs the one-shot install: validate the environment, write the
// wrapper script, and register the credential_process profile. Re-running
// overwrites the script and updates the profile section in place.
func (i *RealInstaller) Run() error {
	apiURL := os.Getenv(fetcher.EnvAPIURL)
	apiKey := os.Getenv(fetcher.EnvAPIKey)
	if apiURL == "" || apiKey == "" {
		fmt.Fprintln(i.Out, "ERROR: Required environment variables not set!")
		fmt.Fprintln(i.Out, "Please set the following environment variables:")
		fmt.Fprintf(i.Out, "  export %s='your-api-url'\n", fetcher.EnvAPIURL)
		fmt.Fprintf(i.Out, "  export %s='your-api-key'\n", fetcher.EnvAPIKey)
		return ErrMissingEnv
	}

	scriptPath, err := i.writeScript(apiURL, apiKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(i.Out, "✓ Created executable script: %s\n", scriptPath)

	profile := i.Options.Profile
	if profile == "" {
		profile = DefaultProfileName
	}

	if err := i.registerProfile(profile, scriptPath); err != nil {
		return err
	}
	fmt.Fprintf(i.Out, "✓ Updated AWS credentials file: %s\n", i.Profiles.FilePath())
	fmt.Fprintf(i.Out, "✓ Added [%s] profile with credential_process\n", profile)

	fmt.Fprintln(i.Out, "\nSetup completed successfully!")
	fmt.Fprintln(i.Out, "\nYou can now use AWS CLI with:")
	fmt.Fprintf(i.Out, "  aws --profile %s <command>\n", profile)
	fmt.Fprintln(i.Out, "\nOr set as default profile:")
	fmt.Fprintf(i.Out, "  export AWS_PROFILE=%s\n", profile)

	return nil
}

func (i *RealInstaller) writeScript(apiURL, apiKey string) (string, error) {
	scriptPath := i.Options.ScriptPath
	if scriptPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		scriptPath = filepath.Join(home, ".aws", DefaultScriptName)
	}

	execPath, err := i.ExecPath()
	if err != nil {
		return "", fmt.Errorf("failed to locate the tempcredsctl binary: %w", err)
	}

	content, err := renderScript(scriptParams{
		URLVar:    fetcher.EnvAPIURL,
		KeyVar:    fetcher.EnvAPIKey,
		CacheVar:  fetcher.EnvCacheFile,
		APIURL:    apiURL,
		APIKey:    apiKey,
		CachePath: i.Options.CachePath,
		ExecPath:  execPath,
	})
	if err != nil {
		return "", err
	}

	scriptDir := filepath.Dir(scriptPath)
	if err := i.Fs.MkdirAll(scriptDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", scriptDir, err)
	}

	if err := afero.WriteFile(i.Fs, scriptPath, content, 0755); err != nil {
		return "", fmt.Errorf("failed to write script %s: %w", scriptPath, err)
	}

	// WriteFile does not chmod an existing file; re-runs must stay executable.
	if err := i.Fs.Chmod(scriptPath, 0755); err != nil {
		return "", fmt.Errorf("failed to mark script executable: %w", err)
	}

	return scriptPath, nil
}

func (i *RealInstaller) registerProfile(profile, scriptPath string) error {
	existing, err := i.Profiles.CredentialProcess(profile)
	if err != nil {
		return err
	}

	if existing != "" && existing != scriptPath && !i.Options.AssumeYes {
		label := fmt.Sprintf("Profile [%s] already uses %q; replace it", profile, existing)
		confirmed, err := i.Prompter.PromptForConfirmation(label)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrAborted
		}
	}

	return i.Profiles.UpsertProfile(profile, scriptPath)
}
