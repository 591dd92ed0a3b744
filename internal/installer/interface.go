package installer

// Installer materializes the credential helper script and registers it in the
// AWS shared credentials file.
type Installer interface {
	Run() error
}

// ProfileWriter edits profile sections of an INI-style credentials file.
type ProfileWriter interface {
	CredentialProcess(profile string) (string, error)
	UpsertProfile(profile, command string) error
	FilePath() string
}
