package setup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/BerryBytes/tempcredsctl/internal/config"
	"github.com/BerryBytes/tempcredsctl/internal/installer"
	promptutils "github.com/BerryBytes/tempcredsctl/utils/prompt"
)

// InstallerBuilder lets tests substitute the installer behind the command.
type InstallerBuilder func(opts installer.Options, out io.Writer) (installer.Installer, error)

func NewSetupCommand(fs afero.Fs, build InstallerBuilder) *cobra.Command {
	var profile string
	var assumeYes bool

	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Install the temporary credentials helper",
		Long:  `Write the credential helper script to ~/.aws and register it as a credential_process profile in the AWS credentials file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "AWS Temporary Credentials Setup")
			fmt.Fprintln(out, strings.Repeat("=", 35))

			cfg, err := config.LoadConfig(fs)
			if err != nil {
				return fmt.Errorf("setup failed: %w", err)
			}

			opts := installer.Options{
				Profile:    cfg.Setup.Profile,
				ScriptPath: cfg.Setup.ScriptPath,
				CachePath:  cfg.Setup.CachePath,
				AssumeYes:  assumeYes,
			}
			if profile != "" {
				opts.Profile = profile
			}

			inst, err := build(opts, out)
			if err != nil {
				return fmt.Errorf("setup failed: %w", err)
			}

			if err := inst.Run(); err != nil {
				if errors.Is(err, promptutils.ErrInterrupted) {
					return nil
				}
				return fmt.Errorf("setup failed: %w", err)
			}
			return nil
		},
	}

	setupCmd.Flags().StringVar(&profile, "profile", "", `profile section to register (default "temp-creds-session")`)
	setupCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "replace a foreign credential_process entry without asking")

	return setupCmd
}
