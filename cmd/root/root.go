package root

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	cmdFetch "github.com/BerryBytes/tempcredsctl/cmd/fetch"
	cmdSetup "github.com/BerryBytes/tempcredsctl/cmd/setup"
	"github.com/BerryBytes/tempcredsctl/internal/fetcher"
	"github.com/BerryBytes/tempcredsctl/internal/installer"
)

var RootCmd = &cobra.Command{
	Use:   "tempcredsctl",
	Short: "AWS Temporary Credentials Tool",
	Long:  `A CLI tool for installing and running an AWS credential_process helper.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		fmt.Println("No subcommand provided. Showing help...")
		return cmd.Help()
	},
}

func init() {
	fs := afero.NewOsFs()

	buildInstaller := func(opts installer.Options, out io.Writer) (installer.Installer, error) {
		return installer.NewInstaller(fs, opts, out)
	}
	buildProcessor := func() (fetcher.CredentialProcessor, error) {
		return fetcher.NewProcessorFromEnv(fs)
	}

	RootCmd.AddCommand(cmdSetup.NewSetupCommand(fs, buildInstaller))
	RootCmd.AddCommand(cmdFetch.NewFetchCommand(buildProcessor))
}
