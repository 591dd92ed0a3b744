package fetch

import (
	"github.com/spf13/cobra"

	"github.com/BerryBytes/tempcredsctl/internal/fetcher"
)

// ProcessorBuilder lets tests substitute the processor behind the command.
type ProcessorBuilder func() (fetcher.CredentialProcessor, error)

// NewFetchCommand builds the command the generated wrapper script execs.
// Its stdout carries exactly one JSON object, success or failure, so the AWS
// CLI can consume it as credential-process output.
func NewFetchCommand(build ProcessorBuilder) *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print temporary credentials as credential-process JSON",
		Long:  `Fetch temporary credentials from the configured endpoint, using the local cache file while the cached record is still at least 5 minutes from expiring.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			processor, err := build()
			if err != nil {
				return err
			}

			return processor.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	return fetchCmd
}
