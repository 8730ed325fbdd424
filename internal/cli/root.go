// Package cli is the command line front end of the onboarding form.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nurpe/vendor-onboarding/internal/config"
)

func NewRootCommand(cfg *config.ClientConfig, log zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "onboarding-cli",
		Short:         "Fill in and submit vendor onboarding forms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSubmitCommand(cfg, log),
		newFieldsCommand(),
		newLabsCommand(),
	)
	return root
}
