// Package commands defines the careerlens CLI.
package commands

import (
	"github.com/spf13/cobra"

	"careerlens/internal/log"
)

var logLevel string

func Execute() error {
	root := &cobra.Command{
		Use:           "careerlens",
		Short:         "AI job matching, resume tailoring and interview practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(log.Config{Level: logLevel})
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(setupCmd(), verifyCmd(), workerCmd(), serveCmd(), seedJobCmd())
	return root.Execute()
}
