package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"careerlens/internal/config"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that all required configuration is present",
		RunE: func(cmd *cobra.Command, args []string) error {
			missing := config.MissingKeys()
			if len(missing) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Configuration OK: all required keys are set.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Missing configuration keys:")
			for _, key := range missing {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Fill these in your .env file and re-run verify.")
			return fmt.Errorf("%d configuration keys missing", len(missing))
		},
	}
}
