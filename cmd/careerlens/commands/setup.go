package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"careerlens/internal/config"
)

func setupCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create .env from .env.example",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Bootstrap(dir, cmd.InOrStdin(), cmd.OutOrStdout())
			switch {
			case errors.Is(err, config.ErrTemplateMissing):
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: .env.example not found. Run setup from the project root.")
				return err
			case errors.Is(err, config.ErrAborted):
				fmt.Fprintln(cmd.OutOrStdout(), "Setup cancelled. Your .env was left untouched.")
				return err
			}
			return err
		},
	}

	wd, _ := os.Getwd()
	cmd.Flags().StringVar(&dir, "dir", wd, "directory containing .env.example")
	return cmd
}
