package main

import (
	"fmt"
	"fortune/internal/config"

	"github.com/spf13/cobra"
)

func randomCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "random [category]",
		Aliases: []string{"get"},
		Short:   "Prints a random fortune, optionally from one category",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var category string
			if len(args) > 0 {
				category = args[0]
			}

			text, err := getFortuner(cmd.Context(), cfg).Fortune(cmd.Context(), category)
			if err != nil {
				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), text)

			return err //nolint: wrapcheck
		},
	}

	return cmd
}
