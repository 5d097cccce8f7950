package main

import (
	"fmt"
	"fortune/internal/config"

	"github.com/spf13/cobra"
)

func categoriesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Prints the available fortune categories, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range getFortuner(cmd.Context(), cfg).Categories().Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), c); err != nil {
					return fmt.Errorf("could not print category: %w", err)
				}
			}

			return nil
		},
	}

	return cmd
}
