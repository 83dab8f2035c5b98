package main

import (
	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show all records and the current balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			cli.RenderRecords(cmd.OutOrStdout(), a.ledger.Records(), a.ledger.Balance())
			return nil
		},
	}
}
